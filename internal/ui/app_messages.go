package ui

import "userdir/internal/directory"

// UsersLoadedMsg is sent when the initial users fetch settles.
// Exactly one of Users or Err is meaningful.
type UsersLoadedMsg struct {
	Users []directory.User
	Err   error
}

// ReloadMsg asks the root shell to discard the directory and mount a fresh one.
type ReloadMsg struct{}

// OpenLinkMsg asks the root shell to open a derived link (mailto:, tel:, https:).
type OpenLinkMsg struct {
	Label string // what is being opened, e.g. "email"
	URL   string
}

// LinkOpenedMsg reports the outcome of an OpenLinkMsg.
type LinkOpenedMsg struct {
	Label string
	URL   string
	Err   error
}

// CloseOverlayMsg is sent by the detail overlay once its exit transition has
// finished; the directory then clears its selection.
type CloseOverlayMsg struct {
	OverlayID int
}

// ToastClosedMsg is the toast's close callback.
type ToastClosedMsg struct{}

// removeRowMsg completes a confirmed deletion.
type removeRowMsg struct {
	seq int
	id  int
}

// toastExpireMsg is the directory's own toast auto-hide.
type toastExpireMsg struct {
	seq int
}

// Toast-internal timers, keyed by the toast generation that scheduled them.
type (
	toastBeginHideMsg struct{ gen int }
	toastCloseMsg     struct{ gen int }
	toastUnmountMsg   struct{ gen int }
)
