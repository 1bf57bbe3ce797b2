package ui

import (
	"log/slog"
	"time"

	"userdir/internal/browser"
	"userdir/internal/directory"
	"userdir/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Options configures the directory and the root shell.
type Options struct {
	Fetcher      directory.Fetcher
	Opener       browser.Opener
	Logger       *slog.Logger
	Scheduler    Scheduler
	FetchTimeout time.Duration // zero waits indefinitely
}

// rowMarker is an optional user id.
type rowMarker struct {
	id  int
	set bool
}

func (m rowMarker) is(id int) bool { return m.set && m.id == id }

// DirectoryView owns the user list, the fetch lifecycle, row selection and
// the per-row delete workflow. It composes the toast and the detail overlay.
type DirectoryView struct {
	Users    []directory.User
	Loading  bool
	Err      error
	Selected *directory.User

	pending   rowMarker
	removing  rowMarker
	removeSeq int

	toastState ToastState
	toastSeq   int
	toast      *Toast

	overlay *DetailOverlay

	cursor int
	offset int
	width  int
	height int

	spinner  spinner.Model
	keys     KeyMap
	fetcher  directory.Fetcher
	timeout  time.Duration
	schedule Scheduler
	logger   *slog.Logger
}

// Ensure DirectoryView implements View.
var _ View = (*DirectoryView)(nil)

// NewDirectoryView creates a directory in its loading state. The fetch
// starts from Init.
func NewDirectoryView(opts Options) *DirectoryView {
	schedule := opts.Scheduler
	if schedule == nil {
		schedule = TickScheduler
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &DirectoryView{
		Loading:  true,
		toast:    NewToast(schedule),
		spinner:  s,
		keys:     DefaultKeyMap(),
		fetcher:  opts.Fetcher,
		timeout:  opts.FetchTimeout,
		schedule: schedule,
		logger:   logger,
	}
}

// Pending returns the id awaiting delete confirmation.
func (d *DirectoryView) Pending() (int, bool) { return d.pending.id, d.pending.set }

// Removing returns the id whose removal is in flight.
func (d *DirectoryView) Removing() (int, bool) { return d.removing.id, d.removing.set }

// Cursor returns the index of the row under the cursor.
func (d *DirectoryView) Cursor() int { return d.cursor }

// Overlay returns the open detail overlay, or nil.
func (d *DirectoryView) Overlay() *DetailOverlay { return d.overlay }

// Toast returns the notifier.
func (d *DirectoryView) Toast() *Toast { return d.toast }

// ToastState returns the directory's view of its notification.
func (d *DirectoryView) ToastState() ToastState { return d.toastState }

// SelectRow opens the detail overlay for id. Unknown ids are ignored.
func (d *DirectoryView) SelectRow(id int) {
	u, ok := directory.Find(d.Users, id)
	if !ok {
		return
	}
	d.Selected = &u
	d.overlay = NewDetailOverlay(nextToken(), u, d.schedule)
	d.overlay.SetSize(d.width, d.overlayHeight())
}

// CloseOverlay clears the overlay target.
func (d *DirectoryView) CloseOverlay() {
	d.Selected = nil
	d.overlay = nil
}

// RequestDelete marks id as awaiting confirmation, replacing any other
// pending row.
func (d *DirectoryView) RequestDelete(id int) {
	if directory.IndexOf(d.Users, id) < 0 || d.removing.is(id) {
		return
	}
	d.pending = rowMarker{id: id, set: true}
}

// CancelDelete clears the pending marker if it names id. A row already being
// removed cannot be cancelled.
func (d *DirectoryView) CancelDelete(id int) {
	if d.pending.is(id) && !d.removing.is(id) {
		d.pending = rowMarker{}
	}
}

// ConfirmDelete starts removing id. The row is dropped after RemoveDelay.
// A removal already in flight for another row completes immediately.
func (d *DirectoryView) ConfirmDelete(id int) tea.Cmd {
	if directory.IndexOf(d.Users, id) < 0 || d.removing.is(id) {
		return nil
	}
	var cmds []tea.Cmd
	if d.removing.set {
		cmds = append(cmds, d.finishRemoval(d.removing.id))
	}
	d.logger.Debug("delete confirmed", "id", id)
	d.removing = rowMarker{id: id, set: true}
	d.removeSeq = nextToken()
	cmds = append(cmds, d.schedule(RemoveDelay, removeRowMsg{seq: d.removeSeq, id: id}))
	return tea.Batch(cmds...)
}

// DismissToast starts the toast's hide transition.
func (d *DirectoryView) DismissToast() tea.Cmd {
	return d.toast.Dismiss()
}

func (d *DirectoryView) finishRemoval(id int) tea.Cmd {
	name := directory.FallbackName
	if u, ok := directory.Find(d.Users, id); ok {
		name = u.DisplayName()
	}
	d.Users = directory.Without(d.Users, id)
	d.pending = rowMarker{}
	d.removing = rowMarker{}
	d.clampCursor()
	d.logger.Info("user removed", "id", id, "remaining", len(d.Users))
	return d.showToast(name + " deleted successfully")
}

func (d *DirectoryView) showToast(message string) tea.Cmd {
	d.toastState = ToastState{Message: message, Visible: true}
	d.toastSeq = nextToken()
	return tea.Batch(
		d.toast.Show(message),
		d.schedule(ToastDwell, toastExpireMsg{seq: d.toastSeq}),
	)
}

func (d *DirectoryView) hideToast() tea.Cmd {
	d.toastState.Visible = false
	return d.toast.Sync(d.toastState.Message, false)
}

// Init implements View.
func (d *DirectoryView) Init() tea.Cmd {
	return tea.Batch(d.spinner.Tick, fetchUsersCmd(d.fetcher, d.timeout))
}

// Update implements View.
func (d *DirectoryView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case UsersLoadedMsg:
		if !d.Loading {
			return d, nil
		}
		d.Loading = false
		if msg.Err != nil {
			d.Err = msg.Err
			d.logger.Error("fetch users", "err", msg.Err)
			return d, nil
		}
		d.Users = msg.Users
		d.logger.Info("users loaded", "count", len(d.Users))
		return d, nil
	case spinner.TickMsg:
		if !d.Loading {
			return d, nil
		}
		var cmd tea.Cmd
		d.spinner, cmd = d.spinner.Update(msg)
		return d, cmd
	case tea.WindowSizeMsg:
		d.width = msg.Width
		d.height = msg.Height
		if d.overlay != nil {
			d.overlay.SetSize(d.width, d.overlayHeight())
		}
		d.ensureVisible()
		return d, nil
	case removeRowMsg:
		if msg.seq != d.removeSeq || !d.removing.is(msg.id) {
			return d, nil
		}
		return d, d.finishRemoval(msg.id)
	case toastExpireMsg:
		if msg.seq != d.toastSeq || !d.toastState.Visible {
			return d, nil
		}
		return d, d.hideToast()
	case ToastClosedMsg:
		if !d.toastState.Visible {
			return d, nil
		}
		return d, d.hideToast()
	case toastBeginHideMsg, toastCloseMsg, toastUnmountMsg:
		_, cmd := d.toast.Update(msg)
		return d, cmd
	case CloseOverlayMsg:
		if d.overlay != nil && d.overlay.ID() == msg.OverlayID {
			d.CloseOverlay()
		}
		return d, nil
	case tea.KeyMsg:
		if d.overlay != nil {
			if d.toast.Visible() && key.Matches(msg, d.keys.Dismiss) {
				return d, d.DismissToast()
			}
			_, cmd := d.overlay.Update(msg)
			return d, cmd
		}
		return d, d.handleKey(msg)
	case tea.MouseMsg:
		if d.overlay != nil {
			d.overlay.SetSize(d.width, d.overlayHeight())
			onToast, onClose := d.toastPress(msg, lipgloss.Height(d.overlay.View())+1)
			if onClose {
				return d, d.DismissToast()
			}
			if onToast {
				return d, nil
			}
			_, cmd := d.overlay.Update(msg)
			return d, cmd
		}
		return d, d.handleMouse(msg)
	}
	return d, nil
}

// tableShown reports whether the table view (rather than loading, error or
// empty) is on screen.
func (d *DirectoryView) tableShown() bool {
	return !d.Loading && d.Err == nil && len(d.Users) > 0
}

func (d *DirectoryView) emptyShown() bool {
	return !d.Loading && d.Err == nil && len(d.Users) == 0
}

func (d *DirectoryView) current() (directory.User, bool) {
	if !d.tableShown() || d.cursor < 0 || d.cursor >= len(d.Users) {
		return directory.User{}, false
	}
	return d.Users[d.cursor], true
}

func (d *DirectoryView) handleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, d.keys.Dismiss) {
		return d.DismissToast()
	}
	if d.emptyShown() && key.Matches(msg, d.keys.Reload) {
		return func() tea.Msg { return ReloadMsg{} }
	}
	u, ok := d.current()
	if !ok {
		return nil
	}
	switch {
	case key.Matches(msg, d.keys.Up):
		d.moveCursor(d.cursor - 1)
	case key.Matches(msg, d.keys.Down):
		d.moveCursor(d.cursor + 1)
	case key.Matches(msg, d.keys.Top):
		d.moveCursor(0)
	case key.Matches(msg, d.keys.Bottom):
		d.moveCursor(len(d.Users) - 1)
	case key.Matches(msg, d.keys.Open):
		d.SelectRow(u.ID)
	case key.Matches(msg, d.keys.Delete):
		d.RequestDelete(u.ID)
	case key.Matches(msg, d.keys.Confirm):
		if d.pending.is(u.ID) {
			return d.ConfirmDelete(u.ID)
		}
	case key.Matches(msg, d.keys.Cancel):
		if d.pending.set {
			d.CancelDelete(d.pending.id)
		}
	case key.Matches(msg, d.keys.Email):
		return openLink("email", u.MailtoURL())
	case key.Matches(msg, d.keys.Phone):
		return openLink("phone", u.TelURL())
	case key.Matches(msg, d.keys.Website):
		return openLink("website", u.WebsiteURL())
	}
	return nil
}

func (d *DirectoryView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if !d.tableShown() && !d.toast.Visible() {
		return nil
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		if d.tableShown() {
			d.moveCursor(d.cursor - 1)
		}
		return nil
	case tea.MouseButtonWheelDown:
		if d.tableShown() {
			d.moveCursor(d.cursor + 1)
		}
		return nil
	}
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}

	_, g := d.render()
	onToast, onClose := d.toastPress(msg, g.toastTop)
	if onClose {
		return d.DismissToast()
	}
	if onToast {
		return nil
	}
	if !d.tableShown() {
		return nil
	}

	row := msg.Y - g.rowsTop
	if row < 0 || row >= g.visible {
		return nil
	}
	idx := g.offset + row
	if idx >= len(d.Users) {
		return nil
	}
	u := d.Users[idx]
	d.cursor = idx

	col, rel := g.columnAt(msg.X)
	switch col {
	case colName, colAddress, colCompany:
		d.SelectRow(u.ID)
	case colEmail:
		return openLink("email", u.MailtoURL())
	case colPhone:
		return openLink("phone", u.TelURL())
	case colWebsite:
		return openLink("website", u.WebsiteURL())
	case colActions:
		return d.pressAction(u.ID, rel)
	}
	return nil
}

// toastPress reports whether a left press lands on the toast drawn from line
// toastTop, and whether it lands on the toast's close control.
func (d *DirectoryView) toastPress(msg tea.MouseMsg, toastTop int) (onToast, onClose bool) {
	view := d.toast.View()
	if view == "" || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return false, false
	}
	if msg.Y < toastTop || msg.Y >= toastTop+lipgloss.Height(view) || msg.X >= lipgloss.Width(view) {
		return false, false
	}
	x := d.toast.closeColumn()
	return true, msg.Y == toastTop+1 && msg.X >= x && msg.X < x+textutil.VisualWidth(toastClose)
}

// overlayHeight is the screen height left for the detail overlay. A visible
// toast keeps its lines below the overlay.
func (d *DirectoryView) overlayHeight() int {
	toast := d.toast.View()
	if toast == "" || d.height <= 0 {
		return d.height
	}
	return max(0, d.height-lipgloss.Height(toast)-1)
}

// pressAction handles a press at column rel inside a row's action cell.
func (d *DirectoryView) pressAction(id, rel int) tea.Cmd {
	if d.removing.is(id) {
		return nil
	}
	if d.pending.is(id) {
		switch {
		case rel >= confirmStart && rel < confirmEnd:
			return d.ConfirmDelete(id)
		case rel >= cancelStart && rel < cancelEnd:
			d.CancelDelete(id)
		}
		return nil
	}
	if rel >= 0 && rel < deleteEnd {
		d.RequestDelete(id)
	}
	return nil
}

func (d *DirectoryView) moveCursor(i int) {
	d.cursor = i
	d.clampCursor()
}

func (d *DirectoryView) clampCursor() {
	if d.cursor >= len(d.Users) {
		d.cursor = len(d.Users) - 1
	}
	if d.cursor < 0 {
		d.cursor = 0
	}
	d.ensureVisible()
}

// ensureVisible scrolls so the cursor row is on screen.
func (d *DirectoryView) ensureVisible() {
	n := d.visibleRows()
	if d.cursor < d.offset {
		d.offset = d.cursor
	}
	if d.cursor >= d.offset+n {
		d.offset = d.cursor - n + 1
	}
	if last := len(d.Users) - n; d.offset > last {
		d.offset = last
	}
	if d.offset < 0 {
		d.offset = 0
	}
}

// Bindings returns the keys that apply to the current state, for the help bar.
func (d *DirectoryView) Bindings() []key.Binding {
	k := d.keys
	switch {
	case d.overlay != nil:
		b := []key.Binding{k.Close, k.Email, k.Phone, k.Website, k.Map}
		if d.toast.Visible() {
			b = append(b, k.Dismiss)
		}
		return b
	case d.emptyShown():
		b := []key.Binding{k.Reload}
		if d.toast.Visible() {
			b = append(b, k.Dismiss)
		}
		return b
	case !d.tableShown():
		return nil
	}
	b := []key.Binding{k.Up, k.Down, k.Open, k.Delete}
	if d.pending.set {
		b = append(b, k.Confirm, k.Cancel)
	}
	b = append(b, k.Email, k.Phone, k.Website)
	if d.toast.Visible() {
		b = append(b, k.Dismiss)
	}
	return b
}

// View implements View.
func (d *DirectoryView) View() string {
	if d.overlay != nil {
		d.overlay.SetSize(d.width, d.overlayHeight())
		out := d.overlay.View()
		if toast := d.toast.View(); toast != "" {
			out += "\n\n" + toast
		}
		return out
	}
	s, _ := d.render()
	return s
}
