package ui

import (
	"context"
	"errors"
	"time"

	"userdir/internal/browser"
	"userdir/internal/directory"

	tea "github.com/charmbracelet/bubbletea"
)

// errNoFetcher is reported when the directory has no users source.
var errNoFetcher = errors.New("no users source configured")

// fetchUsersCmd returns a command that performs the single users fetch.
// A zero timeout means the request may wait indefinitely.
func fetchUsersCmd(f directory.Fetcher, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		if f == nil {
			return UsersLoadedMsg{Err: errNoFetcher}
		}
		ctx := context.Background()
		if timeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, timeout)
			defer cancel()
		}
		users, err := f.FetchUsers(ctx)
		if err != nil {
			return UsersLoadedMsg{Err: err}
		}
		if users == nil {
			users = []directory.User{}
		}
		return UsersLoadedMsg{Users: users}
	}
}

// openLinkCmd returns a command that hands url to the opener.
func openLinkCmd(o browser.Opener, label, url string) tea.Cmd {
	return func() tea.Msg {
		if o == nil {
			return LinkOpenedMsg{Label: label, URL: url, Err: browser.ErrUnsupportedPlatform}
		}
		err := o.Open(context.Background(), url)
		return LinkOpenedMsg{Label: label, URL: url, Err: err}
	}
}

// openLink returns a command emitting OpenLinkMsg.
func openLink(label, url string) tea.Cmd {
	return func() tea.Msg {
		return OpenLinkMsg{Label: label, URL: url}
	}
}
