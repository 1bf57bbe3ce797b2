package ui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOpener struct {
	urls []string
	err  error
}

func (f *fakeOpener) Open(_ context.Context, url string) error {
	f.urls = append(f.urls, url)
	return f.err
}

func newAppLoop(t *testing.T, f *stubFetcher, o *fakeOpener) (*AppModel, tea.Model, *loop) {
	t.Helper()
	var model tea.Model
	l := newLoop(t, func(msg tea.Msg) tea.Cmd {
		_, cmd := model.Update(msg)
		return cmd
	})
	opts := Options{Fetcher: f, Scheduler: l.clock.schedule}
	if o != nil {
		opts.Opener = o
	}
	app := NewAppModel(opts)
	model = app.AsTeaModel()
	l.run(model.Init())
	return app, model, l
}

func TestApp_Quit(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		_, model, _ := newAppLoop(t, &stubFetcher{users: testUsers()}, &fakeOpener{})
		_, cmd := model.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestApp_HelpToggle(t *testing.T) {
	app, model, l := newAppLoop(t, &stubFetcher{users: testUsers()}, &fakeOpener{})
	assert.False(t, app.Help.ShowAll)
	l.send(keyMsg("?"))
	assert.True(t, app.Help.ShowAll)
	assert.Contains(t, plain(model.View()), "delete")
	l.send(keyMsg("?"))
	assert.False(t, app.Help.ShowAll)
}

func TestApp_WindowSizeReservesFooter(t *testing.T) {
	app, _, l := newAppLoop(t, &stubFetcher{users: testUsers()}, &fakeOpener{})
	l.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	assert.Equal(t, 120, app.Directory.width)
	assert.Equal(t, 30-footerLines, app.Directory.height)
}

func TestApp_ReloadMountsFreshDirectory(t *testing.T) {
	f := &stubFetcher{users: nil}
	app, model, l := newAppLoop(t, f, &fakeOpener{})
	require.Equal(t, 1, f.calls)
	assert.Contains(t, plain(model.View()), "No Users Found")

	l.send(tea.WindowSizeMsg{Width: 120, Height: 30})
	old := app.Directory
	f.users = testUsers()
	l.send(keyMsg("r"))

	assert.Equal(t, 2, f.calls)
	assert.NotSame(t, old, app.Directory)
	assert.Len(t, app.Directory.Users, 4)
	assert.Equal(t, 30-footerLines, app.Directory.height)
	assert.Contains(t, plain(model.View()), "User Directory (4)")
}

func TestApp_OpenLink(t *testing.T) {
	o := &fakeOpener{}
	app, model, l := newAppLoop(t, &stubFetcher{users: testUsers()}, o)

	l.send(keyMsg("e"))
	assert.Equal(t, []string{"mailto:Sincere@april.biz"}, o.urls)
	assert.False(t, app.StatusIsError)
	assert.Equal(t, "Opened mailto:Sincere@april.biz", app.Status)
	assert.Contains(t, plain(model.View()), "Opened mailto:Sincere@april.biz")
}

func TestApp_OpenLinkFailure(t *testing.T) {
	o := &fakeOpener{err: errors.New("exit status 3")}
	app, _, l := newAppLoop(t, &stubFetcher{users: testUsers()}, o)

	l.send(keyMsg("w"))
	assert.True(t, app.StatusIsError)
	assert.Equal(t, "Could not open website: exit status 3", app.Status)
	assert.Len(t, app.Directory.Users, 4, "link failures leave the directory alone")
}

func TestApp_OpenLinkWithoutOpener(t *testing.T) {
	app, _, l := newAppLoop(t, &stubFetcher{users: testUsers()}, nil)
	l.send(keyMsg("p"))
	assert.True(t, app.StatusIsError)
}

func TestApp_DeleteFlowThroughShell(t *testing.T) {
	app, model, l := newAppLoop(t, &stubFetcher{users: testUsers()}, &fakeOpener{})
	l.send(tea.WindowSizeMsg{Width: 160, Height: 40})

	l.send(keyMsg("d"))
	l.send(keyMsg("y"))
	l.advance(RemoveDelay)

	assert.Equal(t, []int{2, 3, 4}, userIDs(app.Directory.Users))
	assert.Contains(t, plain(model.View()), "Leanne Graham deleted successfully")
}

func TestApp_ReloadDropsTimersFromPreviousDirectory(t *testing.T) {
	f := &stubFetcher{users: testUsers()[:1]}
	app, _, l := newAppLoop(t, f, &fakeOpener{})
	l.send(tea.WindowSizeMsg{Width: 160, Height: 40})

	l.send(keyMsg("d"))
	l.send(keyMsg("y"))
	l.advance(RemoveDelay)
	require.Empty(t, app.Directory.Users)
	require.True(t, app.Directory.Toast().Visible())

	l.advance(100 * time.Millisecond)
	f.users = testUsers()
	l.send(keyMsg("r"))
	require.Len(t, app.Directory.Users, 4)

	l.send(keyMsg("j"))
	l.send(keyMsg("d"))
	l.send(keyMsg("y"))
	l.advance(RemoveDelay)
	require.Equal(t, []int{1, 3, 4}, userIDs(app.Directory.Users))

	// The first directory's toast timers come due in here and are ignored.
	l.advance(ToastDwell - time.Millisecond)
	assert.Equal(t, "Ervin Howell deleted successfully", app.Directory.ToastState().Message)
	assert.True(t, app.Directory.ToastState().Visible)
	assert.True(t, app.Directory.Toast().Visible())
	assert.False(t, app.Directory.Toast().Leaving())

	l.advance(time.Millisecond)
	assert.False(t, app.Directory.ToastState().Visible)
}
