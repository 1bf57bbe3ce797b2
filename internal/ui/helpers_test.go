package ui

import (
	"context"
	"sort"
	"strings"
	"testing"
	"time"

	"userdir/internal/directory"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// fakeClock is a Scheduler that records timers instead of sleeping.
type fakeClock struct {
	now    time.Duration
	seq    int
	timers []fakeTimer
}

type fakeTimer struct {
	at  time.Duration
	seq int
	msg tea.Msg
}

func (c *fakeClock) schedule(d time.Duration, msg tea.Msg) tea.Cmd {
	c.seq++
	c.timers = append(c.timers, fakeTimer{at: c.now + d, seq: c.seq, msg: msg})
	return nil
}

// pop removes and returns the earliest timer due at or before until.
func (c *fakeClock) pop(until time.Duration) (fakeTimer, bool) {
	if len(c.timers) == 0 {
		return fakeTimer{}, false
	}
	sort.SliceStable(c.timers, func(i, j int) bool {
		if c.timers[i].at != c.timers[j].at {
			return c.timers[i].at < c.timers[j].at
		}
		return c.timers[i].seq < c.timers[j].seq
	})
	next := c.timers[0]
	if next.at > until {
		return fakeTimer{}, false
	}
	c.timers = c.timers[1:]
	return next, true
}

// loop drives a model synchronously: commands run inline and their
// messages are fed back, timers fire when the clock advances.
type loop struct {
	t      *testing.T
	clock  *fakeClock
	update func(tea.Msg) tea.Cmd
	// external reports messages that are recorded but not fed back.
	external func(tea.Msg) bool
	emitted  []tea.Msg
}

func newLoop(t *testing.T, update func(tea.Msg) tea.Cmd) *loop {
	t.Helper()
	return &loop{
		t:        t,
		clock:    &fakeClock{},
		update:   update,
		external: func(tea.Msg) bool { return false },
	}
}

func (l *loop) send(msg tea.Msg) {
	l.run(l.update(msg))
}

func (l *loop) run(cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case nil:
	case tea.BatchMsg:
		for _, c := range msg {
			l.run(c)
		}
	case spinner.TickMsg, tea.QuitMsg:
		l.emitted = append(l.emitted, msg)
	default:
		l.emitted = append(l.emitted, msg)
		if !l.external(msg) {
			l.send(msg)
		}
	}
}

// advance moves virtual time forward by d, delivering due timers in order.
func (l *loop) advance(d time.Duration) {
	target := l.clock.now + d
	for {
		next, ok := l.clock.pop(target)
		if !ok {
			break
		}
		l.clock.now = next.at
		l.send(next.msg)
	}
	l.clock.now = target
}

// last returns the most recent emitted message of type T.
func last[T any](l *loop) (T, bool) {
	for i := len(l.emitted) - 1; i >= 0; i-- {
		if m, ok := l.emitted[i].(T); ok {
			return m, true
		}
	}
	var zero T
	return zero, false
}

type stubFetcher struct {
	users []directory.User
	err   error
	calls int
}

func (s *stubFetcher) FetchUsers(context.Context) ([]directory.User, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return append([]directory.User(nil), s.users...), nil
}

// keyMsg creates a tea.KeyMsg for testing.
func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func plain(s string) string {
	return ansi.Strip(s)
}

func lines(s string) []string {
	return strings.Split(plain(s), "\n")
}

func testUsers() []directory.User {
	return []directory.User{
		{
			ID:       1,
			Name:     "Leanne Graham",
			Username: "Bret",
			Email:    "Sincere@april.biz",
			Address: directory.Address{
				Street:  "Kulas Light",
				Suite:   "Apt. 556",
				City:    "Gwenborough",
				Zipcode: "92998-3874",
				Geo:     directory.Geo{Lat: "-37.3159", Lng: "81.1496"},
			},
			Phone:   "1-770-736-8031 x56442",
			Website: "hildegard.org",
			Company: directory.Company{
				Name:        "Romaguera-Crona",
				CatchPhrase: "Multi-layered client-server neural-net",
				BS:          "harness real-time e-markets",
			},
		},
		{
			ID:       2,
			Name:     "Ervin Howell",
			Username: "Antonette",
			Email:    "Shanna@melissa.tv",
			Address: directory.Address{
				Street: "Victor Plains", Suite: "Suite 879", City: "Wisokyburgh", Zipcode: "90566-7771",
				Geo: directory.Geo{Lat: "-43.9509", Lng: "-34.4618"},
			},
			Phone:   "010-692-6593 x09125",
			Website: "anastasia.net",
			Company: directory.Company{Name: "Deckow-Crist", CatchPhrase: "Proactive didactic contingency", BS: "synergize scalable supply-chains"},
		},
		{
			ID:       3,
			Name:     "Clementine Bauch",
			Username: "Samantha",
			Email:    "Nathan@yesenia.net",
			Address: directory.Address{
				Street: "Douglas Extension", Suite: "Suite 847", City: "McKenziehaven", Zipcode: "59590-4157",
				Geo: directory.Geo{Lat: "-68.6102", Lng: "-47.0653"},
			},
			Phone:   "1-463-123-4447",
			Website: "ramiro.info",
			Company: directory.Company{Name: "Romaguera-Jacobson", CatchPhrase: "Face to face bifurcated interface", BS: "e-enable strategic applications"},
		},
		{
			ID:       4,
			Name:     "Patricia Lebsack",
			Username: "Karianne",
			Email:    "Julianne.OConner@kory.org",
			Address: directory.Address{
				Street: "Hoeger Mall", Suite: "Apt. 692", City: "South Elvis", Zipcode: "53919-4257",
				Geo: directory.Geo{Lat: "29.4572", Lng: "-164.2990"},
			},
			Phone:   "493-170-9623 x156",
			Website: "kale.biz",
			Company: directory.Company{Name: "Robel-Corkery", CatchPhrase: "Multi-tiered zero tolerance productivity", BS: "transition cutting-edge web services"},
		},
	}
}

func userIDs(users []directory.User) []int {
	ids := make([]int, len(users))
	for i, u := range users {
		ids[i] = u.ID
	}
	return ids
}
