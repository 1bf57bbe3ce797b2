package ui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// Transition timings.
const (
	RemoveDelay       = 300 * time.Millisecond  // row removal after confirm
	ToastDwell        = 3000 * time.Millisecond // toast on screen before hiding
	ToastFade         = 200 * time.Millisecond  // toast hide transition
	OverlayCloseDelay = 200 * time.Millisecond  // detail overlay exit transition
)

// Scheduler returns a command that delivers msg after d.
//
// Timed messages carry a token from nextToken; receivers drop any message
// whose token is no longer current, which is how a superseded timer is
// cancelled.
type Scheduler func(d time.Duration, msg tea.Msg) tea.Cmd

// TickScheduler schedules with tea.Tick.
func TickScheduler(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}

var timerTokens atomic.Int64

// nextToken returns a timer token that is unique for the process. Tokens are
// never reused, so timers left behind by a discarded directory cannot match
// anything in the one mounted after it.
func nextToken() int {
	return int(timerTokens.Add(1))
}
