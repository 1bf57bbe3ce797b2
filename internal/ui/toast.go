package ui

import (
	"userdir/internal/ui/textutil"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	toastIcon  = "✓"
	toastClose = "[×]"
)

// ToastState is what the directory knows about its notification.
type ToastState struct {
	Message string
	Visible bool
}

// Toast is a dismissible, self-expiring notification.
//
// It is driven by a visibility flag from its parent (Sync) and runs its own
// timers independent of the parent's. On becoming visible it shows at once,
// starts hiding after ToastDwell and reports ToastClosedMsg ToastFade later.
// On becoming invisible it starts hiding at once and stops rendering after
// ToastFade. Every change takes a fresh gen so older timers are ignored.
type Toast struct {
	message  string
	visible  bool // parent's flag
	rendered bool
	leaving  bool // hide transition in progress
	gen      int
	schedule Scheduler
}

// Ensure Toast implements View.
var _ View = (*Toast)(nil)

// NewToast creates a hidden toast.
func NewToast(schedule Scheduler) *Toast {
	if schedule == nil {
		schedule = TickScheduler
	}
	return &Toast{schedule: schedule}
}

// Sync applies the parent's message and visibility flag. A new message while
// visible restarts the dwell timer.
func (t *Toast) Sync(message string, visible bool) tea.Cmd {
	changed := visible != t.visible || (visible && message != t.message)
	if !changed {
		t.message = message
		return nil
	}
	if visible {
		return t.Show(message)
	}
	t.message = message
	t.visible = false
	t.gen = nextToken()
	if !t.rendered {
		return nil
	}
	t.leaving = true
	return t.schedule(ToastFade, toastUnmountMsg{gen: t.gen})
}

// Show makes the toast visible with message and restarts the dwell timer,
// also when the same message is already showing.
func (t *Toast) Show(message string) tea.Cmd {
	t.message = message
	t.visible = true
	t.rendered = true
	t.leaving = false
	t.gen = nextToken()
	return t.schedule(ToastDwell, toastBeginHideMsg{gen: t.gen})
}

// Dismiss starts the hide transition and reports ToastClosedMsg after ToastFade.
func (t *Toast) Dismiss() tea.Cmd {
	if !t.rendered || t.leaving {
		return nil
	}
	t.gen = nextToken()
	t.leaving = true
	return t.schedule(ToastFade, toastCloseMsg{gen: t.gen})
}

// Visible reports whether the toast is on screen (including while leaving).
func (t *Toast) Visible() bool { return t.rendered }

// Leaving reports whether the hide transition is in progress.
func (t *Toast) Leaving() bool { return t.leaving }

// Message returns the current message.
func (t *Toast) Message() string { return t.message }

// Init implements View.
func (t *Toast) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (t *Toast) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case toastBeginHideMsg:
		if msg.gen != t.gen {
			return t, nil
		}
		t.leaving = true
		return t, t.schedule(ToastFade, toastCloseMsg{gen: t.gen})
	case toastCloseMsg:
		if msg.gen != t.gen {
			return t, nil
		}
		return t, func() tea.Msg { return ToastClosedMsg{} }
	case toastUnmountMsg:
		if msg.gen != t.gen {
			return t, nil
		}
		t.rendered = false
		t.leaving = false
	}
	return t, nil
}

// View implements View.
func (t *Toast) View() string {
	if !t.rendered {
		return ""
	}
	style := Styles.Toast
	icon := Styles.Success.Render(toastIcon)
	if t.leaving {
		style = Styles.ToastOut
		icon = toastIcon
	}
	return style.Render(icon + " " + t.message + "  " + Styles.Muted.Render(toastClose))
}

// closeColumn returns the column of the close control relative to the left
// edge of the rendered toast; the control sits on the toast's second line.
func (t *Toast) closeColumn() int {
	// border + padding, then "✓ " + message + "  "
	return 2 + textutil.VisualWidth(toastIcon+" "+t.message+"  ")
}
