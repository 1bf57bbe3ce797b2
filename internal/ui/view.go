package ui

import tea "github.com/charmbracelet/bubbletea"

// View is a component with Bubble Tea's Init/Update/View cycle. The toast,
// the detail overlay and the directory implement it; AppModel adapts the
// root to tea.Model.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}
