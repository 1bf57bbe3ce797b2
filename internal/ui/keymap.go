package ui

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every key binding in the app.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Top     key.Binding
	Bottom  key.Binding
	Open    key.Binding
	Delete  key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Email   key.Binding
	Phone   key.Binding
	Website key.Binding
	Map     key.Binding
	Dismiss key.Binding
	Close   key.Binding
	Reload  key.Binding
	Help    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap returns the standard bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("↓/j", "down")),
		Top:     key.NewBinding(key.WithKeys("g", "home"), key.WithHelp("g", "top")),
		Bottom:  key.NewBinding(key.WithKeys("G", "end"), key.WithHelp("G", "bottom")),
		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "details")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Confirm: key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "confirm")),
		Cancel:  key.NewBinding(key.WithKeys("n", "esc"), key.WithHelp("n/esc", "cancel")),
		Email:   key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "email")),
		Phone:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "phone")),
		Website: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "website")),
		Map:     key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "map")),
		Dismiss: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "dismiss")),
		Close:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "close")),
		Reload:  key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// bindingHelp adapts a contextual binding list to help.KeyMap.
type bindingHelp struct {
	short  []key.Binding
	global []key.Binding
}

// ShortHelp implements help.KeyMap.
func (b bindingHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, b.short...), b.global...)
}

// FullHelp implements help.KeyMap.
func (b bindingHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{b.short, b.global}
}
