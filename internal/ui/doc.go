// Package ui implements the user directory TUI with Bubble Tea.
//
// Components, leaf to root:
//   - Toast: dismissible, self-expiring notification
//   - DetailOverlay: one user's full record, closed with a short exit transition
//   - DirectoryView: the user table, fetch lifecycle and delete workflow
//   - AppModel: root shell with global keys, status line and link opening
//
// Every delay is scheduled through a Scheduler so tests can drive virtual time.
package ui
