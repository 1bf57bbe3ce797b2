package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - for titles, highlights
	ColorHighlight = "205" // Magenta - for selected items, borders
	ColorDanger    = "196" // Red - for warnings, errors
	ColorMuted     = "241" // Gray - for dimmed text, hints
	ColorText      = "252" // Light gray - for normal text
	ColorDim       = "243" // Darker gray - for very dim text
	ColorWarning   = "208" // Orange - for pending confirmations
	ColorSuccess   = "42"  // Green - for the toast check mark
	ColorLink      = "39"  // Blue - for mailto/tel/web cells
)

// Styles contains shared style definitions used across views.
var Styles = struct {
	// Title styles
	Title   lipgloss.Style // Bold accent color - for main titles
	Section lipgloss.Style // Section headers inside the detail overlay

	// Table styles
	Header   lipgloss.Style // Column headers
	Rule     lipgloss.Style // Horizontal rule under the header
	Selected lipgloss.Style // Row under the cursor
	Removing lipgloss.Style // Row mid-removal
	Pending  lipgloss.Style // Confirm/cancel action cell
	Link     lipgloss.Style // Email, phone and website cells

	// Box styles
	Box        lipgloss.Style // Detail overlay
	BoxClosing lipgloss.Style // Detail overlay during its exit transition
	Toast      lipgloss.Style // Toast notification
	ToastOut   lipgloss.Style // Toast during its hide transition

	// Text styles
	Muted   lipgloss.Style // Dimmed text (muted color)
	Normal  lipgloss.Style // Normal text (text color)
	Hint    lipgloss.Style // Help/hint text (muted color)
	Label   lipgloss.Style // Field labels in the detail overlay
	Success lipgloss.Style // Check mark
	Error   lipgloss.Style // Error view and error status
	Empty   lipgloss.Style // Empty state text (muted, italic)
	Button  lipgloss.Style // Inline buttons such as Refresh
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Section: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorText)),
	Rule: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Selected: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	Removing: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Strikethrough(true).
		Faint(true),
	Pending: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorWarning)).
		Bold(true),
	Link: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorLink)).
		Underline(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	BoxClosing: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(1, 2).
		Faint(true),
	Toast: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorSuccess)).
		Padding(0, 1),
	ToastOut: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorDim)).
		Padding(0, 1).
		Faint(true),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Label: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Success: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorSuccess)).
		Bold(true),
	Error: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDanger)).
		Bold(true),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Button: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
}
