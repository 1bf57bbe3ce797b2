package ui

import (
	"fmt"
	"strings"

	"userdir/internal/directory"
	"userdir/internal/ui/textutil"

	"github.com/charmbracelet/lipgloss"
)

// Table columns in display order.
const (
	colName = iota
	colEmail
	colAddress
	colPhone
	colWebsite
	colCompany
	colActions
	colNone = -1
)

const (
	defaultWidth = 160
	cursorGutter = 2
	colGap       = 2
	minColWidth  = 6
	actionsWidth = 22

	// rowsTop is the screen line of the first table row: title, blank,
	// header, rule.
	rowsTop = 4
	// chromeLines is everything on screen besides rows: the lines above
	// rowsTop, a blank line and a three-line toast.
	chromeLines = rowsTop + 4
)

// Hit ranges inside the action cell.
const (
	confirmStart = 0
	confirmEnd   = 11
	cancelStart  = 12
	cancelEnd    = 22
	deleteEnd    = 8
)

const (
	confirmLabel  = "[✓ Confirm]"
	cancelLabel   = "[✕ Cancel]"
	deleteLabel   = "[Delete]"
	removingLabel = "removing…"
)

var columnTitles = [...]string{"Name", "Email", "Address", "Phone", "Website", "Company", "Actions"}

// columnWeights splits flexible width between the data columns.
var columnWeights = [...]int{16, 20, 28, 16, 12, 16}

// tableGeometry records where the last render put things, for mouse hits.
type tableGeometry struct {
	rowsTop  int
	offset   int
	visible  int
	widths   [len(columnTitles)]int
	toastTop int
}

// columnAt returns the column under screen column x and the offset of x
// inside that column, or colNone when x falls in the gutter or a gap.
func (g tableGeometry) columnAt(x int) (int, int) {
	left := cursorGutter
	for i, w := range g.widths {
		if x >= left && x < left+w {
			return i, x - left
		}
		left += w + colGap
	}
	return colNone, 0
}

// columnWidths fits the columns into width, keeping the action cell fixed.
func columnWidths(width int) [len(columnTitles)]int {
	if width <= 0 {
		width = defaultWidth
	}
	var widths [len(columnTitles)]int
	widths[colActions] = actionsWidth

	flex := width - cursorGutter - actionsWidth - colGap*(len(columnTitles)-1)
	total := 0
	for _, w := range columnWeights {
		total += w
	}
	for i, w := range columnWeights {
		widths[i] = max(minColWidth, flex*w/total)
	}
	return widths
}

// visibleRows is how many table rows fit on screen.
func (d *DirectoryView) visibleRows() int {
	if d.height <= 0 {
		return max(1, len(d.Users))
	}
	return max(1, d.height-chromeLines)
}

// render draws the current top-level view and reports its geometry.
func (d *DirectoryView) render() (string, tableGeometry) {
	g := tableGeometry{rowsTop: rowsTop, offset: d.offset, widths: columnWidths(d.width)}

	var body string
	switch {
	case d.Loading:
		body = d.spinner.View() + " Loading..."
	case d.Err != nil:
		body = Styles.Error.Render("Error: " + d.Err.Error())
	case len(d.Users) == 0:
		body = d.renderEmpty()
	default:
		body = d.renderTable(&g)
	}

	g.toastTop = lipgloss.Height(body) + 1
	if toast := d.toast.View(); toast != "" {
		body += "\n\n" + toast
	}
	return body, g
}

func (d *DirectoryView) renderEmpty() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("No Users Found") + "\n")
	b.WriteString(Styles.Empty.Render("There are currently no users to display.") + "\n\n")
	b.WriteString(Styles.Button.Render("[ Refresh Page ]") + Styles.Hint.Render(" (r)"))
	return b.String()
}

func (d *DirectoryView) renderTable(g *tableGeometry) string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("User Directory (%d)", len(d.Users))) + "\n\n")

	header := textutil.Columns(columnTitles[:], g.widths[:], colGap)
	b.WriteString(strings.Repeat(" ", cursorGutter) + Styles.Header.Render(header) + "\n")

	ruleWidth := colGap * (len(columnTitles) - 1)
	for _, w := range g.widths {
		ruleWidth += w
	}
	b.WriteString(strings.Repeat(" ", cursorGutter) + Styles.Rule.Render(strings.Repeat("─", ruleWidth)))

	g.visible = d.visibleRows()
	end := min(len(d.Users), d.offset+g.visible)
	for i := d.offset; i < end; i++ {
		b.WriteString("\n" + d.renderRow(i, g.widths))
	}
	return b.String()
}

func (d *DirectoryView) renderRow(i int, widths [len(columnTitles)]int) string {
	u := d.Users[i]
	gutter := strings.Repeat(" ", cursorGutter)
	if i == d.cursor {
		gutter = Styles.Selected.Render("›") + " "
	}

	values := rowValues(u)
	if d.removing.is(u.ID) {
		line := textutil.Columns(append(values, removingLabel), widths[:], colGap)
		return gutter + Styles.Removing.Render(line)
	}

	cells := make([]string, 0, len(columnTitles))
	for c, v := range values {
		style := Styles.Normal
		switch {
		case c == colEmail || c == colPhone || c == colWebsite:
			style = Styles.Link
		case c == colName && i == d.cursor:
			style = Styles.Selected
		}
		cells = append(cells, cell(v, widths[c], style))
	}
	cells = append(cells, d.actionCell(u.ID))
	return gutter + strings.Join(cells, strings.Repeat(" ", colGap))
}

func (d *DirectoryView) actionCell(id int) string {
	if d.pending.is(id) {
		return Styles.Pending.Render(confirmLabel) + " " + Styles.Muted.Render(cancelLabel)
	}
	return Styles.Button.Render(deleteLabel) + strings.Repeat(" ", actionsWidth-textutil.VisualWidth(deleteLabel))
}

func rowValues(u directory.User) []string {
	return []string{
		u.Name,
		u.Email,
		u.Address.SingleLine(),
		u.Phone,
		u.Website,
		u.Company.Name,
	}
}

// cell truncates s to width, styles it and pads with unstyled spaces.
func cell(s string, width int, style lipgloss.Style) string {
	s = textutil.Truncate(s, width)
	return style.Render(s) + strings.Repeat(" ", width-textutil.VisualWidth(s))
}
