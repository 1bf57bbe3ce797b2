package ui

import (
	"strings"

	"userdir/internal/directory"
	"userdir/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const overlayCloseControl = "[×]"

// labelWidth aligns field values inside overlay sections.
const labelWidth = 13

// DetailOverlay renders one user's full record over the directory.
//
// Closing is not instantaneous: the overlay enters its closing state and
// emits CloseOverlayMsg after OverlayCloseDelay. Presses inside the content
// box never close it; presses outside it or on the close control do.
type DetailOverlay struct {
	User     directory.User
	id       int
	closing  bool
	width    int
	height   int
	keys     KeyMap
	schedule Scheduler
}

// Ensure DetailOverlay implements View.
var _ View = (*DetailOverlay)(nil)

// overlayGeometry locates the rendered box on screen.
type overlayGeometry struct {
	box    string
	x, y   int // top-left corner of the box
	w, h   int
	closeX int // first column of the close control
	closeY int
}

// NewDetailOverlay creates an overlay for u. id identifies this overlay
// instance in its CloseOverlayMsg.
func NewDetailOverlay(id int, u directory.User, schedule Scheduler) *DetailOverlay {
	if schedule == nil {
		schedule = TickScheduler
	}
	return &DetailOverlay{
		User:     u,
		id:       id,
		keys:     DefaultKeyMap(),
		schedule: schedule,
	}
}

// ID returns the overlay instance id.
func (o *DetailOverlay) ID() int { return o.id }

// Closing reports whether the exit transition has started.
func (o *DetailOverlay) Closing() bool { return o.closing }

// SetSize sets the area the overlay is centered in.
func (o *DetailOverlay) SetSize(width, height int) {
	o.width = width
	o.height = height
}

// Close starts the exit transition. Repeated calls are no-ops.
func (o *DetailOverlay) Close() tea.Cmd {
	if o.closing {
		return nil
	}
	o.closing = true
	return o.schedule(OverlayCloseDelay, CloseOverlayMsg{OverlayID: o.id})
}

// Init implements View.
func (o *DetailOverlay) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (o *DetailOverlay) Update(msg tea.Msg) (View, tea.Cmd) {
	if o.closing {
		return o, nil
	}
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		o.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, o.keys.Close):
			return o, o.Close()
		case key.Matches(msg, o.keys.Email):
			return o, openLink("email", o.User.MailtoURL())
		case key.Matches(msg, o.keys.Phone):
			return o, openLink("phone", o.User.TelURL())
		case key.Matches(msg, o.keys.Website):
			return o, openLink("website", o.User.WebsiteURL())
		case key.Matches(msg, o.keys.Map):
			return o, openLink("map", o.User.Address.Geo.MapURL())
		}
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return o, nil
		}
		g := o.geometry()
		if msg.Y == g.closeY && msg.X >= g.closeX && msg.X < g.closeX+textutil.VisualWidth(overlayCloseControl) {
			return o, o.Close()
		}
		if g.contains(msg.X, msg.Y) {
			return o, nil
		}
		return o, o.Close()
	}
	return o, nil
}

// View implements View.
func (o *DetailOverlay) View() string {
	g := o.geometry()
	if o.width <= g.w || o.height <= g.h {
		return g.box
	}
	return lipgloss.Place(o.width, o.height, lipgloss.Center, lipgloss.Center, g.box)
}

func (g overlayGeometry) contains(x, y int) bool {
	return x >= g.x && x < g.x+g.w && y >= g.y && y < g.y+g.h
}

// geometry renders the box and computes where lipgloss.Place puts it.
func (o *DetailOverlay) geometry() overlayGeometry {
	body := o.body()
	inner := lipgloss.Width(body)
	name := Styles.Title.Render(o.User.Name)
	gap := inner - lipgloss.Width(name) - textutil.VisualWidth(overlayCloseControl)
	if gap < 2 {
		gap = 2
		inner = lipgloss.Width(name) + gap + textutil.VisualWidth(overlayCloseControl)
	}
	titleLine := name + strings.Repeat(" ", gap) + Styles.Muted.Render(overlayCloseControl)

	style := Styles.Box
	if o.closing {
		style = Styles.BoxClosing
	}
	box := style.Render(titleLine + "\n" + body)

	g := overlayGeometry{box: box, w: lipgloss.Width(box), h: lipgloss.Height(box)}
	// lipgloss.Place centers by flooring half the gap on each axis.
	if o.width > g.w && o.height > g.h {
		g.x = (o.width - g.w) / 2
		g.y = (o.height - g.h) / 2
	}
	// border (1) + horizontal padding (2); border (1) + top padding (1)
	g.closeX = g.x + 3 + inner - textutil.VisualWidth(overlayCloseControl)
	g.closeY = g.y + 2
	return g
}

// body renders everything below the title line.
func (o *DetailOverlay) body() string {
	u := o.User
	var b strings.Builder

	b.WriteString(Styles.Muted.Render(u.Handle()) + "\n\n")

	b.WriteString(Styles.Section.Render("Contact Information") + "\n")
	b.WriteString(field("Email:", Styles.Link.Render(u.Email)))
	b.WriteString(field("Phone:", Styles.Link.Render(u.Phone)))
	b.WriteString(field("Website:", Styles.Link.Render(u.Website)))
	b.WriteString("\n")

	b.WriteString(Styles.Section.Render("Address") + "\n")
	b.WriteString(field("Street:", u.Address.Street))
	b.WriteString(field("Suite:", u.Address.Suite))
	b.WriteString(field("City:", u.Address.CityLine()))
	b.WriteString("  📍 " + Styles.Link.Render("View on Map") + " " + Styles.Muted.Render(u.Address.Geo.MapURL()) + "\n")
	b.WriteString("\n")

	b.WriteString(Styles.Section.Render("Company") + "\n")
	b.WriteString(field("Name:", u.Company.Name))
	b.WriteString(field("Catchphrase:", `"`+u.Company.CatchPhrase+`"`))
	b.WriteString(field("Business:", Styles.Muted.Render(u.Company.BS)))
	b.WriteString("\n")

	b.WriteString(Styles.Hint.Render("e email  p phone  w website  m map  esc close"))
	return b.String()
}

func field(label, value string) string {
	return "  " + Styles.Label.Render(textutil.PadRightVisual(label, labelWidth)) + " " + value + "\n"
}
