package ui

import (
	"log/slog"

	"userdir/internal/browser"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// footerLines is the space kept below the directory for the status line and help.
const footerLines = 2

// AppModel is the root shell. It mounts the directory, owns the global keys,
// the status line and link opening, and remounts the directory on reload.
type AppModel struct {
	Directory     *DirectoryView
	NewDirectory  func() *DirectoryView
	Keys          KeyMap
	Help          help.Model
	Opener        browser.Opener
	Logger        *slog.Logger
	Status        string
	StatusIsError bool

	width  int
	height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
		opts.Logger = logger
	}
	newDirectory := func() *DirectoryView { return NewDirectoryView(opts) }
	return &AppModel{
		Directory:    newDirectory(),
		NewDirectory: newDirectory,
		Keys:         DefaultKeyMap(),
		Help:         help.New(),
		Opener:       opts.Opener,
		Logger:       logger,
	}
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return a.Directory.Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, a.Keys.Quit):
			return a, tea.Quit
		case key.Matches(msg, a.Keys.Help):
			a.Help.ShowAll = !a.Help.ShowAll
			return a, nil
		}
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.Help.Width = msg.Width
		a.Directory.Update(a.directorySize())
		return a, nil
	case ReloadMsg:
		a.Logger.Info("reloading directory")
		a.Directory = a.NewDirectory()
		a.Status = ""
		a.StatusIsError = false
		cmd := a.Directory.Init()
		if a.width > 0 {
			a.Directory.Update(a.directorySize())
		}
		return a, cmd
	case OpenLinkMsg:
		return a, openLinkCmd(a.Opener, msg.Label, msg.URL)
	case LinkOpenedMsg:
		if msg.Err != nil {
			a.Logger.Warn("open link", "label", msg.Label, "url", msg.URL, "err", msg.Err)
			a.Status = "Could not open " + msg.Label + ": " + msg.Err.Error()
			a.StatusIsError = true
			return a, nil
		}
		a.Logger.Debug("opened link", "label", msg.Label, "url", msg.URL)
		a.Status = "Opened " + msg.URL
		a.StatusIsError = false
		return a, nil
	}

	_, cmd := a.Directory.Update(msg)
	return a, cmd
}

func (a *appModelAdapter) directorySize() tea.WindowSizeMsg {
	return tea.WindowSizeMsg{Width: a.width, Height: max(0, a.height-footerLines)}
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.Directory.View()
	status := Styles.Muted.Render(a.Status)
	if a.StatusIsError {
		status = Styles.Error.Render(a.Status)
	}
	h := bindingHelp{
		short:  a.Directory.Bindings(),
		global: []key.Binding{a.Keys.Help, a.Keys.Quit},
	}
	return base + "\n" + status + "\n" + a.Help.View(h)
}
