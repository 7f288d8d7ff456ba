// Package tui provides the interactive terminal catalog browser.
package tui

import (
	"fmt"
	"path/filepath"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.seanlatimer.dev/amhub/internal/catalog"
	"go.seanlatimer.dev/amhub/internal/export"
	"go.seanlatimer.dev/amhub/internal/query"
	"go.seanlatimer.dev/amhub/internal/selection"
	"go.uber.org/zap"
)

type viewModel interface {
	tea.Model
	Title() string
}

type BrowserOptions struct {
	Catalog *catalog.Catalog
	// Categories is the configured category bar. Catalog categories it does
	// not name are appended.
	Categories []string
	Sink       export.Sink
	// ExportDir is only used to tell the user where files went.
	ExportDir string
	Logger    *zap.Logger
}

// browseState is shared by every view on the stack.
type browseState struct {
	presets    []catalog.Preset
	memo       *query.Memo
	categories []string
	sink       export.Sink
	exportDir  string
	selection  *selection.Selection
	logger     *zap.Logger
	width      int
	height     int
}

type browserAppModel struct {
	stack []viewModel
	state *browseState
}

type pushViewMsg struct {
	view viewModel
}

// popViewMsg removes the top view. A non-nil result is delivered to the view
// underneath once it is back on top.
type popViewMsg struct {
	result tea.Msg
}

type quitAppMsg struct{}

func ShowBrowser(opts BrowserOptions) error {
	app := newBrowserAppModel(opts)
	program := tea.NewProgram(app)
	_, err := program.Run()
	return err
}

func newBrowserAppModel(opts BrowserOptions) browserAppModel {
	state := newBrowseState(opts)
	root := newBrowserView(state)
	return browserAppModel{
		stack: []viewModel{root},
		state: state,
	}
}

func newBrowseState(opts BrowserOptions) *browseState {
	var presets []catalog.Preset
	var present []string
	if opts.Catalog != nil {
		presets = opts.Catalog.Presets()
		present = opts.Catalog.Categories()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	sink := opts.Sink
	if sink == nil {
		sink = export.NewFileSink(opts.ExportDir)
	}
	return &browseState{
		presets:    presets,
		memo:       query.NewMemo(presets),
		categories: query.CategorySet(opts.Categories, present),
		sink:       sink,
		exportDir:  opts.ExportDir,
		selection:  &selection.Selection{},
		logger:     logger,
	}
}

func (s *browseState) exportPath(name string) string {
	if s.exportDir == "" {
		return name
	}
	return filepath.Join(s.exportDir, name)
}

func (m browserAppModel) Init() tea.Cmd {
	return tea.RequestBackgroundColor
}

func (m browserAppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.BackgroundColorMsg:
		appStyles = newStyles()
		return m, nil
	case pushViewMsg:
		m.stack = append(m.stack, msg.view)
		return m, nil
	case popViewMsg:
		if len(m.stack) <= 1 {
			return m, tea.Quit
		}
		m.stack = m.stack[:len(m.stack)-1]
		if msg.result == nil {
			return m, nil
		}
		return m.updateTop(msg.result)
	case quitAppMsg:
		return m, tea.Quit
	case tea.WindowSizeMsg:
		m.state.width = msg.Width
		m.state.height = msg.Height
		// Views below the top keep their own layout and must be resized too.
		var cmds []tea.Cmd
		for i, view := range m.stack {
			updated, cmd := view.Update(msg)
			if v, ok := updated.(viewModel); ok {
				m.stack[i] = v
			}
			cmds = append(cmds, cmd)
		}
		return m, tea.Batch(cmds...)
	}

	return m.updateTop(msg)
}

func (m browserAppModel) updateTop(msg tea.Msg) (tea.Model, tea.Cmd) {
	current := m.currentView()
	if current == nil {
		return m, tea.Quit
	}
	updated, cmd := current.Update(msg)
	if view, ok := updated.(viewModel); ok {
		m.stack[len(m.stack)-1] = view
	}
	return m, cmd
}

func (m browserAppModel) View() tea.View {
	current := m.currentView()
	if current == nil {
		v := tea.NewView("")
		v.SetContent("No view available")
		return v
	}
	content := ""
	if provider, ok := current.(interface{ Content() string }); ok {
		content = provider.Content()
	}
	if m.state.width > 0 && m.state.height > 0 {
		content = lipgloss.Place(m.state.width, m.state.height, lipgloss.Center, lipgloss.Center, content)
	}
	v := tea.NewView("")
	v.SetContent(content)
	v.AltScreen = true
	v.WindowTitle = fmt.Sprintf("AM Hub • %s", current.Title())
	return v
}

func (m browserAppModel) currentView() viewModel {
	if len(m.stack) == 0 {
		return nil
	}
	return m.stack[len(m.stack)-1]
}

func pushView(view viewModel) tea.Cmd {
	return func() tea.Msg {
		return pushViewMsg{view: view}
	}
}

func popView(result tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return popViewMsg{result: result}
	}
}

func quitApp() tea.Cmd {
	return func() tea.Msg {
		return quitAppMsg{}
	}
}
