package tui

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/lamchakchan/ai-tools/internal/catalog"
)

// Options configures the interactive directory.
type Options struct {
	Sort   catalog.SortKey // initial ordering; empty means popularity
	Logger *zap.Logger     // nil disables logging
}

// appModel is the root model that manages the navigation stack.
type appModel struct {
	stack  []tea.Model // view navigation stack
	names  []string    // view names, parallel to stack
	width  int
	height int
	log    *zap.Logger
}

// Run starts the interactive directory over c. It returns immediately in
// accessible/no-color mode so the caller can print a plain listing instead.
func Run(c *catalog.Catalog, opts Options) error {
	if IsAccessible() {
		return nil
	}

	app := newApp(c, opts)
	app.log.Info("starting directory", zap.Int("tools", c.Len()), zap.String("sort", string(opts.Sort)))

	p := tea.NewProgram(app)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

func newApp(c *catalog.Catalog, opts Options) *appModel {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	sort := opts.Sort
	if sort == "" {
		sort = catalog.DefaultSort
	}
	theme := DefaultTheme()
	return &appModel{
		stack: []tea.Model{NewDirectory(c, sort, &theme, log)},
		names: []string{"directory"},
		log:   log,
	}
}

func (m *appModel) current() tea.Model { return m.stack[len(m.stack)-1] }

func (m *appModel) Init() tea.Cmd {
	return m.current().Init()
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if len(m.stack) > 1 {
			// The directory stays on the stack under every other view.
			root, _ := m.stack[0].Update(msg)
			m.stack[0] = root
		}

	case PushViewMsg:
		m.stack = append(m.stack, msg.Model)
		m.names = append(m.names, msg.Name)
		m.log.Info("push view", zap.String("view", msg.Name), zap.Int("depth", len(m.stack)))
		initCmd := msg.Model.Init()
		// Forward current window size to newly pushed view.
		var sizeCmd tea.Cmd
		if m.width > 0 && m.height > 0 {
			updated, cmd := msg.Model.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
			m.stack[len(m.stack)-1] = updated
			sizeCmd = cmd
		}
		return m, tea.Batch(initCmd, sizeCmd)

	case PopViewMsg:
		if len(m.stack) == 1 {
			return m, tea.Quit
		}
		m.log.Info("pop view", zap.String("view", m.names[len(m.names)-1]))
		m.stack = m.stack[:len(m.stack)-1]
		m.names = m.names[:len(m.names)-1]
		return m, nil
	}

	// Forward everything else, including size changes, to the current view.
	updated, cmd := m.current().Update(msg)
	m.stack[len(m.stack)-1] = updated
	return m, cmd
}

func (m *appModel) View() tea.View {
	var v tea.View
	v.AltScreen = true
	v.Content = m.current().View().Content
	return v
}
