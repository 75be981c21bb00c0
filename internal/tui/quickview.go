package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/lamchakchan/ai-tools/internal/catalog"
)

// QuickViewModel shows one tool's details in a scrollable viewer.
type QuickViewModel struct {
	tool   catalog.Tool
	viewer *ViewerModel
}

// NewQuickView creates the detail panel for tool. y copies its link.
func NewQuickView(tool catalog.Tool, theme *Theme) *QuickViewModel {
	v := NewViewer(tool.Name, formatQuickView(tool, theme), theme)
	v.SetCopy(tool.Link, "copy link")
	return &QuickViewModel{tool: tool, viewer: v}
}

func (m *QuickViewModel) Init() tea.Cmd  { return m.viewer.Init() }
func (m *QuickViewModel) View() tea.View { return m.viewer.View() }
func (m *QuickViewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.viewer.Update(msg)
	return m, cmd
}

func formatQuickView(t catalog.Tool, theme *Theme) string {
	var b strings.Builder

	title := theme.Title.Render(t.Name)
	if t.Featured {
		title += " " + theme.StarStr()
	}
	b.WriteString("  " + title + "\n")
	b.WriteString("  " + theme.CategoryBadge(t.Category) + "\n\n")

	for _, line := range strings.Split(t.Description, "\n") {
		b.WriteString("  " + line + "\n")
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "  %s %s popularity\n", theme.StarStr(), theme.PopularityStr(t.Popularity))
	fmt.Fprintf(&b, "  %s %s\n", theme.HelpKey.Render("Try it:"), t.Link)
	if t.ImageRef != "" {
		fmt.Fprintf(&b, "  %s %s\n", theme.HelpKey.Render("Image: "), theme.HelpDesc.Render(t.ImageRef))
	}
	return b.String()
}
