package tui

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/ai-tools/internal/catalog"
)

// barChars are Unicode left-block elements ordered by width (1/8 to 8/8).
var barChars = []string{"▏", "▎", "▍", "▌", "▋", "▊", "▉", "█"}

// chartWidth is the number of cells a 100% bar occupies.
const chartWidth = 40

// renderPopularityChart renders one horizontal bar per tool, scaled so 100
// fills chartWidth cells. Returns empty string for no tools.
func renderPopularityChart(tools []catalog.Tool, theme *Theme) string {
	if len(tools) == 0 {
		return ""
	}

	nameW := 0
	for _, t := range tools {
		nameW = max(nameW, len(t.Name))
	}

	barStyle := lipgloss.NewStyle().Foreground(theme.Primary)
	axisStyle := lipgloss.NewStyle().Foreground(theme.Muted)

	var b strings.Builder
	b.WriteString("\n")
	for _, t := range tools {
		fmt.Fprintf(&b, "  %-*s %s", nameW, t.Name, axisStyle.Render("┤"))
		bar := popularityBar(t.Popularity)
		b.WriteString(barStyle.Render(bar))
		pad := chartWidth - len([]rune(bar))
		b.WriteString(strings.Repeat(" ", max(0, pad)))
		fmt.Fprintf(&b, " %s\n", theme.PopularityStr(t.Popularity))
	}

	// Axis: 0, 50 and 100 marks under the bar area.
	fmt.Fprintf(&b, "  %*s %s\n", nameW, "", axisStyle.Render("└"+strings.Repeat("─", chartWidth)))
	labels := fmt.Sprintf("%-*s%-*s%s", chartWidth/2, "0", chartWidth/2-1, "50", "100")
	fmt.Fprintf(&b, "  %*s  %s\n", nameW, "", axisStyle.Render(labels))
	return b.String()
}

// popularityBar returns the bar glyphs for a 0..100 value. Whole cells are
// full blocks; the remainder uses an eighth-width block.
func popularityBar(popularity int) string {
	popularity = min(max(popularity, 0), 100)
	eighths := popularity * chartWidth * 8 / 100
	full, frac := eighths/8, eighths%8
	bar := strings.Repeat("█", full)
	if frac > 0 {
		bar += barChars[frac-1]
	}
	return bar
}

// PopularityChartModel displays the current listing as a bar chart.
type PopularityChartModel struct {
	viewer *ViewerModel
}

// NewPopularityChart creates a chart viewer for tools in their listed order.
func NewPopularityChart(title string, tools []catalog.Tool, theme *Theme) *PopularityChartModel {
	content := renderPopularityChart(tools, theme)
	if content == "" {
		content = "\n  No tools match the current filters.\n"
	}
	return &PopularityChartModel{viewer: NewViewer(title, content, theme)}
}

func (m *PopularityChartModel) Init() tea.Cmd  { return m.viewer.Init() }
func (m *PopularityChartModel) View() tea.View { return m.viewer.View() }
func (m *PopularityChartModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.viewer.Update(msg)
	return m, cmd
}
