package tui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// SectionBanner renders a bold section header with a horizontal rule.
//
//	──────────────────────────────
//	▶ Title
func (t *Theme) SectionBanner(title string) string {
	rule := lipgloss.NewStyle().Foreground(t.Secondary).Render(strings.Repeat("─", 40))
	heading := lipgloss.NewStyle().Bold(true).Foreground(t.Secondary).Render("▶ " + title)
	return fmt.Sprintf("\n%s\n  %s\n", rule, heading)
}

// HeaderBanner renders the boxed directory title and tagline. A positive
// width fixes the box width and wraps the tagline inside it.
func (t *Theme) HeaderBanner(title, tagline string, width int) string {
	style := t.Banner
	if width > 0 {
		style = style.Width(width)
	}
	return style.Render(t.Title.Render(title) + "\n" + t.Subtitle.Render(tagline))
}

// truncateLines cuts every line of s to at most width cells, marking cut
// lines with an ellipsis. Non-positive widths leave s unchanged.
func truncateLines(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return strings.Join(lines, "\n")
}
