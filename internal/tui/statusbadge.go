package tui

import (
	"fmt"

	"charm.land/lipgloss/v2"
)

// CategoryBadge renders a category label in its badge colors.
func (t *Theme) CategoryBadge(category string) string {
	return t.CategoryStyle(category).Render(category)
}

// StarStr renders the featured marker.
func (t *Theme) StarStr() string {
	return t.Star.Render("★")
}

// PopularityStr renders "NN%" colored by how popular the tool is.
func (t *Theme) PopularityStr(popularity int) string {
	c := t.Muted
	switch {
	case popularity >= 90:
		c = t.Success
	case popularity >= 80:
		c = t.Secondary
	}
	return lipgloss.NewStyle().Foreground(c).Bold(popularity >= 90).Render(fmt.Sprintf("%3d%%", popularity))
}
