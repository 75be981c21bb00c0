// Package tui provides the Bubble Tea terminal UI for ai-tools: the
// directory view with search, category sidebar and sort, plus quick-view,
// popularity chart and help screens.
package tui

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/ai-tools/internal/platform"
)

// IsAccessible returns true when the environment requests accessible (no-color) output.
func IsAccessible() bool {
	return platform.IsAccessible()
}

// Theme holds the lipgloss styles used throughout the TUI.
type Theme struct {
	// Brand colors
	Primary   color.Color
	Secondary color.Color
	Accent    color.Color

	// Status colors
	Success color.Color
	Error   color.Color
	Muted   color.Color

	// Component styles
	Title       lipgloss.Style
	Subtitle    lipgloss.Style
	SectionHead lipgloss.Style
	HelpKey     lipgloss.Style
	HelpDesc    lipgloss.Style
	Star        lipgloss.Style

	// Box styles
	Banner lipgloss.Style

	categories      map[string]lipgloss.Style
	defaultCategory lipgloss.Style
}

// badge builds a category badge from a tailwind-style 800/100 color pair.
func badge(fg, bg string) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1)
}

// DefaultTheme returns the standard ai-tools visual theme.
func DefaultTheme() Theme {
	primary := lipgloss.Color("#7C3AED")   // violet
	secondary := lipgloss.Color("#2563EB") // blue
	accent := lipgloss.Color("#FACC15")    // yellow

	success := lipgloss.Color("#10B981")  // emerald
	errColor := lipgloss.Color("#EF4444") // red
	muted := lipgloss.Color("#6B7280")    // gray

	return Theme{
		Primary:   primary,
		Secondary: secondary,
		Accent:    accent,
		Success:   success,
		Error:     errColor,
		Muted:     muted,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(primary),

		Subtitle: lipgloss.NewStyle().
			Foreground(muted),

		SectionHead: lipgloss.NewStyle().
			Bold(true).
			Foreground(secondary),

		HelpKey: lipgloss.NewStyle().
			Bold(true).
			Foreground(muted),

		HelpDesc: lipgloss.NewStyle().
			Foreground(muted),

		Star: lipgloss.NewStyle().
			Foreground(accent),

		Banner: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primary).
			Padding(0, 2),

		categories: map[string]lipgloss.Style{
			"Machine Learning":            badge("#1E40AF", "#DBEAFE"),
			"Natural Language Processing": badge("#166534", "#DCFCE7"),
			"Computer Vision":             badge("#6B21A8", "#F3E8FF"),
			"Robotics":                    badge("#991B1B", "#FEE2E2"),
			"Data Analysis":               badge("#854D0E", "#FEF9C3"),
			"Speech Recognition":          badge("#9D174D", "#FCE7F3"),
		},
		defaultCategory: badge("#1F2937", "#F3F4F6"),
	}
}

// CategoryStyle returns the badge style for a category. Categories without
// a dedicated color get the neutral gray badge.
func (t *Theme) CategoryStyle(category string) lipgloss.Style {
	if s, ok := t.categories[category]; ok {
		return s
	}
	return t.defaultCategory
}
