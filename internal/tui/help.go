package tui

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// HelpModel shows a keybinding reference overlay.
type HelpModel struct {
	theme *Theme
}

// NewHelp creates a new help overlay.
func NewHelp(theme *Theme) *HelpModel {
	return &HelpModel{theme: theme}
}

func (m *HelpModel) Init() tea.Cmd { return nil }

func (m *HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyPressMsg); ok {
		if IsQuit(msg) || IsBack(msg) || msg.String() == "?" {
			return m, popView
		}
	}
	return m, nil
}

// helpSections lists the bindings shown on the help screen.
var helpSections = []struct {
	title string
	binds [][2]string
}{
	{
		title: "Directory",
		binds: [][2]string{
			{"↑ / k", "Move up"},
			{"↓ / j", "Move down"},
			{"pgup / pgdn", "Page up / down"},
			{"g / G", "Go to top / bottom"},
			{keyTab, "Switch between tools and categories"},
			{keyEnter, "Quick view / select category"},
		},
	},
	{
		title: "Search & sort",
		binds: [][2]string{
			{"/", "Search names and categories"},
			{"enter / esc", "Finish typing"},
			{"s", "Toggle sort: name ↔ popularity"},
			{"esc", "Clear search and category filter"},
		},
	},
	{
		title: "Tools",
		binds: [][2]string{
			{"y", "Copy link to clipboard"},
			{"p", "Popularity chart of the current list"},
		},
	},
	{
		title: "Viewers",
		binds: [][2]string{
			{"j / k", "Scroll up / down"},
			{"g / G", "Go to top / bottom"},
			{"y", "Copy"},
			{"esc / q", "Close viewer"},
		},
	},
	{
		title: "General",
		binds: [][2]string{
			{"?", "Show / hide this screen"},
			{"q / ctrl+c", "Quit"},
		},
	},
}

func (m *HelpModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.theme.SectionBanner("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	keyStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Primary).Width(18)
	descStyle := lipgloss.NewStyle().Foreground(m.theme.Muted)
	headStyle := lipgloss.NewStyle().Bold(true).Foreground(m.theme.Secondary)

	for _, section := range helpSections {
		b.WriteString(headStyle.Render(section.title))
		b.WriteString("\n")
		for _, bind := range section.binds {
			b.WriteString("  " + keyStyle.Render(bind[0]) + descStyle.Render(bind[1]) + "\n")
		}
		b.WriteString("\n")
	}

	b.WriteString(m.theme.HelpKey.Render("esc / q / ?") + " " + m.theme.HelpDesc.Render("close"))

	return tea.NewView(b.String())
}
