package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// scrollbarWidth is the space reserved for the scrollbar column (space + char).
const scrollbarWidth = 2

// renderScrollbar returns a single-column string (one char per row) showing
// a scrollbar track with a proportional thumb. Returns empty string when
// all content fits on screen.
func renderScrollbar(trackHeight, totalItems, visibleItems int, scrollPercent float64, theme *Theme) string {
	if totalItems <= visibleItems || trackHeight < 1 {
		return ""
	}
	thumbSize := max(1, trackHeight*visibleItems/totalItems)
	thumbStart := max(0, int(scrollPercent*float64(trackHeight-thumbSize)))
	if thumbStart+thumbSize > trackHeight {
		thumbStart = trackHeight - thumbSize
	}

	track := lipgloss.NewStyle().Foreground(theme.Muted)
	thumb := lipgloss.NewStyle().Foreground(theme.Secondary)

	lines := make([]string, trackHeight)
	for i := range lines {
		if i >= thumbStart && i < thumbStart+thumbSize {
			lines[i] = thumb.Render("┃")
		} else {
			lines[i] = track.Render("│")
		}
	}
	return strings.Join(lines, "\n")
}

// ViewerModel wraps a bubbles viewport with a title bar, help footer,
// and scroll percentage indicator. y copies copyText (the content when unset).
type ViewerModel struct {
	title    string
	viewport viewport.Model
	theme    *Theme
	ready    bool
	copied   bool
	copyText string
	copyDesc string
	width    int
	height   int
}

// NewViewer creates a viewer over static content.
func NewViewer(title, content string, theme *Theme) *ViewerModel {
	vp := viewport.New()
	vp.SoftWrap = true
	vp.SetContent(content)

	return &ViewerModel{
		title:    title,
		viewport: vp,
		theme:    theme,
		copyDesc: "copy",
	}
}

// SetCopy changes what y copies and how the footer describes it.
func (m *ViewerModel) SetCopy(text, desc string) {
	m.copyText = text
	m.copyDesc = desc
}

// SetSize initializes or resizes the viewport to the given dimensions.
func (m *ViewerModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	vpHeight := max(1, height-viewerHeaderLines-viewerFooterLines)
	vpWidth := max(1, width-scrollbarWidth)
	content := m.viewport.GetContent()
	m.viewport = viewport.New(viewport.WithWidth(vpWidth), viewport.WithHeight(vpHeight))
	m.viewport.SoftWrap = true
	if content != "" {
		m.viewport.SetContent(content)
	}
	m.ready = true
}

const viewerHeaderLines = 4 // section banner + blank line
const viewerFooterLines = 2 // blank line + help text

func (m *ViewerModel) Init() tea.Cmd { return nil }

func (m *ViewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if !m.ready {
			m.SetSize(msg.Width, msg.Height)
			return m, nil
		}
		m.width = msg.Width
		m.height = msg.Height
		m.viewport.SetWidth(max(1, msg.Width-scrollbarWidth))
		m.viewport.SetHeight(max(1, msg.Height-viewerHeaderLines-viewerFooterLines))
		return m, nil

	case copiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", keyCtrlC, keyEsc:
			return m, popView
		case "g":
			m.viewport.GotoTop()
			return m, nil
		case "G":
			m.viewport.GotoBottom()
			return m, nil
		case "y":
			text := m.copyText
			if text == "" {
				text = m.viewport.GetContent()
			}
			m.copied = true
			return m, tea.Batch(tea.SetClipboard(text), clearCopiedAfter(2*time.Second))
		}
	}

	if m.ready {
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

func clearCopiedAfter(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return copiedMsg{} })
}

func (m *ViewerModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.theme.SectionBanner(m.title))
	b.WriteString("\n")

	if m.ready {
		vpContent := m.viewport.View()
		totalLines := strings.Count(m.viewport.GetContent(), "\n") + 1
		vpHeight := m.viewport.Height()
		bar := renderScrollbar(vpHeight, totalLines, vpHeight, m.viewport.ScrollPercent(), m.theme)
		if bar != "" {
			b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, vpContent, " ", bar))
		} else {
			b.WriteString(vpContent)
		}
		b.WriteString("\n")
	} else {
		b.WriteString(m.viewport.GetContent())
	}

	pct := int(m.viewport.ScrollPercent() * 100)
	var trail string
	if m.copied {
		trail = lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true).Render("Copied!")
	} else {
		trail = m.theme.HelpKey.Render(fmt.Sprintf("%d", pct)) + "%"
	}
	help := fmt.Sprintf(
		"\n%s scroll  %s/%s top/bottom  %s %s  %s back  %s",
		m.theme.HelpKey.Render("j/k"),
		m.theme.HelpKey.Render("g"),
		m.theme.HelpKey.Render("G"),
		m.theme.HelpKey.Render("y"),
		m.copyDesc,
		m.theme.HelpKey.Render(keyEsc),
		trail,
	)
	b.WriteString(help)

	return tea.NewView(b.String())
}
