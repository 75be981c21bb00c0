package tui

import (
	"fmt"
	"strings"
	"time"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/lamchakchan/ai-tools/internal/catalog"
)

// focusArea is the part of the directory view receiving key presses.
type focusArea int

const (
	focusList focusArea = iota
	focusSidebar
	focusSearch
)

const (
	directoryTitle   = "AI Tools Directory"
	directoryTagline = "Discover and explore the most powerful AI tools to supercharge your projects and workflows"
)

// DirectoryModel is the main catalog screen: featured strip, category
// sidebar, search box, sort toggle and the filtered tool list. The query
// lives here; every change re-runs the catalog queries.
type DirectoryModel struct {
	catalog *catalog.Catalog
	theme   *Theme
	log     *zap.Logger

	query  catalog.Query
	search textinput.Model
	focus  focusArea

	featured   []catalog.Tool
	categories []catalog.CategoryCount
	results    []catalog.Tool

	catCursor int // 0 is "All", i+1 is categories[i]
	cursor    int
	scroll    int // index of first visible result
	copied    bool
	width     int
	height    int
}

// NewDirectory creates the directory view over c, initially sorted by sort.
func NewDirectory(c *catalog.Catalog, sort catalog.SortKey, theme *Theme, log *zap.Logger) *DirectoryModel {
	if log == nil {
		log = zap.NewNop()
	}
	ti := textinput.New()
	ti.Placeholder = "Search AI tools or categories..."
	ti.Prompt = "🔍 "
	ti.CharLimit = 64

	m := &DirectoryModel{
		catalog:    c,
		theme:      theme,
		log:        log,
		query:      catalog.Query{Sort: sort},
		search:     ti,
		featured:   c.Featured(),
		categories: c.CategoryCounts(),
	}
	m.refresh()
	return m
}

// Query returns the current query state.
func (m *DirectoryModel) Query() catalog.Query { return m.query }

// Results returns the tools currently listed.
func (m *DirectoryModel) Results() []catalog.Tool { return m.results }

// refresh recomputes the listing from the query and keeps the cursor in range.
func (m *DirectoryModel) refresh() {
	m.results = m.catalog.FilteredSorted(m.query)
	if m.cursor > len(m.results)-1 {
		m.cursor = max(0, len(m.results)-1)
	}
	m.clampScroll()
	m.log.Debug("query changed",
		zap.String("search", m.query.Search),
		zap.String("category", m.query.Category),
		zap.String("sort", string(m.query.Sort)),
		zap.Int("results", len(m.results)),
	)
}

// bodyOverhead is the number of screen lines below the header banner that
// are not result rows: featured strip 3, search/sort/heading 4, description 2,
// footer 2.
const bodyOverhead = 11

// sidebarGap separates the category sidebar from the main column.
const sidebarGap = "  "

func (m *DirectoryModel) header() string {
	return m.theme.HeaderBanner(directoryTitle, directoryTagline, m.width)
}

// overhead returns the number of screen lines outside the result rows. The
// header grows when a narrow terminal wraps the tagline.
func (m *DirectoryModel) overhead() int {
	return lipgloss.Height(m.header()) + bodyOverhead
}

// visibleRows returns how many result rows fit in the current terminal height.
func (m *DirectoryModel) visibleRows() int {
	return max(1, m.height-m.overhead())
}

// mainWidth returns the width available to the main column, or 0 when the
// terminal size is unknown.
func (m *DirectoryModel) mainWidth() int {
	if m.width <= 0 {
		return 0
	}
	return max(20, m.width-lipgloss.Width(m.viewSidebar())-len(sidebarGap))
}

// clampScroll ensures the scroll offset keeps the cursor visible.
func (m *DirectoryModel) clampScroll() {
	visible := m.visibleRows()
	if m.cursor < m.scroll {
		m.scroll = m.cursor
	}
	if m.cursor >= m.scroll+visible {
		m.scroll = m.cursor - visible + 1
	}
	maxScroll := max(0, len(m.results)-visible)
	if m.scroll > maxScroll {
		m.scroll = maxScroll
	}
}

func (m *DirectoryModel) selected() (catalog.Tool, bool) {
	if len(m.results) == 0 {
		return catalog.Tool{}, false
	}
	return m.results[m.cursor], true
}

func (m *DirectoryModel) Init() tea.Cmd { return nil }

func (m *DirectoryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if w := m.mainWidth(); w > 0 {
			m.search.SetWidth(max(1, w-lipgloss.Width(m.search.Prompt)-1))
		}
		m.clampScroll()
		return m, nil

	case copiedMsg:
		m.copied = false
		return m, nil

	case tea.KeyPressMsg:
		if m.focus == focusSearch {
			return m.updateSearch(msg)
		}
		return m.updateKeys(msg)
	}

	if m.focus == focusSearch {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// updateSearch handles keys while the search box has focus.
func (m *DirectoryModel) updateSearch(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case keyCtrlC:
		return m, tea.Quit
	case keyEsc, keyEnter, keyTab:
		m.search.Blur()
		m.focus = focusList
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if v := m.search.Value(); v != m.query.Search {
		m.query.Search = v
		m.cursor, m.scroll = 0, 0
		m.refresh()
	}
	return m, cmd
}

// updateKeys handles keys while the list or sidebar has focus.
func (m *DirectoryModel) updateKeys(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	if IsQuit(msg) {
		return m, tea.Quit
	}

	switch msg.String() {
	case keyEsc:
		if m.query.Search == "" && m.query.Category == "" {
			return m, tea.Quit
		}
		m.clearFilters()
	case "/":
		m.focus = focusSearch
		return m, m.search.Focus()
	case keyTab:
		if m.focus == focusList {
			m.focus = focusSidebar
		} else {
			m.focus = focusList
		}
	case "s":
		m.toggleSort()
	case "up", "k":
		m.move(-1)
	case "down", "j":
		m.move(1)
	case "pgup", "b":
		m.move(-m.visibleRows())
	case "pgdown", "f":
		m.move(m.visibleRows())
	case "g":
		m.move(-len(m.results) - len(m.categories) - 1)
	case "G":
		m.move(len(m.results) + len(m.categories) + 1)
	case keyEnter:
		if m.focus == focusSidebar {
			m.selectCategory()
			return m, nil
		}
		if t, ok := m.selected(); ok {
			return m, pushView("quickview", NewQuickView(t, m.theme))
		}
	case "p":
		return m, pushView("chart", NewPopularityChart(m.chartTitle(), m.results, m.theme))
	case "y":
		if t, ok := m.selected(); ok {
			m.copied = true
			return m, tea.Batch(tea.SetClipboard(t.Link), clearCopiedAfter(2*time.Second))
		}
	case "?":
		return m, pushView("help", NewHelp(m.theme))
	}
	return m, nil
}

// move shifts the cursor of the focused pane by delta, clamped to its bounds.
func (m *DirectoryModel) move(delta int) {
	if m.focus == focusSidebar {
		m.catCursor = min(max(m.catCursor+delta, 0), len(m.categories))
		return
	}
	if len(m.results) == 0 {
		return
	}
	m.cursor = min(max(m.cursor+delta, 0), len(m.results)-1)
	m.clampScroll()
}

// toggleSort switches the sort order and keeps the cursor on the tool it
// was on.
func (m *DirectoryModel) toggleSort() {
	t, ok := m.selected()
	m.query.Sort = m.query.Sort.Next()
	m.refresh()
	if !ok {
		return
	}
	for i, r := range m.results {
		if r.ID == t.ID {
			m.cursor = i
			break
		}
	}
	m.clampScroll()
}

// selectCategory applies the sidebar row under the cursor as the filter.
func (m *DirectoryModel) selectCategory() {
	if m.catCursor == 0 {
		m.query.Category = ""
	} else {
		m.query.Category = m.categories[m.catCursor-1].Category
	}
	m.cursor, m.scroll = 0, 0
	m.focus = focusList
	m.refresh()
}

func (m *DirectoryModel) clearFilters() {
	m.search.SetValue("")
	m.query.Search = ""
	m.query.Category = ""
	m.catCursor = 0
	m.cursor, m.scroll = 0, 0
	m.refresh()
}

func (m *DirectoryModel) chartTitle() string {
	if m.query.Category != "" {
		return "Popularity: " + m.query.Category
	}
	return "Popularity"
}

func (m *DirectoryModel) View() tea.View {
	var b strings.Builder

	b.WriteString(m.header())
	b.WriteString("\n")
	b.WriteString(m.viewFeatured())
	b.WriteString("\n")

	body := lipgloss.JoinHorizontal(lipgloss.Top, m.viewSidebar(), sidebarGap, m.viewMain())
	b.WriteString(body)
	b.WriteString("\n\n")

	b.WriteString(m.viewFooter())
	return tea.NewView(truncateLines(b.String(), m.width))
}

// viewFeatured renders the featured tools as a single strip.
func (m *DirectoryModel) viewFeatured() string {
	var b strings.Builder
	b.WriteString(m.theme.SectionHead.Render("Featured Tools"))
	b.WriteString("\n")
	if len(m.featured) == 0 {
		b.WriteString(m.theme.HelpDesc.Render("  none"))
	}
	for i, t := range m.featured {
		if i > 0 {
			b.WriteString("   ")
		}
		b.WriteString(" " + lipgloss.NewStyle().Bold(true).Render(t.Name) + " " + m.theme.StarStr())
	}
	b.WriteString("\n")
	return b.String()
}

// viewSidebar renders the category list with counts.
func (m *DirectoryModel) viewSidebar() string {
	nameW := len("All")
	for _, cc := range m.categories {
		nameW = max(nameW, len(cc.Category))
	}

	var b strings.Builder
	head := m.theme.SectionHead
	if m.focus != focusSidebar {
		head = head.Foreground(m.theme.Muted)
	}
	b.WriteString(head.Render("Categories"))
	b.WriteString("\n")

	row := func(idx int, name string, count int, active bool) {
		marker := "  "
		if m.focus == focusSidebar && idx == m.catCursor {
			marker = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("> ")
		}
		label := fmt.Sprintf("%-*s %3d", nameW, name, count)
		if active {
			label = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(label)
		}
		b.WriteString(marker + label + "\n")
	}

	row(0, "All", m.catalog.Len(), m.query.Category == "")
	for i, cc := range m.categories {
		row(i+1, cc.Category, cc.Count, m.query.Category == cc.Category)
	}
	return b.String()
}

// viewMain renders the search box, sort indicator and tool rows.
func (m *DirectoryModel) viewMain() string {
	var b strings.Builder

	b.WriteString(m.search.View())
	b.WriteString("\n")
	sort := string(m.query.Sort)
	if !m.query.Sort.Known() {
		sort = "listed order"
	}
	b.WriteString(m.theme.HelpDesc.Render("Sort: ") + lipgloss.NewStyle().Foreground(m.theme.Accent).Bold(true).Render(sort))
	b.WriteString("\n\n")

	b.WriteString(m.theme.SectionHead.Render("Explore AI Tools"))
	b.WriteString("\n")

	if len(m.results) == 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(m.theme.Error).Render("  No tools match."))
		return b.String()
	}

	nameW := 0
	for _, t := range m.results {
		nameW = max(nameW, len(t.Name))
	}

	visible := m.visibleRows()
	end := min(m.scroll+visible, len(m.results))
	total := len(m.results)

	width := m.mainWidth()
	rowWidth := width
	if width > 0 && total > visible {
		rowWidth -= 2 // scrollbar and its gap
	}

	var rows strings.Builder
	for i := m.scroll; i < end; i++ {
		t := m.results[i]
		// Pad name to fixed width before styling
		name := fmt.Sprintf("%-*s", nameW, t.Name)
		star := "  "
		if t.Featured {
			star = m.theme.StarStr() + " "
		}

		cursor := "  "
		if i == m.cursor && m.focus == focusList {
			cursor = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render("> ")
			name = lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Render(name)
		}
		row := fmt.Sprintf("%s%s %s%s  %s", cursor, name, star, m.theme.PopularityStr(t.Popularity), m.theme.CategoryBadge(t.Category))
		rows.WriteString(truncateLines(row, rowWidth))
		if i < end-1 {
			rows.WriteString("\n")
		}
	}

	var scrollPct float64
	if total > visible {
		scrollPct = float64(m.scroll) / float64(total-visible)
	}
	if bar := renderScrollbar(end-m.scroll, total, visible, scrollPct, m.theme); bar != "" {
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rows.String(), " ", bar))
	} else {
		b.WriteString(rows.String())
	}

	if t, ok := m.selected(); ok && m.focus == focusList {
		b.WriteString("\n\n  " + m.theme.HelpDesc.Render(t.Description))
	}
	return truncateLines(b.String(), width)
}

func (m *DirectoryModel) viewFooter() string {
	if m.focus == focusSearch {
		return fmt.Sprintf("%s done  %s quit",
			m.theme.HelpKey.Render("enter/esc"),
			m.theme.HelpKey.Render(keyCtrlC),
		)
	}
	trail := fmt.Sprintf("%d/%d", min(m.cursor+1, len(m.results)), len(m.results))
	if m.copied {
		trail = lipgloss.NewStyle().Foreground(m.theme.Success).Bold(true).Render("Link copied!")
	}
	return fmt.Sprintf(
		"%s navigate  %s search  %s sort  %s pane  %s view  %s chart  %s help  %s quit  %s",
		m.theme.HelpKey.Render("j/k"),
		m.theme.HelpKey.Render("/"),
		m.theme.HelpKey.Render("s"),
		m.theme.HelpKey.Render(keyTab),
		m.theme.HelpKey.Render(keyEnter),
		m.theme.HelpKey.Render("p"),
		m.theme.HelpKey.Render("?"),
		m.theme.HelpKey.Render("q"),
		trail,
	)
}
