package tui

import (
	"image/color"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/lamchakchan/ai-tools/internal/catalog"
)

func newTestDirectory(t *testing.T) *DirectoryModel {
	t.Helper()
	theme := DefaultTheme()
	return NewDirectory(catalog.MustNew(catalog.Sample()), catalog.SortByPopularity, &theme, nil)
}

func press(m tea.Model, keys ...tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func runeKey(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runeKey(r))
	}
	return m
}

var (
	keyEnterMsg = tea.KeyPressMsg{Code: tea.KeyEnter}
	keyEscMsg   = tea.KeyPressMsg{Code: tea.KeyEscape}
	keyTabMsg   = tea.KeyPressMsg{Code: tea.KeyTab}
	keyDownMsg  = tea.KeyPressMsg{Code: tea.KeyDown}
)

func toolNames(tools []catalog.Tool) []string {
	out := make([]string, len(tools))
	for i, t := range tools {
		out[i] = t.Name
	}
	return out
}

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()
	if theme.Primary == nil {
		t.Error("Primary color is nil")
	}
	if theme.Error == nil {
		t.Error("Error color is nil")
	}
}

func sameColor(x, y color.Color) bool {
	r1, g1, b1, a1 := x.RGBA()
	r2, g2, b2, a2 := y.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestCategoryStyleFallback(t *testing.T) {
	theme := DefaultTheme()

	ml := theme.CategoryStyle("Machine Learning").GetForeground()
	robotics := theme.CategoryStyle("Robotics").GetForeground()
	unknown := theme.CategoryStyle("Quantum Computing").GetForeground()
	other := theme.CategoryStyle("").GetForeground()

	if ml == nil || unknown == nil {
		t.Fatal("category styles must set a foreground color")
	}
	if sameColor(ml, robotics) {
		t.Error("known categories should have distinct colors")
	}
	if sameColor(ml, unknown) {
		t.Error("unmapped category should not reuse a mapped color")
	}
	if !sameColor(unknown, other) {
		t.Error("every unmapped category should share the default style")
	}
}

func TestCategoryBadgeContainsName(t *testing.T) {
	theme := DefaultTheme()
	if got := theme.CategoryBadge("Robotics"); !strings.Contains(got, "Robotics") {
		t.Errorf("CategoryBadge = %q", got)
	}
	if got := theme.PopularityStr(7); !strings.Contains(got, "7%") {
		t.Errorf("PopularityStr(7) = %q", got)
	}
}

func TestIsQuitFalseOnZeroValue(t *testing.T) {
	var msg tea.KeyPressMsg
	if IsQuit(msg) {
		t.Error("IsQuit(zero) = true, want false")
	}
	if !IsQuit(runeKey('q')) {
		t.Error("IsQuit(q) = false, want true")
	}
}

func TestIsBack(t *testing.T) {
	var msg tea.KeyPressMsg
	if IsBack(msg) {
		t.Error("IsBack(zero) = true, want false")
	}
	if !IsBack(keyEscMsg) {
		t.Error("IsBack(esc) = false, want true")
	}
}

func TestNewDirectory(t *testing.T) {
	m := newTestDirectory(t)
	if len(m.Results()) != 8 {
		t.Fatalf("results = %d, want 8", len(m.Results()))
	}
	if m.Results()[0].Name != "TensorFlow" {
		t.Errorf("first result = %s, want TensorFlow", m.Results()[0].Name)
	}
	if len(m.featured) != 4 {
		t.Errorf("featured = %d, want 4", len(m.featured))
	}
	if len(m.categories) != 6 {
		t.Errorf("categories = %d, want 6", len(m.categories))
	}
	if m.focus != focusList {
		t.Error("directory should start focused on the list")
	}
}

func TestDirectorySearch(t *testing.T) {
	m := newTestDirectory(t)

	press(m, runeKey('/'))
	if m.focus != focusSearch {
		t.Fatal("/ should focus the search box")
	}

	typeText(m, "learning")
	if got := m.Query().Search; got != "learning" {
		t.Fatalf("Query().Search = %q, want learning", got)
	}
	want := []string{"TensorFlow", "Scikit-learn", "PyTorch"}
	if got := toolNames(m.Results()); strings.Join(got, ",") != strings.Join(want, ",") {
		t.Errorf("results = %v, want %v", got, want)
	}

	// q while typing is text, not quit.
	press(m, runeKey('q'))
	if m.focus != focusSearch {
		t.Error("q in the search box should keep typing")
	}
	if m.Query().Search != "learningq" {
		t.Errorf("Query().Search = %q, want learningq", m.Query().Search)
	}
	if len(m.Results()) != 0 {
		t.Errorf("results = %d, want 0", len(m.Results()))
	}

	press(m, keyEscMsg)
	if m.focus != focusList {
		t.Error("esc should leave the search box")
	}
	if m.Query().Search != "learningq" {
		t.Error("leaving the search box should keep the term")
	}

	press(m, keyEscMsg)
	if m.Query().Search != "" || m.search.Value() != "" {
		t.Error("esc on the list should clear the search")
	}
	if len(m.Results()) != 8 {
		t.Errorf("results after clear = %d, want 8", len(m.Results()))
	}
}

func TestDirectorySortToggle(t *testing.T) {
	m := newTestDirectory(t)

	press(m, runeKey('s'))
	if m.Query().Sort != catalog.SortByName {
		t.Fatalf("sort = %q, want name", m.Query().Sort)
	}
	if first := m.Results()[0].Name; first != "DeepSpeech" {
		t.Errorf("first by name = %s, want DeepSpeech", first)
	}

	press(m, runeKey('s'))
	if m.Query().Sort != catalog.SortByPopularity {
		t.Errorf("sort = %q, want popularity", m.Query().Sort)
	}
}

func TestDirectoryCategorySelect(t *testing.T) {
	m := newTestDirectory(t)

	press(m, keyTabMsg)
	if m.focus != focusSidebar {
		t.Fatal("tab should focus the sidebar")
	}

	// Sidebar rows: All, Machine Learning, NLP, Computer Vision, Robotics, ...
	press(m, keyDownMsg, keyDownMsg, keyDownMsg, keyDownMsg, keyEnterMsg)
	if m.Query().Category != "Robotics" {
		t.Fatalf("category = %q, want Robotics", m.Query().Category)
	}
	if got := toolNames(m.Results()); len(got) != 1 || got[0] != "ROS" {
		t.Errorf("results = %v, want [ROS]", got)
	}
	if m.focus != focusList {
		t.Error("selecting a category should return focus to the list")
	}

	// Back to All.
	press(m, keyTabMsg, runeKey('g'), keyEnterMsg)
	if m.Query().Category != "" {
		t.Errorf("category = %q, want empty after selecting All", m.Query().Category)
	}
	if len(m.Results()) != 8 {
		t.Errorf("results = %d, want 8", len(m.Results()))
	}
}

func TestDirectorySidebarCursorClamp(t *testing.T) {
	m := newTestDirectory(t)
	press(m, keyTabMsg)
	for range 20 {
		press(m, keyDownMsg)
	}
	if m.catCursor != len(m.categories) {
		t.Errorf("catCursor = %d, want %d", m.catCursor, len(m.categories))
	}
}

func TestDirectoryEnterPushesQuickView(t *testing.T) {
	m := newTestDirectory(t)
	press(m, keyDownMsg)

	_, cmd := press(m, keyEnterMsg)
	if cmd == nil {
		t.Fatal("enter should return a command")
	}
	push, ok := cmd().(PushViewMsg)
	if !ok {
		t.Fatalf("expected PushViewMsg, got %T", cmd())
	}
	qv, ok := push.Model.(*QuickViewModel)
	if !ok {
		t.Fatalf("expected *QuickViewModel, got %T", push.Model)
	}
	if qv.tool.Name != "Scikit-learn" {
		t.Errorf("quick view tool = %s, want Scikit-learn", qv.tool.Name)
	}
}

func TestDirectoryEnterOnEmptyList(t *testing.T) {
	m := newTestDirectory(t)
	press(m, runeKey('/'))
	typeText(m, "zzz")
	press(m, keyEnterMsg)

	if _, cmd := press(m, keyEnterMsg); cmd != nil {
		t.Error("enter on an empty list should do nothing")
	}
	if !strings.Contains(m.viewMain(), "No tools match.") {
		t.Error("empty list should say that nothing matches")
	}
}

func TestDirectoryPushesChartAndHelp(t *testing.T) {
	m := newTestDirectory(t)

	_, cmd := press(m, runeKey('p'))
	if push, ok := cmd().(PushViewMsg); !ok || push.Name != "chart" {
		t.Errorf("p should push the chart, got %#v", cmd())
	}

	_, cmd = press(m, runeKey('?'))
	if push, ok := cmd().(PushViewMsg); !ok || push.Name != "help" {
		t.Errorf("? should push help, got %#v", cmd())
	}
}

func TestDirectoryCopyLink(t *testing.T) {
	m := newTestDirectory(t)
	_, cmd := press(m, runeKey('y'))
	if !m.copied {
		t.Error("copied should be true after pressing y")
	}
	if cmd == nil {
		t.Error("expected clipboard command after pressing y")
	}
	m.Update(copiedMsg{})
	if m.copied {
		t.Error("copied should be false after copiedMsg")
	}
}

func TestDirectoryQuit(t *testing.T) {
	m := newTestDirectory(t)
	_, cmd := press(m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q should quit, got %T", cmd())
	}
}

func TestDirectoryScrollClamp(t *testing.T) {
	m := newTestDirectory(t)
	m.width = 120
	m.Update(tea.WindowSizeMsg{Width: 120, Height: m.overhead() + 3})
	if got := m.visibleRows(); got != 3 {
		t.Fatalf("visibleRows() = %d, want 3", got)
	}

	press(m, tea.KeyPressMsg{Code: 'G', Text: "G", ShiftedCode: 'G'})
	if m.cursor != 7 {
		t.Errorf("after G: cursor = %d, want 7", m.cursor)
	}
	if m.scroll != 5 {
		t.Errorf("after G: scroll = %d, want 5", m.scroll)
	}

	press(m, runeKey('g'))
	if m.cursor != 0 || m.scroll != 0 {
		t.Errorf("after g: cursor=%d scroll=%d, want 0/0", m.cursor, m.scroll)
	}

	m.height = 5
	if got := m.visibleRows(); got != 1 {
		t.Errorf("visibleRows() with small height = %d, want 1", got)
	}
}

func TestDirectoryRender(t *testing.T) {
	m := newTestDirectory(t)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})

	featured := m.viewFeatured()
	for _, name := range []string{"TensorFlow", "PyTorch", "OpenCV", "Scikit-learn"} {
		if !strings.Contains(featured, name) {
			t.Errorf("featured strip missing %s", name)
		}
	}
	if strings.Contains(featured, "Pandas") {
		t.Error("featured strip should not list Pandas")
	}

	sidebar := m.viewSidebar()
	for _, want := range []string{"Categories", "All", "Machine Learning", "Speech Recognition"} {
		if !strings.Contains(sidebar, want) {
			t.Errorf("sidebar missing %q", want)
		}
	}

	main := m.viewMain()
	if !strings.Contains(main, "Sort:") || !strings.Contains(main, "popularity") {
		t.Errorf("main pane should show the sort key:\n%s", main)
	}
	if !strings.Contains(main, "Open-source machine learning framework") {
		t.Error("main pane should describe the selected tool")
	}
}

func TestQuickViewContent(t *testing.T) {
	theme := DefaultTheme()
	tool, _ := catalog.MustNew(catalog.Sample()).Lookup(4)
	out := formatQuickView(tool, &theme)
	for _, want := range []string{"OpenCV", "Computer Vision", "85%", "popularity", "https://www.shivacruz.com"} {
		if !strings.Contains(out, want) {
			t.Errorf("quick view missing %q", want)
		}
	}

	qv := NewQuickView(tool, &theme)
	if qv.viewer.copyText != tool.Link {
		t.Errorf("quick view copies %q, want the link", qv.viewer.copyText)
	}
}

func TestViewerCopyKey(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("Copy Test", "clipboard content", &theme)
	v.SetSize(80, 24)

	model, cmd := v.Update(runeKey('y'))
	viewer := model.(*ViewerModel)
	if !viewer.copied {
		t.Error("copied should be true after pressing y")
	}
	if cmd == nil {
		t.Error("expected a command (clipboard + tick) after pressing y")
	}

	model, _ = viewer.Update(copiedMsg{})
	if model.(*ViewerModel).copied {
		t.Error("copied should be false after copiedMsg")
	}
}

func TestViewerBackPops(t *testing.T) {
	theme := DefaultTheme()
	v := NewViewer("T", "body", &theme)
	_, cmd := v.Update(keyEscMsg)
	if cmd == nil {
		t.Fatal("esc should return a command")
	}
	if _, ok := cmd().(PopViewMsg); !ok {
		t.Errorf("esc should pop the viewer, got %T", cmd())
	}
}

func TestRenderScrollbar(t *testing.T) {
	theme := DefaultTheme()

	if bar := renderScrollbar(10, 5, 10, 0, &theme); bar != "" {
		t.Errorf("expected empty scrollbar when content fits, got %q", bar)
	}

	for _, pct := range []float64{0, 0.5, 1.0} {
		bar := renderScrollbar(10, 100, 10, pct, &theme)
		if bar == "" {
			t.Fatalf("expected non-empty scrollbar at %v", pct)
		}
		if lines := strings.Split(bar, "\n"); len(lines) != 10 {
			t.Errorf("scrollbar lines at %v = %d, want 10", pct, len(lines))
		}
	}
}

func TestAppNavigationStack(t *testing.T) {
	app := newApp(catalog.MustNew(catalog.Sample()), Options{})
	if len(app.stack) != 1 {
		t.Fatalf("stack = %d, want 1", len(app.stack))
	}
	dir, ok := app.stack[0].(*DirectoryModel)
	if !ok {
		t.Fatalf("root view is %T, want *DirectoryModel", app.stack[0])
	}
	if dir.Query().Sort != catalog.SortByPopularity {
		t.Errorf("default sort = %q, want popularity", dir.Query().Sort)
	}

	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	theme := DefaultTheme()
	app.Update(PushViewMsg{Model: NewHelp(&theme), Name: "help"})
	if len(app.stack) != 2 {
		t.Fatalf("stack after push = %d, want 2", len(app.stack))
	}

	app.Update(PopViewMsg{})
	if len(app.stack) != 1 {
		t.Fatalf("stack after pop = %d, want 1", len(app.stack))
	}

	_, cmd := app.Update(PopViewMsg{})
	if cmd == nil {
		t.Fatal("popping the root view should quit")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}

func TestAppForwardsSizeToDirectory(t *testing.T) {
	app := newApp(catalog.MustNew(catalog.Sample()), Options{Sort: catalog.SortByName})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	dir := app.stack[0].(*DirectoryModel)
	if dir.height != 30 {
		t.Errorf("directory height = %d, want 30", dir.height)
	}
	if dir.Query().Sort != catalog.SortByName {
		t.Errorf("sort = %q, want name", dir.Query().Sort)
	}
}

func TestDirectoryFitsTerminalWidth(t *testing.T) {
	for _, width := range []int{80, 100} {
		m := newTestDirectory(t)
		m.Update(tea.WindowSizeMsg{Width: width, Height: 24})
		press(m, keyDownMsg)

		content := m.View().Content
		for i, line := range strings.Split(content, "\n") {
			if w := lipgloss.Width(line); w > width {
				t.Errorf("width %d: line %d is %d cells wide: %q", width, i, w, line)
			}
		}
		if got := strings.Count(content, "\n") + 1; got > 24 {
			t.Errorf("width %d: view has %d lines, want at most 24", width, got)
		}
		if !strings.Contains(content, directoryTitle) {
			t.Errorf("width %d: header title missing", width)
		}
	}
}

func TestHeaderBannerWrapsTagline(t *testing.T) {
	theme := DefaultTheme()
	natural := theme.HeaderBanner(directoryTitle, directoryTagline, 0)
	if lipgloss.Width(natural) <= 80 {
		t.Fatalf("natural banner width = %d, expected wider than 80", lipgloss.Width(natural))
	}

	fitted := theme.HeaderBanner(directoryTitle, directoryTagline, 80)
	if w := lipgloss.Width(fitted); w != 80 {
		t.Errorf("fitted banner width = %d, want 80", w)
	}
	if lipgloss.Height(fitted) <= lipgloss.Height(natural) {
		t.Error("fitted banner should wrap the tagline onto more lines")
	}
}

func TestTruncateLines(t *testing.T) {
	if got := truncateLines("short\nlines", 80); got != "short\nlines" {
		t.Errorf("truncateLines changed short input: %q", got)
	}
	if got := truncateLines("abcdefgh", 0); got != "abcdefgh" {
		t.Errorf("truncateLines(width 0) = %q", got)
	}
	got := truncateLines("abcdefgh\nxy", 5)
	if lines := strings.Split(got, "\n"); lipgloss.Width(lines[0]) != 5 || lines[1] != "xy" {
		t.Errorf("truncateLines(5) = %q", got)
	}
}

func TestDirectorySortKeepsSelection(t *testing.T) {
	m := newTestDirectory(t)
	press(m, keyDownMsg, keyDownMsg) // popularity order: TensorFlow, Scikit-learn, PyTorch
	before, _ := m.selected()
	if before.Name != "PyTorch" {
		t.Fatalf("selected = %s, want PyTorch", before.Name)
	}

	press(m, runeKey('s'))
	if m.Query().Sort != catalog.SortByName {
		t.Fatalf("sort = %q, want name", m.Query().Sort)
	}
	after, _ := m.selected()
	if after.ID != before.ID {
		t.Errorf("selection moved from %s to %s after re-sorting", before.Name, after.Name)
	}
}

func TestAppResizesDirectoryUnderOtherViews(t *testing.T) {
	app := newApp(catalog.MustNew(catalog.Sample()), Options{})
	app.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	theme := DefaultTheme()
	app.Update(PushViewMsg{Model: NewHelp(&theme), Name: "help"})

	app.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	app.Update(PopViewMsg{})

	dir := app.stack[0].(*DirectoryModel)
	if dir.width != 80 || dir.height != 20 {
		t.Errorf("directory size = %dx%d, want 80x20", dir.width, dir.height)
	}
}
