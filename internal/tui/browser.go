package tui

import (
	"fmt"
	"io"
	"strings"

	"charm.land/bubbles/v2/list"
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.seanlatimer.dev/amhub/internal/catalog"
	"go.seanlatimer.dev/amhub/internal/query"
	"go.uber.org/zap"
)

const (
	defaultListHeight = 10
	suggestionCount   = 2
)

// focusResultMsg moves the cursor to a result, e.g. the last one the detail
// view showed.
type focusResultMsg struct {
	index int
}

type presetItem struct {
	preset catalog.Preset
}

func (i presetItem) Title() string       { return i.preset.Title }
func (i presetItem) Description() string { return i.preset.Author }
func (i presetItem) FilterValue() string { return i.preset.Title }

// browserView is the root view: search input, category bar and results.
type browserView struct {
	state         *browseState
	searchInput   textinput.Model
	list          list.Model
	category      int
	lastQuery     string
	results       []catalog.Preset
	statusMessage string
}

func newBrowserView(state *browseState) browserView {
	input := textinput.New()
	input.Prompt = ""
	input.Placeholder = "Search templates, authors, tags..."
	input.SetWidth(40)
	input.Blur() // Start unfocused so hotkeys work immediately

	l := list.New(nil, presetDelegate{width: minContentWidth}, minContentWidth, defaultListHeight)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	l.SetFilteringEnabled(false)
	l.SetShowPagination(false)

	b := browserView{
		state:       state,
		searchInput: input,
		list:        l,
	}
	b.applyFilter()
	return b
}

func (b browserView) Title() string { return "Browse" }
func (b browserView) Init() tea.Cmd { return nil }

func (b browserView) currentQuery() query.Query {
	category := query.All
	if b.category >= 0 && b.category < len(b.state.categories) {
		category = b.state.categories[b.category]
	}
	return query.Query{Text: b.searchInput.Value(), Category: category}
}

func (b browserView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		contentWidth := contentWidthFor(msg.Width)
		b.searchInput.SetWidth(contentWidth - 4) // Account for "/ " prefix
		b.list.SetDelegate(presetDelegate{width: contentWidth})
		b.list.SetSize(contentWidth, b.listHeight())
		return b, nil

	case focusResultMsg:
		if msg.index >= 0 && msg.index < len(b.results) {
			b.list.Select(msg.index)
		}
		return b, nil

	case tea.KeyMsg:
		keyStr := msg.String()

		switch keyStr {
		case "ctrl+c":
			return b, quitApp()
		case "esc":
			// Layered escape: unfocus -> clear filters -> exit
			if b.searchInput.Focused() {
				b.searchInput.Blur()
				return b, nil
			}
			if !b.currentQuery().IsZero() {
				b.clearFilters()
				return b, nil
			}
			return b, quitApp()
		case "/":
			if !b.searchInput.Focused() {
				return b, b.searchInput.Focus()
			}
		case "tab":
			b.cycleCategory(1)
			return b, nil
		case "shift+tab":
			b.cycleCategory(-1)
			return b, nil
		case "enter":
			return b, b.openSelected()
		case "up", "down":
			var cmd tea.Cmd
			b.list, cmd = b.list.Update(msg)
			return b, cmd
		}

		if !b.searchInput.Focused() {
			// Hotkeys when search not focused
			switch keyStr {
			case "x":
				b.clearFilters()
				return b, nil
			case "q":
				return b, quitApp()
			case "k", "j", "pgup", "pgdown", "home", "end":
				var cmd tea.Cmd
				b.list, cmd = b.list.Update(msg)
				return b, cmd
			}
			return b, nil
		}
	}

	if !b.searchInput.Focused() {
		return b, nil
	}

	var cmd tea.Cmd
	b.searchInput, cmd = b.searchInput.Update(msg)
	if q := b.searchInput.Value(); q != b.lastQuery {
		b.applyFilter()
	}
	return b, cmd
}

func (b *browserView) cycleCategory(step int) {
	n := len(b.state.categories)
	if n == 0 {
		return
	}
	b.category = ((b.category+step)%n + n) % n
	b.applyFilter()
}

// clearFilters resets the search text and category in one step.
func (b *browserView) clearFilters() {
	q := query.Reset()
	b.searchInput.SetValue(q.Text)
	b.category = b.categoryIndex(q.Category)
	b.applyFilter()
	b.statusMessage = ""
}

func (b browserView) categoryIndex(category string) int {
	for i, c := range b.state.categories {
		if c == category {
			return i
		}
	}
	return 0
}

func (b *browserView) applyFilter() {
	q := b.currentQuery()
	b.lastQuery = q.Text
	b.results = b.state.memo.Filter(q)

	items := make([]list.Item, 0, len(b.results))
	for _, p := range b.results {
		items = append(items, presetItem{preset: p})
	}
	b.list.SetItems(items)
	if b.list.Index() >= len(items) && len(items) > 0 {
		b.list.Select(len(items) - 1)
	}
	b.state.logger.Debug("query applied",
		zap.String("text", q.Text),
		zap.String("category", q.Category),
		zap.Int("results", len(b.results)))
}

func (b browserView) selectedIndex() (int, bool) {
	if len(b.results) == 0 {
		return 0, false
	}
	idx := b.list.Index()
	if idx < 0 || idx >= len(b.results) {
		return 0, false
	}
	return idx, true
}

func (b browserView) openSelected() tea.Cmd {
	idx, ok := b.selectedIndex()
	if !ok {
		return nil
	}
	b.state.selection.Select(b.results[idx])
	return pushView(newDetailView(b.state, b.results, idx))
}

func (b browserView) listHeight() int {
	height := b.state.height
	if height == 0 {
		height = 24
	}
	// Reserve: title, blank, search, categories, blank, blank, status, footer, border(2)
	listHeight := height - 10
	if listHeight < 5 {
		listHeight = 5
	}
	if listHeight > 20 {
		listHeight = 20
	}
	return listHeight
}

func (b browserView) View() tea.View {
	v := tea.NewView("")
	v.SetContent(b.Content())
	return v
}

func (b browserView) Content() string {
	width := b.state.width
	if width == 0 {
		width = 80
	}
	contentWidth := contentWidthFor(width)
	fixedWidth := lipgloss.NewStyle().Width(contentWidth)

	var lines []string
	title := fmt.Sprintf("AM Hub • %d of %d presets", len(b.results), b.state.memo.Len())
	lines = append(lines, fixedWidth.Render(getStyles().TitleStyle.Render(title)))
	lines = append(lines, "")

	var searchLine string
	if b.searchInput.Focused() {
		searchLine = getStyles().SelectedStyle.Render("/ ") + getStyles().SearchInputStyle.Render(b.searchInput.View())
	} else if b.searchInput.Value() != "" {
		searchLine = getStyles().SubtleStyle.Render("/ ") + getStyles().SearchInputStyle.Render(b.searchInput.Value())
	} else {
		searchLine = getStyles().SubtleStyle.Render("/ Press / to search")
	}
	lines = append(lines, fixedWidth.Render(searchLine))
	lines = append(lines, renderCategoryBar(b.state.categories, b.category, contentWidth))
	lines = append(lines, "")

	listHeight := b.listHeight()
	var body []string
	if len(b.results) == 0 {
		body = b.emptyState(contentWidth)
	} else {
		body = strings.Split(b.list.View(), "\n")
	}
	for len(body) < listHeight {
		body = append(body, "")
	}
	for _, line := range body[:listHeight] {
		lines = append(lines, fixedWidth.Render(line))
	}
	lines = append(lines, "")

	lines = append(lines, fixedWidth.Render(renderStatus(b.statusMessage, "", contentWidth)))
	lines = append(lines, fixedWidth.Render(getStyles().FooterStyle.Render(b.buildFooter())))

	return renderContainer(contentWidth, lines)
}

// emptyState is shown instead of the list when nothing matches.
func (b browserView) emptyState(width int) []string {
	lines := []string{
		"",
		getStyles().EmptyStateStyle.Render("No templates found"),
	}
	suggestions := query.Suggest(b.state.presets, b.searchInput.Value(), suggestionCount)
	if len(suggestions) > 0 {
		quoted := make([]string, 0, len(suggestions))
		for _, s := range suggestions {
			quoted = append(quoted, fmt.Sprintf("%q", s))
		}
		hint := "Try searching for " + strings.Join(quoted, " or ")
		lines = append(lines, getStyles().SubtleStyle.Render(truncateToWidth(hint, width)))
	}
	lines = append(lines, "", getStyles().SubtleStyle.Render("Press x to clear filters"))
	return lines
}

func (b browserView) buildFooter() string {
	if b.searchInput.Focused() {
		return "Type to filter • ↑↓ navigate • Tab category • Enter view • Esc done"
	}
	if !b.currentQuery().IsZero() {
		return "↑↓ navigate • Enter view • Tab category • / search • X clear • Esc clear"
	}
	return "↑↓ navigate • Enter view • Tab category • / search • Q quit"
}

// presetDelegate renders one result row.
type presetDelegate struct {
	width int
}

func (d presetDelegate) Height() int                               { return 1 }
func (d presetDelegate) Spacing() int                              { return 0 }
func (d presetDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d presetDelegate) Render(w io.Writer, m list.Model, index int, listItem list.Item) {
	item, ok := listItem.(presetItem)
	if !ok {
		return
	}
	_, _ = fmt.Fprint(w, renderPresetRow(item.preset, index == m.Index(), d.width))
}
