package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/langtind/prefsheet/internal/prefs"
)

const (
	defaultWidth  = 80
	maxValueWidth = 24
)

// clip cuts a styled line to w cells so lipgloss never wraps it.
func clip(s string, w int) string {
	return ansi.Truncate(s, max(w, 1), "")
}

// rebuild flattens sections into entries, applying the search filter, and
// keeps the cursor on the same item when it is still visible.
func (m *Model) rebuild() {
	var current string
	if it, ok := m.Selected(); ok {
		current = it.Name
	}

	var match map[string]bool
	if m.query != "" {
		match = make(map[string]bool)
		for _, name := range prefs.Search(m.sections, m.query) {
			match[name] = true
		}
	}

	m.entries = nil
	m.itemIdx = nil
	for si, s := range m.sections {
		headerAdded := false
		for _, it := range s.Items {
			if match != nil && !match[it.Name] {
				continue
			}
			if !headerAdded {
				m.entries = append(m.entries, entry{header: s.Title, section: si})
				headerAdded = true
			}
			m.itemIdx = append(m.itemIdx, len(m.entries))
			m.entries = append(m.entries, entry{item: it, section: si, isItem: true})
		}
	}

	m.cursor = 0
	if current != "" {
		for i, idx := range m.itemIdx {
			if m.entries[idx].item.Name == current {
				m.cursor = i
				break
			}
		}
	}
	m.offset = 0
	m.ensureVisible()
}

func (m *Model) setQuery(q string) {
	m.query = q
	m.rebuild()
}

func (m *Model) moveCursor(delta int) {
	if len(m.itemIdx) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(m.itemIdx) {
		m.cursor = len(m.itemIdx) - 1
	}
	m.ensureVisible()
}

// bodyHeight is the number of lines available to the list, or 0 when the
// terminal size is still unknown.
func (m Model) bodyHeight() int {
	if m.height <= 0 {
		return 0
	}
	h := m.height - HeaderHeight - FooterHeight
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) pageSize() int {
	if h := m.bodyHeight(); h > 2 {
		return h / 2
	}
	return 5
}

// layout returns the first line of every entry and the total line count.
func (m Model) layout() ([]int, int) {
	starts := make([]int, len(m.entries))
	line := 0
	for i, e := range m.entries {
		starts[i] = line
		line += e.lines(i == 0)
	}
	return starts, line
}

// ensureVisible scrolls so the cursor row, and its section header when it is
// the first row of a section, fit in the body.
func (m *Model) ensureVisible() {
	h := m.bodyHeight()
	if h == 0 || len(m.itemIdx) == 0 {
		m.offset = 0
		return
	}

	starts, total := m.layout()
	idx := m.itemIdx[m.cursor]
	top := starts[idx]
	bottom := top + m.entries[idx].lines(idx == 0)
	if idx > 0 && !m.entries[idx-1].isItem {
		top = starts[idx-1]
	}

	if top < m.offset {
		m.offset = top
	}
	if bottom > m.offset+h {
		m.offset = bottom - h
	}
	if maxOffset := total - h; m.offset > maxOffset {
		m.offset = max(maxOffset, 0)
	}
}

func (m Model) renderWidth() int {
	if m.width > 0 {
		return m.width
	}
	return defaultWidth
}

// listView renders header, visible rows and footer.
func (m Model) listView() string {
	width := m.renderWidth()

	var body []string
	if len(m.entries) == 0 {
		msg := "No preferences"
		if m.query != "" {
			msg = fmt.Sprintf("No preferences match %q", m.query)
		}
		body = append(body, EmptyStyle.Render(msg))
	}
	for i, e := range m.entries {
		body = append(body, m.renderEntry(e, i, width)...)
	}

	if h := m.bodyHeight(); h > 0 {
		end := min(m.offset+h, len(body))
		start := min(m.offset, end)
		body = body[start:end]
		for len(body) < h {
			body = append(body, "")
		}
	}

	view := lipgloss.JoinVertical(lipgloss.Left,
		m.renderHeader(width),
		strings.Join(body, "\n"),
		m.renderFooter(width),
	)

	style := ContainerStyle
	if m.opts.ContainerStyle != nil {
		style = *m.opts.ContainerStyle
	}
	return style.Render(view)
}

func (m Model) renderHeader(width int) string {
	title := m.opts.Title
	if title == "" {
		title = "Settings"
	}
	left := TitleStyle.Render(title)
	right := ""
	if n := len(m.itemIdx); n > 0 {
		right = HeaderInfoStyle.Render(fmt.Sprintf("%d/%d", m.cursor+1, n))
	}
	gap := width - 4 - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := HeaderBarStyle.Width(width).Render(clip(left+strings.Repeat(" ", gap)+right, width-4))
	return bar + "\n"
}

func (m Model) renderFooter(width int) string {
	if m.searching {
		return FooterBarStyle.Width(width).Render(clip(SearchPromptStyle.Render(m.search.View()), width-2))
	}

	items := []string{
		HelpItem("↑↓", "move"),
		HelpItem("enter", "change"),
		HelpItem("/", "search"),
	}
	if m.query != "" {
		items = append(items, HelpItem("esc", fmt.Sprintf("clear %q", m.query)))
	}
	if m.opts.Refreshable {
		items = append(items, HelpItem("r", "refresh"))
	}
	items = append(items, HelpItem("?", "help"))
	if m.opts.Standalone {
		items = append(items, HelpItem("q", "quit"))
	}
	return FooterBarStyle.Width(width).Render(clip(HelpBar(items...), width-2))
}

// renderEntry returns the lines of one entry; the count always equals
// entry.lines so scrolling math stays exact.
func (m Model) renderEntry(e entry, i, width int) []string {
	if !e.isItem {
		inner := max(width-4, 1)
		title := runewidth.Truncate(e.header, inner, "…")
		lines := strings.Split(SectionHeaderStyle.Width(width).Render(title), "\n")
		if i > 0 {
			lines = append([]string{""}, lines...)
		}
		return lines
	}

	selected := len(m.itemIdx) > 0 && m.itemIdx[m.cursor] == i

	it := e.item
	inner := max(width-4, 1)

	marker := "  "
	if selected {
		marker = "› "
	}

	value := m.valueField(it, max(min(maxValueWidth, inner/3), 1))
	valueWidth := lipgloss.Width(value)
	markerWidth := runewidth.StringWidth(marker)
	textWidth := inner - markerWidth - valueWidth - 1
	if valueWidth == 0 {
		textWidth = inner - markerWidth
	}
	if textWidth < 1 {
		textWidth = 1
	}

	textStyle := RowTextStyle
	if it.Disabled {
		textStyle = RowTextDisabledStyle
	}
	text := textStyle.Render(runewidth.Truncate(it.Text, textWidth, "…"))
	gap := inner - markerWidth - lipgloss.Width(text) - valueWidth
	if gap < 1 {
		gap = 1
	}
	first := marker + text + strings.Repeat(" ", gap) + value

	rowStyle := RowStyle
	if selected {
		rowStyle = RowSelectedStyle
	}

	lines := []string{rowStyle.Width(width).Render(clip(first, inner))}
	if it.Subtext != "" {
		sub := RowSubtextStyle.Render(runewidth.Truncate(it.Subtext, max(inner-2, 1), "…"))
		lines = append(lines, rowStyle.Width(width).Render(clip("  "+sub, inner)))
	}
	return lines
}

// valueField renders the right-hand control of a row, at most maxWidth
// cells for text values.
func (m Model) valueField(it prefs.Item, maxWidth int) string {
	switch it.Type {
	case prefs.Checkbox:
		on := m.state.Bool(it.Name)
		return renderToggle(on, m.opts.ToggleStyle, it.Disabled)
	case prefs.Picker:
		v := m.state.String(it.Name)
		if v == "" {
			return ""
		}
		return ValueTextStyle.Render(runewidth.Truncate(it.LabelFor(v), maxWidth, "…"))
	default:
		return ValueTextStyle.Render(runewidth.Truncate(m.state.String(it.Name), maxWidth, "…"))
	}
}

func renderToggle(on bool, style ToggleStyle, disabled bool) string {
	var glyph string
	switch style {
	case ToggleSwitch:
		glyph = "━○"
		if on {
			glyph = "●━"
		}
	default:
		glyph = "[ ]"
		if on {
			glyph = "[x]"
		}
	}
	if on && !disabled {
		return ToggleOnStyle.Render(glyph)
	}
	return ToggleOffStyle.Render(glyph)
}

// overlay centers modal over base, line by line.
func (m Model) overlay(base, modal string) string {
	width := m.renderWidth()
	modalLines := strings.Split(modal, "\n")
	baseLines := strings.Split(base, "\n")

	startX := (width - lipgloss.Width(modalLines[0])) / 2
	startY := (len(baseLines) - len(modalLines)) / 2
	if m.height > 0 {
		startY = (m.height - len(modalLines)) / 2
	}
	if startX < 0 {
		startX = 0
	}
	if startY < 0 {
		startY = 0
	}

	result := make([]string, len(baseLines))
	copy(result, baseLines)
	for len(result) < startY+len(modalLines) {
		result = append(result, "")
	}

	leftPad := strings.Repeat(" ", startX)
	for i, line := range modalLines {
		result[startY+i] = leftPad + line
	}
	return strings.Join(result, "\n")
}
