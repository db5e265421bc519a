package ui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/langtind/prefsheet/internal/dialog"
	"github.com/langtind/prefsheet/internal/logging"
	"github.com/langtind/prefsheet/internal/prefs"
)

// New creates a preference list over sections. The value state is derived
// immediately from opts.GetValue.
func New(sections []prefs.Section, opts Options) Model {
	search := textinput.New()
	search.Prompt = "/"
	search.Placeholder = "search settings"
	search.CharLimit = 64

	m := Model{
		opts:   opts,
		keys:   DefaultKeyMap(),
		search: search,
	}
	m.SetSections(sections)
	return m
}

// SetSections replaces the list and re-derives every value.
func (m *Model) SetSections(sections []prefs.Section) {
	if dups := prefs.Duplicates(sections); len(dups) > 0 {
		logging.Warn("Preference list has duplicate item names: %v", dups)
	}
	m.sections = sections
	m.QueryValues()
	m.rebuild()
}

// QueryValues re-reads every value through the accessor, discarding local
// edits that the host did not persist.
func (m *Model) QueryValues() {
	m.state = prefs.Derive(m.sections, m.opts.GetValue)
	logging.Debug("Derived %d preference values", m.state.Len())
}

// Sections returns the current section list.
func (m Model) Sections() []prefs.Section {
	return m.sections
}

// Value returns the current state of an item.
func (m Model) Value(name string) (any, bool) {
	return m.state.Get(name)
}

// State returns a copy of the value state.
func (m Model) State() prefs.State {
	return m.state.Clone()
}

// Cursor returns the index of the highlighted item among visible items.
func (m Model) Cursor() int {
	return m.cursor
}

// Selected returns the highlighted item.
func (m Model) Selected() (prefs.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.itemIdx) {
		return prefs.Item{}, false
	}
	return m.entries[m.itemIdx[m.cursor]].item, true
}

// Revision counts value changes made through the list.
func (m Model) Revision() int {
	return m.revision
}

// DialogOpen reports whether a prompt or picker is showing.
func (m Model) DialogOpen() bool {
	return m.prompt != nil || m.picker != nil
}

// Query returns the active search filter.
func (m Model) Query() string {
	return m.query
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles all incoming messages and updates the model state
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ensureVisible()
		return m, nil

	case RefreshMsg:
		m.refresh()
		return m, nil

	case SectionsMsg:
		m.SetSections(msg.Sections)
		return m, nil

	case dialog.PromptResultMsg:
		m.prompt = nil
		return m.applyPromptResult(msg), nil

	case dialog.PickResultMsg:
		m.picker = nil
		return m.applyPickResult(msg), nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg), nil
	}

	// Forward anything else (cursor blink) to an open prompt
	if m.prompt != nil {
		p, cmd := m.prompt.Update(msg)
		m.prompt = &p
		return m, cmd
	}
	if m.searching {
		var cmd tea.Cmd
		m.search, cmd = m.search.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the list, its footer and any open dialog.
func (m Model) View() string {
	base := m.listView()

	switch {
	case m.prompt != nil:
		return m.overlay(base, m.prompt.View())
	case m.picker != nil:
		return m.overlay(base, m.picker.View())
	case m.helpVisible:
		return m.overlay(base, m.renderHelpContent())
	}
	return base
}

// refresh reloads the host's values and derives the state again.
func (m *Model) refresh() {
	logging.Info("Refreshing preference values")
	if m.opts.Reload != nil {
		if err := m.opts.Reload(); err != nil {
			logging.Error("Reload failed, keeping current values: %v", err)
			return
		}
	}
	m.QueryValues()
}
