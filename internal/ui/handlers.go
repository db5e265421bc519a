package ui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/langtind/prefsheet/internal/dialog"
	"github.com/langtind/prefsheet/internal/logging"
	"github.com/langtind/prefsheet/internal/prefs"
)

// handleKeyPress routes a key to the open dialog, the search input or the list.
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.prompt != nil {
		p, cmd := m.prompt.Update(msg)
		m.prompt = &p
		return m, cmd
	}
	if m.picker != nil {
		p, cmd := m.picker.Update(msg)
		m.picker = &p
		return m, cmd
	}
	if m.searching {
		return m.handleSearchKeys(msg)
	}
	if m.helpVisible {
		if key.Matches(msg, m.keys.Help) || key.Matches(msg, m.keys.Back) {
			m.helpVisible = false
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		if m.opts.Standalone {
			logging.Info("User quit")
			return m, tea.Quit
		}
		return m, nil

	case key.Matches(msg, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(msg, m.keys.PageUp):
		m.moveCursor(-m.pageSize())
	case key.Matches(msg, m.keys.PageDown):
		m.moveCursor(m.pageSize())
	case key.Matches(msg, m.keys.Home):
		m.moveCursor(-len(m.itemIdx))
	case key.Matches(msg, m.keys.End):
		m.moveCursor(len(m.itemIdx))

	case key.Matches(msg, m.keys.Activate):
		if it, ok := m.Selected(); ok {
			return m.onMenuClick(it)
		}

	case key.Matches(msg, m.keys.Search):
		m.searching = true
		m.search.SetValue(m.query)
		m.search.CursorEnd()
		return m, m.search.Focus()

	case key.Matches(msg, m.keys.Back):
		if m.query != "" {
			m.setQuery("")
		}

	case key.Matches(msg, m.keys.Refresh):
		if m.opts.Refreshable {
			m.refresh()
		}

	case key.Matches(msg, m.keys.Help):
		m.helpVisible = true
	}

	return m, nil
}

// handleSearchKeys edits the search query and filters as the user types.
func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.searching = false
		m.search.Blur()
		return m, nil
	case tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		m.setQuery("")
		return m, nil
	case tea.KeyUp, tea.KeyDown:
		if msg.Type == tea.KeyUp {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	if m.search.Value() != m.query {
		m.setQuery(m.search.Value())
	}
	return m, cmd
}

// handleMouse scrolls the cursor with the wheel.
func (m Model) handleMouse(msg tea.MouseMsg) Model {
	if m.DialogOpen() {
		return m
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
	}
	return m
}

// onMenuClick dispatches activation of a row by item type. Inert rows
// (labels and disabled items) ignore it.
func (m Model) onMenuClick(it prefs.Item) (Model, tea.Cmd) {
	if !it.Pressable() {
		logging.Debug("Ignoring activation of inert item %s", it.Name)
		return m, nil
	}

	switch it.Type {
	case prefs.Checkbox:
		m.onValueChange(it, !m.state.Bool(it.Name))
		return m, nil

	case prefs.TextInput:
		logging.Debug("Opening prompt for %s", it.Name)
		p := dialog.NewPrompt(it.Name, it.Text, it.Subtext, m.state.String(it.Name))
		m.prompt = &p
		return m, p.Init()

	case prefs.Picker:
		logging.Debug("Opening picker for %s", it.Name)
		p := dialog.NewPicker(it.Name, it.Text, it.Values, m.state.String(it.Name))
		m.picker = &p
		return m, nil
	}
	return m, nil
}

// onValueChange stores a new value and notifies the host once.
func (m *Model) onValueChange(it prefs.Item, value any) {
	logging.Info("Preference %s changed to %v", it.Name, value)
	m.state.Set(it.Name, value)
	m.revision++
	if m.opts.OnChange != nil {
		m.opts.OnChange(it, value)
	}
}

// lookupPressable finds a dialog's requester, dropping results for items
// that disappeared or became inert while the dialog was open.
func (m Model) lookupPressable(name string) (prefs.Item, bool) {
	it, ok := prefs.Find(m.sections, name)
	if !ok || !it.Pressable() {
		logging.Warn("Dropping dialog result for %s: item missing or inert", name)
		return prefs.Item{}, false
	}
	return it, true
}

func (m Model) applyPromptResult(msg dialog.PromptResultMsg) Model {
	logging.Debug("Prompt %s closed: %s", msg.Name, msg.Action)
	if msg.Action != dialog.ActionPositive {
		return m
	}
	if it, ok := m.lookupPressable(msg.Name); ok && it.Type == prefs.TextInput {
		m.onValueChange(it, msg.Text)
	}
	return m
}

func (m Model) applyPickResult(msg dialog.PickResultMsg) Model {
	logging.Debug("Picker %s closed: %s", msg.Name, msg.Action)
	if msg.Action != dialog.ActionPositive {
		return m
	}
	if it, ok := m.lookupPressable(msg.Name); ok && it.Type == prefs.Picker {
		m.onValueChange(it, msg.ID)
	}
	return m
}
