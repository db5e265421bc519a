package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/langtind/prefsheet/internal/prefs"
)

// Picker offers a single choice among a fixed set of values.
type Picker struct {
	name     string
	title    string
	options  []prefs.PickerValue
	selected int
	keys     KeyMap
	done     bool
}

// NewPicker creates a picker with the option matching current preselected.
func NewPicker(name, title string, options []prefs.PickerValue, current string) Picker {
	return Picker{
		name:     name,
		title:    title,
		options:  options,
		selected: max(prefs.Item{Values: options}.IndexOf(current), 0),
		keys:     DefaultKeyMap(),
	}
}

// Name returns the requester name.
func (p Picker) Name() string { return p.name }

// Selected returns the index of the highlighted option.
func (p Picker) Selected() int { return p.selected }

// Done reports whether the picker has been resolved.
func (p Picker) Done() bool { return p.done }

// Update moves the selection and resolves on accept or cancel.
func (p Picker) Update(msg tea.Msg) (Picker, tea.Cmd) {
	if p.done {
		return p, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return p, nil
	}

	switch {
	case key.Matches(keyMsg, p.keys.Up):
		if p.selected > 0 {
			p.selected--
		}
	case key.Matches(keyMsg, p.keys.Down):
		if p.selected < len(p.options)-1 {
			p.selected++
		}
	case key.Matches(keyMsg, p.keys.Accept):
		if len(p.options) == 0 {
			return p.resolve(ActionDismiss, "")
		}
		return p.resolve(ActionPositive, p.options[p.selected].ID)
	case key.Matches(keyMsg, p.keys.Cancel):
		return p.resolve(ActionNegative, "")
	}
	return p, nil
}

// Dismiss closes the picker without a choice.
func (p Picker) Dismiss() (Picker, tea.Cmd) {
	if p.done {
		return p, nil
	}
	return p.resolve(ActionDismiss, "")
}

func (p Picker) resolve(action Action, id string) (Picker, tea.Cmd) {
	p.done = true
	result := PickResultMsg{Name: p.name, Action: action, ID: id}
	return p, func() tea.Msg { return result }
}

// View renders the radio list.
func (p Picker) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n\n")

	for i, o := range p.options {
		label := o.Label
		if label == "" {
			label = o.ID
		}
		if i == p.selected {
			b.WriteString(optionSelectedStyle.Render("◉ " + label))
		} else {
			b.WriteString(optionStyle.Render("○ " + label))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render("↑↓ select • enter ok • esc cancel"))

	return boxStyle.Width(Width).Render(b.String())
}
