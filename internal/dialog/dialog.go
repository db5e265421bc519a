// Package dialog provides the modal text prompt and radio picker used by the
// preference list. Dialogs resolve asynchronously: the result arrives as a
// tea.Msg produced by the command returned from Update.
package dialog

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/langtind/prefsheet/internal/theme"
)

// Action is the button a dialog was closed with.
type Action int

const (
	ActionPositive Action = iota
	ActionNegative
	ActionDismiss
)

func (a Action) String() string {
	switch a {
	case ActionPositive:
		return "positive"
	case ActionNegative:
		return "negative"
	default:
		return "dismiss"
	}
}

// PromptResultMsg carries the outcome of a Prompt.
type PromptResultMsg struct {
	Name   string
	Action Action
	Text   string
}

// PickResultMsg carries the outcome of a Picker.
type PickResultMsg struct {
	Name   string
	Action Action
	ID     string
}

// KeyMap holds dialog key bindings.
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Accept key.Binding
	Cancel key.Binding
}

// DefaultKeyMap returns the dialog key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "previous"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "next"),
		),
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "ok"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "cancel"),
		),
	}
}

var (
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Primary).
			Padding(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(theme.Primary).
			Bold(true)

	contentStyle = lipgloss.NewStyle().
			Foreground(theme.TextMuted)

	optionStyle = lipgloss.NewStyle().
			Foreground(theme.Text).
			Padding(0, 1)

	optionSelectedStyle = lipgloss.NewStyle().
				Background(theme.Highlight).
				Foreground(theme.Text).
				Bold(true).
				Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(theme.TextMuted)
)

// Width is the default outer width of a dialog box.
const Width = 50
