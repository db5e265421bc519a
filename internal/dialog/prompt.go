package dialog

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// Prompt asks for a single line of free text.
type Prompt struct {
	name    string
	title   string
	content string
	input   textinput.Model
	keys    KeyMap
	done    bool
}

// NewPrompt creates a focused prompt. name identifies the requester in the
// result message; value prefills the input.
func NewPrompt(name, title, content, value string) Prompt {
	ti := textinput.New()
	ti.Prompt = "› "
	ti.CharLimit = 256
	ti.Width = Width - 10
	ti.SetValue(value)
	ti.CursorEnd()
	ti.Focus()

	return Prompt{
		name:    name,
		title:   title,
		content: content,
		input:   ti,
		keys:    DefaultKeyMap(),
	}
}

// Init starts the cursor blink.
func (p Prompt) Init() tea.Cmd {
	return textinput.Blink
}

// Name returns the requester name.
func (p Prompt) Name() string { return p.name }

// Value returns the text currently typed.
func (p Prompt) Value() string { return p.input.Value() }

// Done reports whether the prompt has been resolved.
func (p Prompt) Done() bool { return p.done }

// Update handles keys until the prompt is accepted or cancelled.
func (p Prompt) Update(msg tea.Msg) (Prompt, tea.Cmd) {
	if p.done {
		return p, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, p.keys.Accept):
			return p.resolve(ActionPositive)
		case key.Matches(keyMsg, p.keys.Cancel):
			return p.resolve(ActionNegative)
		}
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	return p, cmd
}

// Dismiss closes the prompt without a button press.
func (p Prompt) Dismiss() (Prompt, tea.Cmd) {
	if p.done {
		return p, nil
	}
	return p.resolve(ActionDismiss)
}

func (p Prompt) resolve(action Action) (Prompt, tea.Cmd) {
	p.done = true
	p.input.Blur()
	result := PromptResultMsg{Name: p.name, Action: action, Text: p.input.Value()}
	return p, func() tea.Msg { return result }
}

// View renders the prompt box.
func (p Prompt) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(p.title))
	b.WriteString("\n")
	if p.content != "" {
		b.WriteString(contentStyle.Render(p.content))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(p.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter ok • esc cancel"))

	return boxStyle.Width(Width).Render(b.String())
}
