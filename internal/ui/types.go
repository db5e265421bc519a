package ui

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/langtind/prefsheet/internal/dialog"
	"github.com/langtind/prefsheet/internal/prefs"
)

// ToggleStyle selects how checkbox items are drawn.
type ToggleStyle int

const (
	ToggleCheckbox ToggleStyle = iota
	ToggleSwitch
)

// ParseToggleStyle accepts "checkbox", "switch" or "auto". Auto picks the
// switch on macOS and the checkbox elsewhere.
func ParseToggleStyle(s string) (ToggleStyle, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "checkbox":
		return ToggleCheckbox, nil
	case "switch":
		return ToggleSwitch, nil
	case "", "auto":
		if runtime.GOOS == "darwin" {
			return ToggleSwitch, nil
		}
		return ToggleCheckbox, nil
	default:
		return ToggleCheckbox, fmt.Errorf("invalid toggle style %q (must be one of: auto, checkbox, switch)", s)
	}
}

func (s ToggleStyle) String() string {
	if s == ToggleSwitch {
		return "switch"
	}
	return "checkbox"
}

// Options configures a preference list.
type Options struct {
	// GetValue supplies initial values. Nil leaves every value empty.
	GetValue prefs.ValueFunc
	// OnChange is called after each user-driven change. Nil is a no-op.
	OnChange prefs.ChangeFunc

	Title       string
	ToggleStyle ToggleStyle
	// ContainerStyle wraps the rendered list. Nil uses the package default.
	ContainerStyle *lipgloss.Style
	// Refreshable enables the refresh key, which re-reads every value
	// through GetValue.
	Refreshable bool
	// Reload, when set, runs before values are re-read on refresh.
	Reload func() error
	// Standalone makes q and ctrl+c quit the program.
	Standalone bool
}

// entry is one display row: a section header or an item.
type entry struct {
	header  string
	item    prefs.Item
	section int
	isItem  bool
}

// lines returns how many terminal lines the entry occupies.
func (e entry) lines(first bool) int {
	if !e.isItem {
		if first {
			return 2
		}
		return 3 // blank separator, top border, title
	}
	if e.item.Subtext != "" {
		return 2
	}
	return 1
}

// Model is the preference list component.
type Model struct {
	opts     Options
	sections []prefs.Section
	state    prefs.State

	// entries is the flattened, possibly filtered, display list and
	// itemIdx the positions of its item rows.
	entries []entry
	itemIdx []int

	cursor int // index into itemIdx
	offset int // first visible line of the list body

	width  int
	height int

	keys KeyMap

	prompt *dialog.Prompt
	picker *dialog.Picker

	searching bool
	search    textinput.Model
	query     string

	helpVisible bool

	// revision increases on every value change so hosts can detect
	// re-renders driven by edits.
	revision int
}

// KeyMap defines key bindings for the list
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Activate key.Binding
	Search   key.Binding
	Refresh  key.Binding
	Back     key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns default key bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup", "ctrl+u"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown", "ctrl+d"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "first"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "last"),
		),
		Activate: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "change"),
		),
		Search: key.NewBinding(
			key.WithKeys("/"),
			key.WithHelp("/", "search"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
