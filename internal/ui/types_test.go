package ui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/langtind/prefsheet/internal/prefs"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name    string
		msg     tea.KeyMsg
		binding key.Binding
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, km.Up},
		{"vim k", keyRunes("k"), km.Up},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, km.Down},
		{"vim j", keyRunes("j"), km.Down},
		{"page up", tea.KeyMsg{Type: tea.KeyPgUp}, km.PageUp},
		{"ctrl+d", tea.KeyMsg{Type: tea.KeyCtrlD}, km.PageDown},
		{"g", keyRunes("g"), km.Home},
		{"G", keyRunes("G"), km.End},
		{"enter", tea.KeyMsg{Type: tea.KeyEnter}, km.Activate},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, km.Activate},
		{"slash", keyRunes("/"), km.Search},
		{"r", keyRunes("r"), km.Refresh},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, km.Back},
		{"question mark", keyRunes("?"), km.Help},
		{"q", keyRunes("q"), km.Quit},
		{"ctrl+c", tea.KeyMsg{Type: tea.KeyCtrlC}, km.Quit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !key.Matches(tt.msg, tt.binding) {
				t.Errorf("%s should match %v", tt.name, tt.binding.Keys())
			}
		})
	}
}

func TestEntryLines(t *testing.T) {
	tests := []struct {
		name  string
		e     entry
		first bool
		want  int
	}{
		{"first header", entry{header: "A"}, true, 2},
		{"later header", entry{header: "B"}, false, 3},
		{"item", entry{isItem: true, item: prefs.Item{Name: "a"}}, false, 1},
		{"item with subtext", entry{isItem: true, item: prefs.Item{Name: "a", Subtext: "more"}}, false, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.e.lines(tt.first); got != tt.want {
				t.Errorf("lines(%v) = %d, want %d", tt.first, got, tt.want)
			}
		})
	}
}
