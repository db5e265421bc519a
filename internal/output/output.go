// Package output provides styled terminal output for the CLI
package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Symbols for message prefixes
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "▲"
	SymbolHint    = "↳"
	SymbolInfo    = "○"
	SymbolSection = "§"
	SymbolOn      = "●"
	SymbolOff     = "○"
)

var (
	colorSuccess = lipgloss.Color("#22c55e") // green
	colorError   = lipgloss.Color("#ef4444") // red
	colorWarning = lipgloss.Color("#eab308") // yellow
	colorCyan    = lipgloss.Color("#06b6d4") // cyan
	colorDim     = lipgloss.Color("#6b7280") // gray

	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	warningStyle = lipgloss.NewStyle().Foreground(colorWarning)
	hintStyle    = lipgloss.NewStyle().Foreground(colorDim)
	infoStyle    = lipgloss.NewStyle().Foreground(colorDim)

	boldStyle   = lipgloss.NewStyle().Bold(true)
	dimStyle    = lipgloss.NewStyle().Foreground(colorDim)
	cyanStyle   = lipgloss.NewStyle().Foreground(colorCyan)
	greenStyle  = lipgloss.NewStyle().Foreground(colorSuccess)
	yellowStyle = lipgloss.NewStyle().Foreground(colorWarning)
	redStyle    = lipgloss.NewStyle().Foreground(colorError)

	headerStyle = lipgloss.NewStyle().
			Foreground(colorCyan).
			Bold(true)
)

// Success prints a success message with green checkmark
func Success(message string) {
	fmt.Println(successStyle.Render(SymbolSuccess) + " " + greenStyle.Render(message))
}

// Successf prints a formatted success message
func Successf(format string, args ...any) {
	Success(fmt.Sprintf(format, args...))
}

// Error prints an error message with red X
func Error(message string) {
	fmt.Fprintln(os.Stderr, errorStyle.Render(SymbolError)+" "+redStyle.Render(message))
}

// Errorf prints a formatted error message
func Errorf(format string, args ...any) {
	Error(fmt.Sprintf(format, args...))
}

// Warning prints a warning message with yellow triangle
func Warning(message string) {
	fmt.Println(warningStyle.Render(SymbolWarning) + " " + yellowStyle.Render(message))
}

// Warningf prints a formatted warning message
func Warningf(format string, args ...any) {
	Warning(fmt.Sprintf(format, args...))
}

// Hint prints a hint message with dim arrow
func Hint(message string) {
	fmt.Println(hintStyle.Render(SymbolHint) + " " + dimStyle.Render(message))
}

// Hintf prints a formatted hint message
func Hintf(format string, args ...any) {
	Hint(fmt.Sprintf(format, args...))
}

// Info prints an info message with dim circle
func Info(message string) {
	fmt.Println(infoStyle.Render(SymbolInfo) + " " + message)
}

// Infof prints a formatted info message
func Infof(format string, args ...any) {
	Info(fmt.Sprintf(format, args...))
}

// Header prints a section header
func Header(title string) {
	fmt.Println(headerStyle.Render(title))
}

// Bold returns bolded text
func Bold(text string) string {
	return boldStyle.Render(text)
}

// Dim returns dimmed text
func Dim(text string) string {
	return dimStyle.Render(text)
}

// Path formats a file path (shortens home directory to ~)
func Path(p string) string {
	home, err := os.UserHomeDir()
	if err == nil && home != "" && strings.HasPrefix(p, home) {
		p = "~" + strings.TrimPrefix(p, home)
	}
	return dimStyle.Render(p)
}

// KeyValue prints a key-value pair with proper formatting
func KeyValue(key, value string) {
	fmt.Printf("%s %s\n", dimStyle.Render(key+":"), value)
}

// Blank prints an empty line
func Blank() {
	fmt.Println()
}

// Toggle renders a boolean as a colored dot and word.
func Toggle(on bool) string {
	if on {
		return greenStyle.Render(SymbolOn + " on")
	}
	return dimStyle.Render(SymbolOff + " off")
}

// PreferenceRow is one item in a printed preference list.
type PreferenceRow struct {
	Name     string
	Text     string
	Type     string
	Value    string
	Disabled bool
	Default  bool
}

// PreferenceSection groups rows under a title.
type PreferenceSection struct {
	Title string
	Rows  []PreferenceRow
}

// PrintPreferenceList prints sections with aligned name, text and value
// columns.
func PrintPreferenceList(title string, sections []PreferenceSection) {
	if title != "" {
		Header(title)
		Blank()
	}

	nameWidth, textWidth := 0, 0
	for _, s := range sections {
		for _, r := range s.Rows {
			nameWidth = max(nameWidth, runewidth.StringWidth(r.Name))
			textWidth = max(textWidth, runewidth.StringWidth(r.Text))
		}
	}

	first := true
	for _, s := range sections {
		if len(s.Rows) == 0 {
			continue
		}
		if !first {
			Blank()
		}
		first = false

		fmt.Println(cyanStyle.Render(SymbolSection) + " " + Bold(s.Title))
		for _, r := range s.Rows {
			name := runewidth.FillRight(r.Name, nameWidth)
			text := runewidth.FillRight(r.Text, textWidth)

			var notes []string
			if r.Default {
				notes = append(notes, "default")
			}
			if r.Disabled {
				notes = append(notes, "read-only")
			}
			suffix := ""
			if len(notes) > 0 {
				suffix = " " + dimStyle.Render("("+strings.Join(notes, ", ")+")")
			}

			line := fmt.Sprintf("  %s  %s  %s%s", Bold(name), text, r.Value, suffix)
			if r.Disabled {
				line = fmt.Sprintf("  %s  %s  %s%s", dimStyle.Render(name), dimStyle.Render(text), r.Value, suffix)
			}
			fmt.Println(line)
		}
	}
}

// PreferenceChanged prints the confirmation after a value was saved.
func PreferenceChanged(name, value string) {
	Successf("%s set to %s", Bold(name), value)
}

// PreferenceReset prints the confirmation after a saved value was removed.
func PreferenceReset(name, value string) {
	Successf("%s reset", Bold(name))
	if value != "" {
		KeyValue("Default", value)
	}
}
