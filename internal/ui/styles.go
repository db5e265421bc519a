package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/langtind/prefsheet/internal/theme"
)

// Color palette shared by the list, footer and overlays
var (
	ColorPrimary   = theme.Primary
	ColorSecondary = theme.Secondary
	ColorAccent    = theme.Accent

	ColorText       = theme.Text
	ColorTextMuted  = theme.TextMuted
	ColorTextSubtle = theme.TextSubtle
	ColorBorder     = theme.Border
	ColorBorderDim  = theme.BorderDim
	ColorHighlight  = theme.Highlight
	ColorSection    = theme.Section
)

// Layout constants
const (
	HeaderHeight = 2
	FooterHeight = 2
)

// ═══════════════════════════════════════════════════════════════════════════
// Header Bar Styles
// ═══════════════════════════════════════════════════════════════════════════

var (
	HeaderBarStyle = lipgloss.NewStyle().
			Background(theme.Bar).
			Padding(0, 2)

	TitleStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HeaderInfoStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)
)

// ═══════════════════════════════════════════════════════════════════════════
// Section / Row Styles
// ═══════════════════════════════════════════════════════════════════════════

var (
	SectionHeaderStyle = lipgloss.NewStyle().
				Background(ColorSection).
				Foreground(ColorTextMuted).
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderTop(true).
				BorderForeground(ColorBorder).
				Padding(0, 2)

	RowStyle = lipgloss.NewStyle().
			Padding(0, 2)

	RowSelectedStyle = lipgloss.NewStyle().
				Background(ColorHighlight).
				Foreground(ColorText).
				Padding(0, 2)

	RowTextStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	RowTextDisabledStyle = lipgloss.NewStyle().
				Foreground(ColorTextSubtle)

	RowSubtextStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	ValueTextStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	ToggleOnStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	ToggleOffStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted).
			Italic(true).
			Padding(1, 2)
)

// ═══════════════════════════════════════════════════════════════════════════
// Footer / Help Bar Styles
// ═══════════════════════════════════════════════════════════════════════════

var (
	FooterBarStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(ColorBorderDim).
			Padding(0, 1)

	HelpKeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	HelpTextStyle = lipgloss.NewStyle().
			Foreground(ColorTextMuted)

	HelpSeparatorStyle = lipgloss.NewStyle().
				Foreground(ColorBorderDim)

	SearchPromptStyle = lipgloss.NewStyle().
				Foreground(ColorAccent).
				Bold(true)
)

// ContainerStyle wraps the whole list unless the host overrides it.
var ContainerStyle = lipgloss.NewStyle()

// HelpItem creates a formatted help item with key and description
func HelpItem(key, desc string) string {
	return HelpKeyStyle.Render(key) + HelpTextStyle.Render(" "+desc)
}

// HelpBar creates a formatted help bar from multiple items
func HelpBar(items ...string) string {
	separator := HelpSeparatorStyle.Render("  │  ")
	return strings.Join(items, separator)
}
