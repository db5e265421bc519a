package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpLine struct {
	key  string
	desc string
}

// renderHelpContent renders the help content
func (m Model) renderHelpContent() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("Keyboard Shortcuts"))
	b.WriteString("\n\n")

	general := []helpLine{
		{"?", "Toggle help"},
		{"esc", "Close / clear search"},
	}
	if m.opts.Refreshable {
		general = append(general, helpLine{"r", "Reload values"})
	}
	if m.opts.Standalone {
		general = append(general, helpLine{"q", "Quit"})
	}

	sections := []struct {
		title string
		items []helpLine
	}{
		{
			title: "Navigation",
			items: []helpLine{
				{"↑/k", "Move up"},
				{"↓/j", "Move down"},
				{"pgup/pgdn", "Page up / down"},
				{"g/G", "First / last"},
				{"/", "Search settings"},
			},
		},
		{
			title: "Editing",
			items: []helpLine{
				{"enter", "Toggle, edit or pick"},
				{"space", "Same as enter"},
			},
		},
		{
			title: "General",
			items: general,
		},
	}

	sectionStyle := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true)

	keyStyle := lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Width(11)

	descStyle := lipgloss.NewStyle().
		Foreground(ColorText)

	for i, section := range sections {
		b.WriteString(sectionStyle.Render(section.title))
		b.WriteString("\n")

		for _, item := range section.items {
			b.WriteString("  ")
			b.WriteString(keyStyle.Render(item.key))
			b.WriteString(descStyle.Render(item.desc))
			b.WriteString("\n")
		}

		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Legend"))
	b.WriteString("\n")
	on, off := "[x]", "[ ]"
	if m.opts.ToggleStyle == ToggleSwitch {
		on, off = "●━", "━○"
	}
	b.WriteString("  " + keyStyle.Render(on) + descStyle.Render("Enabled") + "\n")
	b.WriteString("  " + keyStyle.Render(off) + descStyle.Render("Disabled") + "\n")
	b.WriteString("  " + keyStyle.Render("dimmed") + descStyle.Render("Read-only setting") + "\n")

	b.WriteString("\n")
	b.WriteString(HelpTextStyle.Render("Press ? or esc to close"))

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Render(b.String())
}
