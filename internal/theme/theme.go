// Package theme holds the color palette shared by the list and its dialogs.
package theme

import "github.com/charmbracelet/lipgloss"

var (
	Primary   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#22c55e"} // Green
	Secondary = lipgloss.AdaptiveColor{Light: "#6366f1", Dark: "#818cf8"} // Indigo
	Accent    = lipgloss.AdaptiveColor{Light: "#f59e0b", Dark: "#fbbf24"} // Amber

	Text       = lipgloss.AdaptiveColor{Light: "#1f2937", Dark: "#f3f4f6"}
	TextMuted  = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
	TextSubtle = lipgloss.AdaptiveColor{Light: "#9ca3af", Dark: "#6b7280"}
	Border     = lipgloss.AdaptiveColor{Light: "#d1d5db", Dark: "#374151"}
	BorderDim  = lipgloss.AdaptiveColor{Light: "#e5e7eb", Dark: "#1f2937"}
	Highlight  = lipgloss.AdaptiveColor{Light: "#dbeafe", Dark: "#1e3a5f"}
	Section    = lipgloss.AdaptiveColor{Light: "#eeeeee", Dark: "#1f2937"}
	Bar        = lipgloss.AdaptiveColor{Light: "#f3f4f6", Dark: "#1f2937"}
)
