package ui

import "github.com/langtind/prefsheet/internal/prefs"

// RefreshMsg asks the list to re-read every value through its accessor.
type RefreshMsg struct{}

// SectionsMsg replaces the displayed sections.
type SectionsMsg struct {
	Sections []prefs.Section
}
