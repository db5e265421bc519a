package prefs

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// searchSource adapts a flattened item list to fuzzy.Source.
type searchSource []Item

func (s searchSource) String(i int) string {
	it := s[i]
	return strings.ToLower(it.Text + " " + it.Name + " " + it.Subtext)
}

func (s searchSource) Len() int { return len(s) }

// Search returns the names of items matching query, best match first.
// An empty query matches every item in display order.
func Search(sections []Section, query string) []string {
	items := Items(sections)
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		names := make([]string, 0, len(items))
		for _, it := range items {
			names = append(names, it.Name)
		}
		return names
	}

	matches := fuzzy.FindFrom(query, searchSource(items))
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, items[m.Index].Name)
	}
	return names
}
