package prefs

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

var (
	// ErrUnknownItem is returned when no item has the requested name.
	ErrUnknownItem = errors.New("unknown preference")
	// ErrReadOnly is returned when a label or disabled item is written.
	ErrReadOnly = errors.New("preference is read-only")
	// ErrInvalidValue is returned when a value does not fit the item type.
	ErrInvalidValue = errors.New("invalid value")
)

// Validate checks that every item has a unique, non-empty name, a known
// type, and that pickers declare at least one value.
func Validate(sections []Section) error {
	var errs []error
	seen := make(map[string]string)
	for si, s := range sections {
		for ii, it := range s.Items {
			where := fmt.Sprintf("section %d (%s) item %d", si, s.Title, ii)
			if strings.TrimSpace(it.Name) == "" {
				errs = append(errs, fmt.Errorf("%s: name cannot be empty", where))
				continue
			}
			if prev, ok := seen[it.Name]; ok {
				errs = append(errs, fmt.Errorf("%s: duplicate name %q (first used in %s)", where, it.Name, prev))
			} else {
				seen[it.Name] = where
			}
			if !it.Type.Valid() {
				errs = append(errs, fmt.Errorf("%s: %q has unknown type %d", where, it.Name, int(it.Type)))
			}
			if it.Type == Picker && len(it.Values) == 0 {
				errs = append(errs, fmt.Errorf("%s: picker %q has no values", where, it.Name))
			}
		}
	}
	return errors.Join(errs...)
}

// Duplicates returns item names used more than once, in first-seen order.
func Duplicates(sections []Section) []string {
	counts := make(map[string]int)
	var dups []string
	for _, it := range Items(sections) {
		counts[it.Name]++
		if counts[it.Name] == 2 {
			dups = append(dups, it.Name)
		}
	}
	return dups
}

// maxSuggestDistance bounds how different a suggestion may be.
const maxSuggestDistance = 3

// Suggest returns item names close to name, nearest first.
func Suggest(sections []Section, name string) []string {
	type candidate struct {
		name string
		dist int
	}
	var cands []candidate
	for _, it := range Items(sections) {
		d := levenshtein.ComputeDistance(strings.ToLower(name), strings.ToLower(it.Name))
		if d <= maxSuggestDistance {
			cands = append(cands, candidate{it.Name, d})
		}
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	out := make([]string, 0, len(cands))
	for _, c := range cands {
		out = append(out, c.name)
	}
	return out
}

// Lookup finds an item by name, returning ErrUnknownItem with suggestions
// when there is no match.
func Lookup(sections []Section, name string) (Item, error) {
	if it, ok := Find(sections, name); ok {
		return it, nil
	}
	if sugg := Suggest(sections, name); len(sugg) > 0 {
		return Item{}, fmt.Errorf("%w %q (did you mean %s?)", ErrUnknownItem, name, strings.Join(sugg, ", "))
	}
	return Item{}, fmt.Errorf("%w %q", ErrUnknownItem, name)
}
