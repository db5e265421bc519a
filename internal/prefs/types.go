// Package prefs holds the preference list model: sections, items and the
// value state derived from a host-supplied accessor.
package prefs

import (
	"fmt"
	"strconv"
	"strings"
)

// ItemType tags how a row is rendered and how it reacts to activation.
// The numeric codes are stable and may appear in schema files.
type ItemType int

const (
	TextInput ItemType = 1
	Checkbox  ItemType = 2
	Picker    ItemType = 3
	Label     ItemType = 4
)

// String returns the canonical schema name of the type.
func (t ItemType) String() string {
	switch t {
	case TextInput:
		return "textinput"
	case Checkbox:
		return "checkbox"
	case Picker:
		return "picker"
	case Label:
		return "label"
	default:
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
}

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	return t >= TextInput && t <= Label
}

// ParseItemType accepts a type name or its numeric code.
func ParseItemType(s string) (ItemType, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	switch s {
	case "textinput", "text", "input":
		return TextInput, nil
	case "checkbox", "switch", "toggle":
		return Checkbox, nil
	case "picker", "select":
		return Picker, nil
	case "label":
		return Label, nil
	}
	if n, err := strconv.Atoi(s); err == nil {
		if t := ItemType(n); t.Valid() {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown item type %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (t ItemType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("unknown item type %d", int(t))
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *ItemType) UnmarshalText(b []byte) error {
	parsed, err := ParseItemType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// PickerValue is one selectable entry of a picker.
type PickerValue struct {
	ID    string `yaml:"id" toml:"id"`
	Label string `yaml:"label" toml:"label"`
}

// Item is one preference row.
type Item struct {
	Name     string        `yaml:"name"`
	Type     ItemType      `yaml:"type"`
	Text     string        `yaml:"text"`
	Subtext  string        `yaml:"subtext,omitempty"`
	Disabled bool          `yaml:"disabled,omitempty"`
	Values   []PickerValue `yaml:"values,omitempty"`
	Default  any           `yaml:"default,omitempty"`
}

// Section is a titled group of items.
type Section struct {
	Title string `yaml:"title"`
	Items []Item `yaml:"items"`
}

// ValueFunc supplies the external value of an item.
type ValueFunc func(item Item) any

// ChangeFunc is called after a user-driven value change.
type ChangeFunc func(item Item, value any)

// Pressable reports whether activating the row does anything.
// Labels and disabled rows are inert.
func (it Item) Pressable() bool {
	return !it.Disabled && it.Type != Label
}

// LabelFor returns the display label of a picker identifier.
// Unknown identifiers are shown as-is.
func (it Item) LabelFor(id string) string {
	for _, v := range it.Values {
		if v.ID == id {
			if v.Label == "" {
				return v.ID
			}
			return v.Label
		}
	}
	return id
}

// IndexOf returns the position of id in the picker values, or -1.
func (it Item) IndexOf(id string) int {
	for i, v := range it.Values {
		if v.ID == id {
			return i
		}
	}
	return -1
}

// Normalize converts raw text into the value type stored for this item.
// Checkboxes yield a bool (see ParseBool), pickers the matching identifier
// (a label is accepted case-insensitively), text inputs the text unchanged.
func (it Item) Normalize(raw string) (any, error) {
	switch it.Type {
	case Checkbox:
		return ParseBool(raw)
	case Picker:
		for _, v := range it.Values {
			if v.ID == raw {
				return v.ID, nil
			}
		}
		for _, v := range it.Values {
			if strings.EqualFold(v.Label, raw) {
				return v.ID, nil
			}
		}
		return nil, fmt.Errorf("%w: %q is not one of %s", ErrInvalidValue, raw, strings.Join(it.ids(), ", "))
	case Label:
		return nil, fmt.Errorf("%w: %s", ErrReadOnly, it.Name)
	default:
		return raw, nil
	}
}

func (it Item) ids() []string {
	ids := make([]string, 0, len(it.Values))
	for _, v := range it.Values {
		ids = append(ids, v.ID)
	}
	return ids
}

// Items flattens sections into display order.
func Items(sections []Section) []Item {
	var out []Item
	for _, s := range sections {
		out = append(out, s.Items...)
	}
	return out
}

// Find returns the item with the given name.
func Find(sections []Section, name string) (Item, bool) {
	for _, s := range sections {
		for _, it := range s.Items {
			if it.Name == name {
				return it, true
			}
		}
	}
	return Item{}, false
}
