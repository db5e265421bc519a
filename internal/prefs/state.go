package prefs

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// StatePrefix is prepended to item names to form state keys.
const StatePrefix = "pref_"

// StateKey returns the state key of an item name.
func StateKey(name string) string {
	return StatePrefix + name
}

// State maps state keys to current values. The zero value is ready to use.
type State struct {
	values map[string]any
}

// Derive builds the value state for every item in sections. Each value comes
// from getValue (nil when getValue is nil); checkbox values are coerced to bool.
func Derive(sections []Section, getValue ValueFunc) State {
	st := State{values: make(map[string]any)}
	for _, s := range sections {
		for _, it := range s.Items {
			var v any
			if getValue != nil {
				v = getValue(it)
			}
			if it.Type == Checkbox {
				v = CoerceBool(v)
			}
			st.values[StateKey(it.Name)] = v
		}
	}
	return st
}

// Get returns the value stored for an item name.
func (s State) Get(name string) (any, bool) {
	v, ok := s.values[StateKey(name)]
	return v, ok
}

// Set stores a value for an item name.
func (s *State) Set(name string, v any) {
	if s.values == nil {
		s.values = make(map[string]any)
	}
	s.values[StateKey(name)] = v
}

// Bool returns the boolean value of an item name.
func (s State) Bool(name string) bool {
	v, _ := s.Get(name)
	return CoerceBool(v)
}

// String returns the display string of an item name. Missing and nil
// values render as the empty string.
func (s State) String(name string) string {
	v, _ := s.Get(name)
	return Stringify(v)
}

// Len returns the number of keys in the state.
func (s State) Len() int {
	return len(s.values)
}

// Clone returns an independent copy.
func (s State) Clone() State {
	c := State{values: make(map[string]any, len(s.values))}
	for k, v := range s.values {
		c.values[k] = v
	}
	return c
}

// Stringify formats a value for display.
func Stringify(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprint(x)
	}
}

// CoerceBool interprets a stored value as a checkbox state. Strings are read
// by their leading integer ("1", "12abc" are true; "0", "abc" are false) and
// the words true, yes and on are accepted as well.
func CoerceBool(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case int:
		return x != 0
	case int8:
		return x != 0
	case int16:
		return x != 0
	case int32:
		return x != 0
	case int64:
		return x != 0
	case uint:
		return x != 0
	case uint8:
		return x != 0
	case uint16:
		return x != 0
	case uint32:
		return x != 0
	case uint64:
		return x != 0
	case float32:
		return coerceFloat(float64(x))
	case float64:
		return coerceFloat(x)
	case string:
		return coerceString(x)
	default:
		return coerceString(fmt.Sprint(x))
	}
}

func coerceFloat(f float64) bool {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return false
	}
	return math.Trunc(f) != 0
}

func coerceString(s string) bool {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true
	}
	n, ok := leadingInt(s)
	return ok && n != 0
}

// ParseBool reads typed checkbox input: an integer prefix or one of
// true/false, yes/no, on/off in any case. Anything else is ErrInvalidValue.
func ParseBool(raw string) (bool, error) {
	s := strings.TrimSpace(raw)
	switch strings.ToLower(s) {
	case "true", "yes", "on":
		return true, nil
	case "false", "no", "off":
		return false, nil
	}
	if n, ok := leadingInt(s); ok {
		return n != 0, nil
	}
	return false, fmt.Errorf("%w: %q is not a boolean (use on/off, yes/no, true/false or a number)", ErrInvalidValue, raw)
}

// leadingInt parses the integer prefix of s, e.g. "-12px" is -12.
func leadingInt(s string) (int64, bool) {
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	start := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == start {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil {
		// overflow still means a non-zero number
		return 1, true
	}
	return n, true
}
