package prefs

import (
	"errors"
	"strings"
	"testing"
)

func sampleSections() []Section {
	return []Section{
		{
			Title: "Account",
			Items: []Item{
				{Name: "username", Type: TextInput, Text: "User name", Subtext: "Shown to others"},
				{Name: "notifications", Type: Checkbox, Text: "Notifications"},
			},
		},
		{
			Title: "Display",
			Items: []Item{
				{Name: "theme", Type: Picker, Text: "Theme", Values: []PickerValue{
					{ID: "light", Label: "Light"},
					{ID: "dark", Label: "Dark"},
				}},
				{Name: "version", Type: Label, Text: "Version"},
			},
		},
	}
}

func TestStateKey(t *testing.T) {
	if got := StateKey("theme"); got != "pref_theme" {
		t.Errorf("StateKey(theme) = %q, want pref_theme", got)
	}
}

func TestDeriveUsesAccessor(t *testing.T) {
	values := map[string]any{
		"username":      "alice",
		"notifications": "1",
		"theme":         "dark",
		"version":       "1.2.0",
	}
	var calls []string
	st := Derive(sampleSections(), func(it Item) any {
		calls = append(calls, it.Name)
		return values[it.Name]
	})

	if len(calls) != 4 {
		t.Fatalf("accessor called %d times, want 4", len(calls))
	}
	if st.Len() != 4 {
		t.Errorf("state has %d keys, want 4", st.Len())
	}
	if got := st.String("username"); got != "alice" {
		t.Errorf("username = %q, want alice", got)
	}
	if v, _ := st.Get("notifications"); v != true {
		t.Errorf("notifications = %#v, want true", v)
	}
	if got := st.String("theme"); got != "dark" {
		t.Errorf("theme = %q, want dark", got)
	}
	if got := st.String("version"); got != "1.2.0" {
		t.Errorf("version = %q, want 1.2.0", got)
	}
}

func TestDeriveWithoutAccessor(t *testing.T) {
	st := Derive(sampleSections(), nil)

	if v, ok := st.Get("username"); !ok || v != nil {
		t.Errorf("username = %#v (present %v), want nil present", v, ok)
	}
	if v, _ := st.Get("notifications"); v != false {
		t.Errorf("checkbox without accessor = %#v, want false", v)
	}
}

func TestDeriveSkipsEmptySections(t *testing.T) {
	sections := []Section{{Title: "empty"}, {Title: "nil items", Items: nil}}
	st := Derive(sections, func(Item) any { return "x" })
	if st.Len() != 0 {
		t.Errorf("expected empty state, got %d keys", st.Len())
	}
	if Derive(nil, nil).Len() != 0 {
		t.Error("nil sections should derive an empty state")
	}
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		in   any
		want bool
	}{
		{nil, false},
		{true, true},
		{false, false},
		{0, false},
		{1, true},
		{int64(-3), true},
		{uint8(0), false},
		{0.4, false},
		{2.9, true},
		{"1", true},
		{"0", false},
		{"12abc", true},
		{"abc", false},
		{"", false},
		{" 7 ", true},
		{"-0", false},
		{"true", true},
		{"Yes", true},
		{"on", true},
		{"false", false},
		{"99999999999999999999", true},
	}

	for _, tt := range tests {
		if got := CoerceBool(tt.in); got != tt.want {
			t.Errorf("CoerceBool(%#v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStateSetAndClone(t *testing.T) {
	var st State
	st.Set("a", "one")
	clone := st.Clone()
	st.Set("a", "two")

	if got := clone.String("a"); got != "one" {
		t.Errorf("clone changed with original: %q", got)
	}
	if got := st.String("a"); got != "two" {
		t.Errorf("st = %q, want two", got)
	}
	if _, ok := st.values[StateKey("a")]; !ok {
		t.Errorf("state should be keyed by %q", StateKey("a"))
	}
}

func TestItemPressable(t *testing.T) {
	tests := []struct {
		name string
		item Item
		want bool
	}{
		{"checkbox", Item{Type: Checkbox}, true},
		{"text", Item{Type: TextInput}, true},
		{"picker", Item{Type: Picker}, true},
		{"label", Item{Type: Label}, false},
		{"disabled checkbox", Item{Type: Checkbox, Disabled: true}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.item.Pressable(); got != tt.want {
				t.Errorf("Pressable() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestItemLabelFor(t *testing.T) {
	theme, _ := Find(sampleSections(), "theme")
	if got := theme.LabelFor("dark"); got != "Dark" {
		t.Errorf("LabelFor(dark) = %q, want Dark", got)
	}
	if got := theme.LabelFor("sepia"); got != "sepia" {
		t.Errorf("LabelFor(sepia) = %q, want sepia", got)
	}
	if got := theme.IndexOf("dark"); got != 1 {
		t.Errorf("IndexOf(dark) = %d, want 1", got)
	}
}

func TestItemNormalize(t *testing.T) {
	sections := sampleSections()
	theme, _ := Find(sections, "theme")
	notif, _ := Find(sections, "notifications")
	version, _ := Find(sections, "version")
	user, _ := Find(sections, "username")

	if v, err := theme.Normalize("DARK"); err != nil || v != "dark" {
		t.Errorf("Normalize(DARK) = %v, %v; want dark", v, err)
	}
	if _, err := theme.Normalize("sepia"); !errors.Is(err, ErrInvalidValue) {
		t.Errorf("expected ErrInvalidValue, got %v", err)
	}
	checkbox := []struct {
		raw  string
		want bool
	}{
		{"yes", true},
		{"ON", true},
		{"off", false},
		{"No", false},
		{" false ", false},
		{"1", true},
		{"0", false},
		{"12abc", true},
	}
	for _, tt := range checkbox {
		if v, err := notif.Normalize(tt.raw); err != nil || v != tt.want {
			t.Errorf("checkbox Normalize(%q) = %v, %v; want %v", tt.raw, v, err, tt.want)
		}
	}
	for _, raw := range []string{"ture", "", "maybe", "enabled"} {
		if _, err := notif.Normalize(raw); !errors.Is(err, ErrInvalidValue) {
			t.Errorf("checkbox Normalize(%q) error = %v, want ErrInvalidValue", raw, err)
		}
	}
	if _, err := version.Normalize("2"); !errors.Is(err, ErrReadOnly) {
		t.Errorf("expected ErrReadOnly for label, got %v", err)
	}
	if v, _ := user.Normalize(" bob "); v != " bob " {
		t.Errorf("text Normalize should keep input, got %q", v)
	}
}

func TestParseItemType(t *testing.T) {
	tests := map[string]ItemType{
		"textinput": TextInput,
		"switch":    Checkbox,
		"Picker":    Picker,
		"label":     Label,
		"1":         TextInput,
		"3":         Picker,
	}
	for in, want := range tests {
		got, err := ParseItemType(in)
		if err != nil || got != want {
			t.Errorf("ParseItemType(%q) = %v, %v; want %v", in, got, err, want)
		}
	}
	if _, err := ParseItemType("5"); err == nil {
		t.Error("ParseItemType(5) should fail")
	}
	if _, err := ParseItemType("slider"); err == nil {
		t.Error("ParseItemType(slider) should fail")
	}
}

func TestValidate(t *testing.T) {
	if err := Validate(sampleSections()); err != nil {
		t.Fatalf("sample sections should validate: %v", err)
	}

	bad := []Section{{
		Title: "Broken",
		Items: []Item{
			{Name: "a", Type: Checkbox},
			{Name: "a", Type: TextInput},
			{Name: "", Type: Label},
			{Name: "p", Type: Picker},
			{Name: "x", Type: ItemType(9)},
		},
	}}
	err := Validate(bad)
	if err == nil {
		t.Fatal("expected validation error")
	}
	for _, want := range []string{"duplicate name \"a\"", "name cannot be empty", "picker \"p\" has no values", "unknown type 9"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q should mention %q", err, want)
		}
	}
	if dups := Duplicates(bad); len(dups) != 1 || dups[0] != "a" {
		t.Errorf("Duplicates() = %v, want [a]", dups)
	}
}

func TestLookupSuggests(t *testing.T) {
	sections := sampleSections()

	if _, err := Lookup(sections, "theme"); err != nil {
		t.Fatalf("Lookup(theme) failed: %v", err)
	}

	_, err := Lookup(sections, "them")
	if !errors.Is(err, ErrUnknownItem) {
		t.Fatalf("expected ErrUnknownItem, got %v", err)
	}
	if !strings.Contains(err.Error(), "did you mean theme") {
		t.Errorf("expected suggestion in %q", err)
	}

	_, err = Lookup(sections, "zzzzzzzzzzzz")
	if err == nil || strings.Contains(err.Error(), "did you mean") {
		t.Errorf("far names should not get suggestions: %v", err)
	}
}

func TestSearch(t *testing.T) {
	sections := sampleSections()

	all := Search(sections, "")
	if len(all) != 4 || all[0] != "username" {
		t.Errorf("empty query should return all items in order, got %v", all)
	}

	got := Search(sections, "notif")
	if len(got) == 0 || got[0] != "notifications" {
		t.Errorf("Search(notif) = %v, want notifications first", got)
	}

	if got := Search(sections, "qqq"); len(got) != 0 {
		t.Errorf("Search(qqq) = %v, want none", got)
	}
}
