package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/langtind/prefsheet/internal/prefs"
)

// Change is one recorded onChange call.
type Change struct {
	Item  prefs.Item
	Value any
}

// ChangeRecorder records change callbacks for assertions.
type ChangeRecorder struct {
	Changes []Change
}

// OnChange implements prefs.ChangeFunc.
func (r *ChangeRecorder) OnChange(item prefs.Item, value any) {
	r.Changes = append(r.Changes, Change{Item: item, Value: value})
}

// Count returns how many changes were recorded for name.
func (r *ChangeRecorder) Count(name string) int {
	n := 0
	for _, c := range r.Changes {
		if c.Item.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent change.
func (r *ChangeRecorder) Last() (Change, bool) {
	if len(r.Changes) == 0 {
		return Change{}, false
	}
	return r.Changes[len(r.Changes)-1], true
}

// ValueSource serves fixed values and counts accessor calls.
type ValueSource struct {
	Values map[string]any
	Calls  int
}

// NewValueSource creates a source over values.
func NewValueSource(values map[string]any) *ValueSource {
	if values == nil {
		values = make(map[string]any)
	}
	return &ValueSource{Values: values}
}

// GetValue implements prefs.ValueFunc.
func (s *ValueSource) GetValue(item prefs.Item) any {
	s.Calls++
	return s.Values[item.Name]
}

// SampleSections returns a list exercising every item type.
func SampleSections() []prefs.Section {
	return []prefs.Section{
		{
			Title: "Account",
			Items: []prefs.Item{
				{Name: "username", Type: prefs.TextInput, Text: "User name", Subtext: "Shown to other players"},
				{Name: "notifications", Type: prefs.Checkbox, Text: "Notifications"},
				{Name: "sync", Type: prefs.Checkbox, Text: "Cloud sync", Disabled: true},
			},
		},
		{
			Title: "Display",
			Items: []prefs.Item{
				{Name: "theme", Type: prefs.Picker, Text: "Theme", Values: []prefs.PickerValue{
					{ID: "light", Label: "Light"},
					{ID: "dark", Label: "Dark"},
					{ID: "system", Label: "Follow system"},
				}},
				{Name: "fontsize", Type: prefs.Picker, Text: "Font size", Disabled: true, Values: []prefs.PickerValue{
					{ID: "s", Label: "Small"},
					{ID: "m", Label: "Medium"},
				}},
			},
		},
		{
			Title: "About",
			Items: []prefs.Item{
				{Name: "version", Type: prefs.Label, Text: "Version"},
			},
		},
	}
}

// SampleSchemaYAML is SampleSections in schema file form.
const SampleSchemaYAML = `title: Test settings
sections:
  - title: Account
    items:
      - name: username
        type: textinput
        text: User name
        subtext: Shown to other players
      - name: notifications
        type: checkbox
        text: Notifications
        default: true
      - name: sync
        type: switch
        text: Cloud sync
        disabled: true
  - title: Display
    items:
      - name: theme
        type: picker
        text: Theme
        default: system
        values:
          - {id: light, label: Light}
          - {id: dark, label: Dark}
          - {id: system, label: Follow system}
  - title: About
    items:
      - name: version
        type: 4
        text: Version
        default: "1.0.0"
`

// WriteFile writes content under dir and returns the full path.
func WriteFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("failed to create dir for %s: %v", name, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write %s: %v", name, err)
	}
	return path
}
