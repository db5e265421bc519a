// Package schema loads the declarative section list from a YAML file.
package schema

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/langtind/prefsheet/internal/prefs"
)

// Schema is the parsed schema document.
type Schema struct {
	Title    string          `yaml:"title,omitempty"`
	Sections []prefs.Section `yaml:"sections"`
}

// Load reads and validates the schema at path.
func Load(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("schema not found: %s", path)
		}
		return nil, fmt.Errorf("failed to read schema: %w", err)
	}

	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// LoadOptional reads the schema at path, falling back to Default when the
// file does not exist.
func LoadOptional(path string) (*Schema, error) {
	if path == "" {
		return Default(), nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	return Load(path)
}

// Parse decodes and validates a schema document.
func Parse(data []byte) (*Schema, error) {
	var s Schema
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}
	if err := prefs.Validate(s.Sections); err != nil {
		return nil, fmt.Errorf("invalid schema: %w", err)
	}
	return &s, nil
}

// Marshal encodes a schema back to YAML.
func Marshal(s *Schema) ([]byte, error) {
	return yaml.Marshal(s)
}

// Items returns the number of items across all sections.
func (s *Schema) Items() int {
	return len(prefs.Items(s.Sections))
}

// Default returns the built-in schema used when no schema file exists.
func Default() *Schema {
	return &Schema{
		Title: "Preferences",
		Sections: []prefs.Section{
			{
				Title: "General",
				Items: []prefs.Item{
					{Name: "display_name", Type: prefs.TextInput, Text: "Display name", Subtext: "Shown next to your messages"},
					{Name: "notifications", Type: prefs.Checkbox, Text: "Notifications", Default: true},
					{Name: "sounds", Type: prefs.Checkbox, Text: "Sounds", Subtext: "Play a sound for new messages"},
				},
			},
			{
				Title: "Appearance",
				Items: []prefs.Item{
					{Name: "theme", Type: prefs.Picker, Text: "Theme", Default: "system", Values: []prefs.PickerValue{
						{ID: "light", Label: "Light"},
						{ID: "dark", Label: "Dark"},
						{ID: "system", Label: "Follow system"},
					}},
					{Name: "font_size", Type: prefs.Picker, Text: "Font size", Default: "medium", Values: []prefs.PickerValue{
						{ID: "small", Label: "Small"},
						{ID: "medium", Label: "Medium"},
						{ID: "large", Label: "Large"},
					}},
				},
			},
			{
				Title: "Sync",
				Items: []prefs.Item{
					{Name: "server", Type: prefs.TextInput, Text: "Server address", Subtext: "host:port"},
					{Name: "offline", Type: prefs.Checkbox, Text: "Offline mode", Subtext: "Managed by your administrator", Disabled: true},
				},
			},
			{
				Title: "About",
				Items: []prefs.Item{
					{Name: "app_version", Type: prefs.Label, Text: "Version"},
				},
			},
		},
	}
}
