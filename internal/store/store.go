// Package store persists preference values in a TOML file and adapts them
// to the accessor and change callbacks the ui component expects.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/google/uuid"
	"github.com/pelletier/go-toml/v2"

	"github.com/langtind/prefsheet/internal/logging"
	"github.com/langtind/prefsheet/internal/prefs"
)

const fileHeader = "# prefsheet values\n# Written by prefsheet; edits are picked up on reload.\n\n"

// document is the on-disk layout of the values file.
type document struct {
	Revision string         `toml:"revision"`
	Values   map[string]any `toml:"values"`
}

// Store holds the saved values for one values file.
type Store struct {
	mu       sync.RWMutex
	path     string
	revision string
	values   map[string]any
}

// Open loads the values file at path. A missing file yields an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]any)}
	doc, err := read(path)
	if err != nil {
		return nil, err
	}
	if doc != nil {
		s.revision = doc.Revision
		s.values = doc.Values
	}
	return s, nil
}

func read(path string) (*document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read values: %w", err)
	}

	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse values %s: %w", path, err)
	}
	if doc.Values == nil {
		doc.Values = make(map[string]any)
	}
	return &doc, nil
}

// Path returns the values file path.
func (s *Store) Path() string {
	return s.path
}

// Revision returns the identifier of the last write, empty before the first.
func (s *Store) Revision() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.revision
}

// Get returns the saved value for item, else its default, else nil.
func (s *Store) Get(item prefs.Item) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if v, ok := s.values[item.Name]; ok {
		return v
	}
	return item.Default
}

// Saved reports whether item has an explicitly saved value.
func (s *Store) Saved(item prefs.Item) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.values[item.Name]
	return ok
}

// Names returns the names with saved values, sorted.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, 0, len(s.values))
	for name := range s.values {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Set normalizes value for item and saves it.
func (s *Store) Set(item prefs.Item, value any) error {
	v, err := normalize(item, value)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[item.Name]
	s.values[item.Name] = v
	if err := s.save(); err != nil {
		if had {
			s.values[item.Name] = prev
		} else {
			delete(s.values, item.Name)
		}
		return err
	}
	logging.Info("store: %s = %s", item.Name, prefs.Stringify(v))
	return nil
}

// Reset removes the saved value for item so Get falls back to its default.
func (s *Store) Reset(item prefs.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	prev, had := s.values[item.Name]
	if !had {
		return nil
	}
	delete(s.values, item.Name)
	if err := s.save(); err != nil {
		s.values[item.Name] = prev
		return err
	}
	logging.Info("store: reset %s", item.Name)
	return nil
}

// Reload re-reads the file and reports whether another writer changed it.
func (s *Store) Reload() (bool, error) {
	doc, err := read(s.path)
	if err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if doc == nil {
		changed := s.revision != "" || len(s.values) > 0
		s.revision = ""
		s.values = make(map[string]any)
		return changed, nil
	}
	if doc.Revision == s.revision {
		return false, nil
	}
	logging.Debug("store: revision %s -> %s", s.revision, doc.Revision)
	s.revision = doc.Revision
	s.values = doc.Values
	return true, nil
}

// Accessor returns a prefs.ValueFunc reading from the store.
func (s *Store) Accessor() prefs.ValueFunc {
	return s.Get
}

// ChangeHandler returns a prefs.ChangeFunc that saves each change. Save
// failures are passed to onErr when it is non-nil.
func (s *Store) ChangeHandler(onErr func(error)) prefs.ChangeFunc {
	return func(item prefs.Item, value any) {
		if err := s.Set(item, value); err != nil {
			logging.Error("store: save %s: %v", item.Name, err)
			if onErr != nil {
				onErr(err)
			}
		}
	}
}

// save writes the current values under a fresh revision. Callers hold mu.
func (s *Store) save() error {
	doc := document{
		Revision: uuid.NewString(),
		Values:   s.values,
	}
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal values: %w", err)
	}
	data = append([]byte(fileHeader), data...)

	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return fmt.Errorf("failed to create values directory: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write values: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("failed to replace values: %w", err)
	}
	s.revision = doc.Revision
	return nil
}

// normalize converts value to the type stored for item.
func normalize(item prefs.Item, value any) (any, error) {
	switch item.Type {
	case prefs.Label:
		return nil, fmt.Errorf("%w: %s", prefs.ErrReadOnly, item.Name)
	case prefs.Checkbox:
		if raw, ok := value.(string); ok {
			return item.Normalize(raw)
		}
		return prefs.CoerceBool(value), nil
	case prefs.Picker:
		return item.Normalize(prefs.Stringify(value))
	default:
		return prefs.Stringify(value), nil
	}
}
