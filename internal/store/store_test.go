package store

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/langtind/prefsheet/internal/prefs"
	"github.com/langtind/prefsheet/internal/testutil"
)

func item(t *testing.T, name string) prefs.Item {
	t.Helper()
	it, ok := prefs.Find(testutil.SampleSections(), name)
	if !ok {
		t.Fatalf("sample item %s missing", name)
	}
	return it
}

func TestOpenMissingFile(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "values.toml"))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Revision() != "" {
		t.Errorf("Revision() = %q, want empty", s.Revision())
	}
	if len(s.Names()) != 0 {
		t.Errorf("Names() = %v, want none", s.Names())
	}
}

func TestOpenInvalidFile(t *testing.T) {
	path := testutil.WriteFile(t, t.TempDir(), "values.toml", "revision = [")
	if _, err := Open(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestGetFallsBackToDefault(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "values.toml"))
	if err != nil {
		t.Fatal(err)
	}

	it := prefs.Item{Name: "theme", Type: prefs.Picker, Default: "dark"}
	if got := s.Get(it); got != "dark" {
		t.Errorf("Get() = %#v, want default", got)
	}
	if got := s.Get(item(t, "username")); got != nil {
		t.Errorf("Get() without default = %#v, want nil", got)
	}
	if s.Saved(it) {
		t.Error("Saved() should be false before Set")
	}
}

func TestSetNormalizes(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "values.toml"))
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		value any
		want  any
	}{
		{"notifications", "yes", true},
		{"notifications", 0, false},
		{"notifications", true, true},
		{"theme", "Dark", "dark"},
		{"theme", "system", "system"},
		{"username", "ada", "ada"},
		{"username", 42, "42"},
	}

	for _, tt := range tests {
		it := item(t, tt.name)
		if err := s.Set(it, tt.value); err != nil {
			t.Fatalf("Set(%s, %#v) error = %v", tt.name, tt.value, err)
		}
		if got := s.Get(it); got != tt.want {
			t.Errorf("Set(%s, %#v) stored %#v, want %#v", tt.name, tt.value, got, tt.want)
		}
	}
}

func TestSetRejects(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "values.toml"))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set(item(t, "version"), "2.0"); !errors.Is(err, prefs.ErrReadOnly) {
		t.Errorf("label Set error = %v, want ErrReadOnly", err)
	}
	if err := s.Set(item(t, "theme"), "purple"); !errors.Is(err, prefs.ErrInvalidValue) {
		t.Errorf("picker Set error = %v, want ErrInvalidValue", err)
	}
	if err := s.Set(item(t, "notifications"), "ture"); !errors.Is(err, prefs.ErrInvalidValue) {
		t.Errorf("checkbox Set error = %v, want ErrInvalidValue", err)
	}
	if s.Revision() != "" {
		t.Error("rejected values should not write the file")
	}
}

func TestSetPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "values.toml")
	s, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set(item(t, "notifications"), true); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(item(t, "theme"), "dark"); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("values file not written: %v", err)
	}
	content := string(data)
	for _, want := range []string{"revision = ", "[values]", "notifications = true", "theme = ", "dark"} {
		if !strings.Contains(content, want) {
			t.Errorf("values file missing %q:\n%s", want, content)
		}
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Error("temporary file should be renamed away")
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	if reopened.Revision() != s.Revision() {
		t.Errorf("revision = %q, want %q", reopened.Revision(), s.Revision())
	}
	if got := reopened.Get(item(t, "theme")); got != "dark" {
		t.Errorf("reopened theme = %#v", got)
	}
	if got := reopened.Names(); len(got) != 2 || got[0] != "notifications" || got[1] != "theme" {
		t.Errorf("Names() = %v", got)
	}
}

func TestSetChangesRevision(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "values.toml"))
	if err != nil {
		t.Fatal(err)
	}

	if err := s.Set(item(t, "username"), "a"); err != nil {
		t.Fatal(err)
	}
	first := s.Revision()
	if err := s.Set(item(t, "username"), "b"); err != nil {
		t.Fatal(err)
	}
	if first == "" || s.Revision() == first {
		t.Errorf("revision should change on every write: %q -> %q", first, s.Revision())
	}
}

func TestReset(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "values.toml"))
	if err != nil {
		t.Fatal(err)
	}
	it := prefs.Item{Name: "theme", Type: prefs.Picker, Default: "light", Values: []prefs.PickerValue{
		{ID: "light", Label: "Light"},
		{ID: "dark", Label: "Dark"},
	}}

	if err := s.Set(it, "dark"); err != nil {
		t.Fatal(err)
	}
	if err := s.Reset(it); err != nil {
		t.Fatalf("Reset() error = %v", err)
	}
	if got := s.Get(it); got != "light" {
		t.Errorf("after Reset Get() = %#v, want default", got)
	}
	if s.Saved(it) {
		t.Error("Saved() should be false after Reset")
	}

	rev := s.Revision()
	if err := s.Reset(it); err != nil {
		t.Fatal(err)
	}
	if s.Revision() != rev {
		t.Error("resetting an unsaved item should not write")
	}
}

func TestReloadDetectsExternalWrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "values.toml")
	a, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	b, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}

	changed, err := a.Reload()
	if err != nil || changed {
		t.Fatalf("Reload() on untouched file = %v, %v", changed, err)
	}

	if err := b.Set(item(t, "theme"), "dark"); err != nil {
		t.Fatal(err)
	}

	changed, err = a.Reload()
	if err != nil {
		t.Fatal(err)
	}
	if !changed {
		t.Error("Reload() should report the external write")
	}
	if got := a.Get(item(t, "theme")); got != "dark" {
		t.Errorf("theme after reload = %#v", got)
	}

	changed, _ = a.Reload()
	if changed {
		t.Error("second Reload() should report no change")
	}

	if err := os.Remove(path); err != nil {
		t.Fatal(err)
	}
	changed, _ = a.Reload()
	if !changed || a.Get(item(t, "theme")) != nil {
		t.Error("removing the file should clear values")
	}
}

func TestAccessorAndChangeHandler(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "values.toml"))
	if err != nil {
		t.Fatal(err)
	}

	var errs []error
	onChange := s.ChangeHandler(func(err error) { errs = append(errs, err) })
	get := s.Accessor()

	onChange(item(t, "notifications"), true)
	if got := get(item(t, "notifications")); got != true {
		t.Errorf("accessor = %#v, want true", got)
	}

	onChange(item(t, "version"), "x")
	if len(errs) != 1 || !errors.Is(errs[0], prefs.ErrReadOnly) {
		t.Errorf("errors = %v, want one ErrReadOnly", errs)
	}

	// nil handler must not panic
	s.ChangeHandler(nil)(item(t, "version"), "x")
}
