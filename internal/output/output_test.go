package output

import (
	"os"
	"strings"
	"testing"

	"github.com/langtind/prefsheet/internal/testutil"
)

func TestSymbols(t *testing.T) {
	symbols := map[string]string{
		"SymbolSuccess": SymbolSuccess,
		"SymbolError":   SymbolError,
		"SymbolWarning": SymbolWarning,
		"SymbolHint":    SymbolHint,
		"SymbolInfo":    SymbolInfo,
		"SymbolSection": SymbolSection,
		"SymbolOn":      SymbolOn,
		"SymbolOff":     SymbolOff,
	}

	for name, symbol := range symbols {
		if symbol == "" {
			t.Errorf("%s should not be empty", name)
		}
	}
}

func TestMessages(t *testing.T) {
	tests := []struct {
		name   string
		stderr bool
		fn     func()
		want   string
	}{
		{"Success", false, func() { Success("saved") }, "saved"},
		{"Successf", false, func() { Successf("formatted %s %d", "test", 42) }, "formatted test 42"},
		{"Warning", false, func() { Warning("careful") }, "careful"},
		{"Warningf", false, func() { Warningf("warning: %s", "be careful") }, "warning: be careful"},
		{"Hint", false, func() { Hint("try help") }, "try help"},
		{"Hintf", false, func() { Hintf("run %s", "prefsheet list") }, "run prefsheet list"},
		{"Info", false, func() { Info("general info") }, "general info"},
		{"Infof", false, func() { Infof("count: %d", 10) }, "count: 10"},
		{"Header", false, func() { Header("Section Title") }, "Section Title"},
		{"KeyValue", false, func() { KeyValue("Schema", "a.yaml") }, "Schema: a.yaml"},
		{"Error", true, func() { Error("broken") }, "broken"},
		{"Errorf", true, func() { Errorf("error: %s", "something went wrong") }, "error: something went wrong"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out string
			if tt.stderr {
				out = testutil.CaptureStderr(t, tt.fn)
			} else {
				out = testutil.CaptureStdout(t, tt.fn)
			}
			if !strings.Contains(out, tt.want) {
				t.Errorf("%s() output should contain %q, got: %s", tt.name, tt.want, out)
			}
		})
	}
}

func TestTextStyles(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
	}{
		{"Bold", Bold},
		{"Dim", Dim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn("test"); !strings.Contains(got, "test") {
				t.Errorf("%s() = %q, should contain input", tt.name, got)
			}
		})
	}
}

func TestPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		t.Skip("no home directory")
	}
	got := Path(home + "/.config/prefsheet")
	if !strings.Contains(got, "~/.config/prefsheet") {
		t.Errorf("Path() = %q, want home shortened to ~", got)
	}
	if got := Path("/etc/prefsheet"); !strings.Contains(got, "/etc/prefsheet") {
		t.Errorf("Path() = %q", got)
	}
}

func TestToggle(t *testing.T) {
	if got := Toggle(true); !strings.Contains(got, "on") {
		t.Errorf("Toggle(true) = %q", got)
	}
	if got := Toggle(false); !strings.Contains(got, "off") {
		t.Errorf("Toggle(false) = %q", got)
	}
}

func TestPrintPreferenceList(t *testing.T) {
	sections := []PreferenceSection{
		{
			Title: "Account",
			Rows: []PreferenceRow{
				{Name: "username", Text: "User name", Value: "ada"},
				{Name: "sync", Text: "Cloud sync", Value: "off", Disabled: true},
			},
		},
		{Title: "Empty"},
		{
			Title: "Display",
			Rows: []PreferenceRow{
				{Name: "theme", Text: "Theme", Value: "Follow system", Default: true},
			},
		},
	}

	out := testutil.CaptureStdout(t, func() {
		PrintPreferenceList("Settings", sections)
	})

	for _, want := range []string{"Settings", "Account", "username", "User name", "ada", "read-only", "Display", "Follow system", "(default)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Empty") {
		t.Errorf("sections without rows should be skipped, got:\n%s", out)
	}

	// name column is padded to the longest name
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, "theme") && !strings.Contains(line, "theme     ") {
			t.Errorf("theme row should be padded, got %q", line)
		}
	}
}

func TestPreferenceChangedAndReset(t *testing.T) {
	out := testutil.CaptureStdout(t, func() {
		PreferenceChanged("theme", "dark")
		PreferenceReset("theme", "system")
		PreferenceReset("username", "")
	})

	for _, want := range []string{"theme set to dark", "theme reset", "Default: system", "username reset"} {
		if !strings.Contains(out, want) {
			t.Errorf("output should contain %q, got:\n%s", want, out)
		}
	}
	if strings.Count(out, "Default:") != 1 {
		t.Errorf("empty default should not print a Default line, got:\n%s", out)
	}
}
