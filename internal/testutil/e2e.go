package testutil

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// E2EHarness runs the prefsheet binary against an isolated home directory
// holding a config file, a schema and a values file.
type E2EHarness struct {
	t          *testing.T
	binaryPath string
	home       string
	env        []string

	// ConfigDir holds config.toml, schema.yaml and values.toml.
	ConfigDir string
}

// CommandResult holds the result of running a prefsheet command.
type CommandResult struct {
	Stdout   string
	Stderr   string
	ExitCode int
	Err      error
}

// NewE2EHarness builds the binary and seeds a config directory with
// SampleSchemaYAML.
func NewE2EHarness(t *testing.T) *E2EHarness {
	t.Helper()

	binaryPath := buildBinary(t)
	home := t.TempDir()
	configDir := filepath.Join(home, "prefsheet")

	WriteFile(t, configDir, "schema.yaml", SampleSchemaYAML)
	WriteFile(t, configDir, "config.toml", "schema = \"schema.yaml\"\nvalues = \"values.toml\"\n\n[log]\nlevel = \"debug\"\ndir = \"logs\"\n")

	h := &E2EHarness{
		t:          t,
		binaryPath: binaryPath,
		home:       home,
		ConfigDir:  configDir,
	}
	for _, e := range os.Environ() {
		if strings.HasPrefix(e, "PREFSHEET_") {
			continue
		}
		h.env = append(h.env, e)
	}
	h.SetEnv("HOME", home)
	h.SetEnv("XDG_CONFIG_HOME", home)
	h.SetEnv("XDG_STATE_HOME", filepath.Join(home, "state"))
	h.SetEnv("PREFSHEET_CONFIG", filepath.Join(configDir, "config.toml"))
	return h
}

// SetEnv adds or updates an environment variable for subsequent commands.
func (h *E2EHarness) SetEnv(key, value string) {
	for i, e := range h.env {
		if strings.HasPrefix(e, key+"=") {
			h.env[i] = key + "=" + value
			return
		}
	}
	h.env = append(h.env, key+"="+value)
}

// Run executes a prefsheet command and returns the result.
func (h *E2EHarness) Run(args ...string) *CommandResult {
	h.t.Helper()

	cmd := exec.Command(h.binaryPath, args...)
	cmd.Dir = h.home
	cmd.Env = h.env

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	exitCode := 0
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
	}

	return &CommandResult{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode,
		Err:      err,
	}
}

// Get runs `prefsheet get name`.
func (h *E2EHarness) Get(name string) *CommandResult {
	return h.Run("get", name)
}

// Set runs `prefsheet set name value`.
func (h *E2EHarness) Set(name, value string) *CommandResult {
	return h.Run("set", name, value)
}

// WriteConfigFile replaces a file in the config directory.
func (h *E2EHarness) WriteConfigFile(name, content string) string {
	h.t.Helper()
	return WriteFile(h.t, h.ConfigDir, name, content)
}

// ReadConfigFile reads a file from the config directory.
func (h *E2EHarness) ReadConfigFile(name string) (string, error) {
	content, err := os.ReadFile(filepath.Join(h.ConfigDir, name))
	if err != nil {
		return "", err
	}
	return string(content), nil
}

// FileExists checks if a file exists in the config directory.
func (h *E2EHarness) FileExists(name string) bool {
	_, err := os.Stat(filepath.Join(h.ConfigDir, name))
	return err == nil
}

// Assertions

// AssertSuccess asserts that the command succeeded.
func (r *CommandResult) AssertSuccess(t *testing.T) {
	t.Helper()
	if r.Err != nil {
		t.Fatalf("expected success, got error: %v\nstdout: %s\nstderr: %s", r.Err, r.Stdout, r.Stderr)
	}
	if r.ExitCode != 0 {
		t.Fatalf("expected exit code 0, got %d\nstdout: %s\nstderr: %s", r.ExitCode, r.Stdout, r.Stderr)
	}
}

// AssertFailed asserts that the command failed.
func (r *CommandResult) AssertFailed(t *testing.T) {
	t.Helper()
	if r.Err == nil && r.ExitCode == 0 {
		t.Fatalf("expected failure, but command succeeded\nstdout: %s", r.Stdout)
	}
}

// AssertStdoutContains asserts that stdout contains a substring.
func (r *CommandResult) AssertStdoutContains(t *testing.T, substr string) {
	t.Helper()
	if !strings.Contains(r.Stdout, substr) {
		t.Fatalf("expected stdout to contain %q, got:\n%s", substr, r.Stdout)
	}
}

// AssertStdoutEquals asserts the exact stdout.
func (r *CommandResult) AssertStdoutEquals(t *testing.T, want string) {
	t.Helper()
	if r.Stdout != want {
		t.Fatalf("expected stdout %q, got %q\nstderr: %s", want, r.Stdout, r.Stderr)
	}
}

// AssertStderrContains asserts that stderr contains a substring.
func (r *CommandResult) AssertStderrContains(t *testing.T, substr string) {
	t.Helper()
	if !strings.Contains(r.Stderr, substr) {
		t.Fatalf("expected stderr to contain %q, got:\n%s", substr, r.Stderr)
	}
}

// cachedBinaryPath holds the binary built once per test run.
var cachedBinaryPath string

func buildBinary(t *testing.T) string {
	t.Helper()

	if cachedBinaryPath != "" {
		if _, err := os.Stat(cachedBinaryPath); err == nil {
			return cachedBinaryPath
		}
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("failed to get working directory: %v", err)
	}
	projectRoot := findProjectRoot(wd)
	if projectRoot == "" {
		t.Fatalf("could not find project root (go.mod)")
	}

	tmpDir, err := os.MkdirTemp("", "prefsheet-e2e-bin-*")
	if err != nil {
		t.Fatalf("failed to create temp dir for binary: %v", err)
	}
	binaryPath := filepath.Join(tmpDir, "prefsheet")

	cmd := exec.Command("go", "build", "-o", binaryPath, ".")
	cmd.Dir = projectRoot
	output, err := cmd.CombinedOutput()
	if err != nil {
		os.RemoveAll(tmpDir)
		t.Fatalf("failed to build prefsheet binary: %v\noutput: %s", err, output)
	}

	cachedBinaryPath = binaryPath
	return binaryPath
}

func findProjectRoot(start string) string {
	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}
