package harness

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

// TestEnvironment provides an isolated test environment with its own DOER_HOME.
type TestEnvironment struct {
	DoerHome string
	extraEnv map[string]string
	tb       testing.TB
}

// NewTestEnvironment creates an isolated test environment with a temp DOER_HOME.
// The temp directory is automatically cleaned up when the test completes.
func NewTestEnvironment(tb testing.TB) *TestEnvironment {
	tb.Helper()

	return &TestEnvironment{
		DoerHome: tb.TempDir(),
		extraEnv: make(map[string]string),
		tb:       tb,
	}
}

// Environ returns environment variables configured for test isolation.
// It drops every inherited DOER_* variable and points DOER_HOME at the
// temp directory.
func (e *TestEnvironment) Environ() []string {
	env := make([]string, 0, len(os.Environ())+len(e.extraEnv)+1)

	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, "DOER_") {
			continue
		}
		if _, overridden := e.extraEnv[key]; overridden {
			continue
		}
		env = append(env, kv)
	}

	env = append(env, "DOER_HOME="+e.DoerHome)
	for k, v := range e.extraEnv {
		env = append(env, k+"="+v)
	}

	return env
}

// SetEnv sets an additional environment variable for this test environment.
func (e *TestEnvironment) SetEnv(key, value string) {
	e.extraEnv[key] = value
}

// YearPath returns where the data file of a context and year lives.
func (e *TestEnvironment) YearPath(contextName string, year int) string {
	return filepath.Join(e.DoerHome, "data", contextName, strconv.Itoa(year)+".json")
}

// WriteYearFile stores raw year data, creating the context directory.
func (e *TestEnvironment) WriteYearFile(contextName string, year int, data string) {
	e.tb.Helper()

	path := e.YearPath(contextName, year)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		e.tb.Fatalf("Failed to create context directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		e.tb.Fatalf("Failed to write year file: %v", err)
	}
}

// ReadYearFile returns the raw data file of a context and year.
func (e *TestEnvironment) ReadYearFile(contextName string, year int) string {
	e.tb.Helper()

	data, err := os.ReadFile(e.YearPath(contextName, year))
	if err != nil {
		e.tb.Fatalf("Failed to read year file: %v", err)
	}
	return string(data)
}

// WriteSettings writes $DOER_HOME/config.toml.
func (e *TestEnvironment) WriteSettings(content string) {
	e.tb.Helper()

	if err := os.WriteFile(filepath.Join(e.DoerHome, "config.toml"), []byte(content), 0644); err != nil {
		e.tb.Fatalf("Failed to write settings: %v", err)
	}
}
