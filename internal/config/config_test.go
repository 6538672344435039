package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupDoerHome(t *testing.T) string {
	home := t.TempDir()
	t.Setenv("DOER_HOME", home)
	return home
}

func TestGetDoerHome(t *testing.T) {
	home := setupDoerHome(t)

	assert.Equal(t, home, GetDoerHome())
	assert.Equal(t, filepath.Join(home, "config.toml"), GetSettingsPath())
}

func TestGetDoerHome_Default(t *testing.T) {
	t.Setenv("DOER_HOME", "")
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, ".doer"), GetDoerHome())
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, filepath.Join(homeDir, "data"), ExpandPath("~/data"))
	assert.Equal(t, "/abs/path", ExpandPath("/abs/path"))
	assert.Equal(t, "", ExpandPath(""))
}

func TestGetDataPath(t *testing.T) {
	home := setupDoerHome(t)

	assert.Equal(t, filepath.Join(home, "data"), GetDataPath(nil))
	assert.Equal(t, filepath.Join(home, "data"), GetDataPath(&Settings{}))
	assert.Equal(t, "/srv/doer", GetDataPath(&Settings{DataDir: "/srv/doer"}))
}

func TestResolveContext(t *testing.T) {
	tests := []struct {
		name     string
		flag     string
		settings *Settings
		expected string
	}{
		{"default", "", nil, DefaultContext},
		{"settings", "", &Settings{Context: "work"}, "work"},
		{"flag wins", "personal", &Settings{Context: "work"}, "personal"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ResolveContext(tt.flag, tt.settings))
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	setupDoerHome(t)

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, &Settings{}, settings)
	assert.False(t, settings.DebugEnabled())
	assert.Equal(t, 0, settings.LogFileLimit())
}

func TestLoadSettings(t *testing.T) {
	home := setupDoerHome(t)
	content := `
context = "work"
data_dir = "/tmp/doer-data"
debug = true
max_log_files = 5
unknown_key = "ignored"
`
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte(content), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "work", settings.Context)
	assert.Equal(t, "/tmp/doer-data", settings.DataDir)
	assert.True(t, settings.DebugEnabled())
	assert.Equal(t, 5, settings.LogFileLimit())
}

func TestLoadSettings_Invalid(t *testing.T) {
	home := setupDoerHome(t)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.toml"), []byte("context = "), 0644))

	_, err := LoadSettings()

	assert.Error(t, err)
}

func TestSaveSettings_RoundTrip(t *testing.T) {
	setupDoerHome(t)
	debug := true
	settings := &Settings{Context: "personal", Debug: &debug}

	require.NoError(t, SaveSettings(settings))

	data, err := os.ReadFile(GetSettingsPath())
	require.NoError(t, err)
	assert.Contains(t, string(data), `context = "personal"`)
	assert.NotContains(t, string(data), "data_dir", "empty fields are omitted")

	loaded, err := LoadSettings()
	require.NoError(t, err)
	assert.Equal(t, settings, loaded)
}

func TestListContexts(t *testing.T) {
	root := t.TempDir()
	for _, dir := range []string{"work", "personal", ".hidden"} {
		require.NoError(t, os.Mkdir(filepath.Join(root, dir), 0755))
	}
	require.NoError(t, os.WriteFile(filepath.Join(root, "stray.json"), []byte("{}"), 0644))

	contexts, err := ListContexts(root)

	require.NoError(t, err)
	assert.Equal(t, []string{"personal", "work"}, contexts)
}

func TestListContexts_MissingRoot(t *testing.T) {
	contexts, err := ListContexts(filepath.Join(t.TempDir(), "nope"))

	require.NoError(t, err)
	assert.Empty(t, contexts)
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Equal(t, "work", example["context"])
	assert.Equal(t, "~/.doer/data", example["data_dir"])
	assert.Equal(t, false, example["debug"])
	assert.Equal(t, 100, example["max_log_files"])
	assert.Len(t, example, 4)
}
