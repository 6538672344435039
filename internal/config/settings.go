package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"doer/internal/logging"
)

// Settings represents the structure of $DOER_HOME/config.toml
type Settings struct {
	Context     string `toml:"context,omitempty"`
	DataDir     string `toml:"data_dir,omitempty"`
	Debug       *bool  `toml:"debug,omitempty"`
	MaxLogFiles *int   `toml:"max_log_files,omitempty"`
}

// DebugEnabled reports whether settings turn debug logging on
func (s *Settings) DebugEnabled() bool {
	return s != nil && s.Debug != nil && *s.Debug
}

// LogFileLimit returns max_log_files, or 0 when unset
func (s *Settings) LogFileLimit() int {
	if s == nil || s.MaxLogFiles == nil {
		return 0
	}
	return *s.MaxLogFiles
}

// LoadSettings loads settings from $DOER_HOME/config.toml.
// Returns empty Settings if file doesn't exist (not an error)
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	md, err := toml.Decode(string(data), &settings)
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", filepath.Base(path), err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		logging.Logger.Warn("Unknown settings ignored", "path", path, "keys", strings.Join(keys, ","))
	}

	return &settings, nil
}

// SaveSettings saves settings to $DOER_HOME/config.toml
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(settings); err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	logging.Logger.Debug("Saved settings", "path", path)
	return nil
}

// FileStore reads and writes the settings file under $DOER_HOME
type FileStore struct{}

func (FileStore) Load() (*Settings, error) {
	return LoadSettings()
}

func (FileStore) Save(settings *Settings) error {
	return SaveSettings(settings)
}
