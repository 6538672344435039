package config

import (
	"os"
	"path/filepath"
)

// DefaultContext is used when no context is configured anywhere
const DefaultContext = "default"

// GetDoerHome returns DOER_HOME or ~/.doer default
func GetDoerHome() string {
	doerHome := os.Getenv("DOER_HOME")
	if doerHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".doer"
		}
		return filepath.Join(homeDir, ".doer")
	}
	return ExpandPath(doerHome)
}

// GetSettingsPath returns $DOER_HOME/config.toml
func GetSettingsPath() string {
	return filepath.Join(GetDoerHome(), "config.toml")
}

// GetDataPath returns the store root: data_dir from settings, or $DOER_HOME/data
func GetDataPath(settings *Settings) string {
	if settings != nil && settings.DataDir != "" {
		return ExpandPath(settings.DataDir)
	}
	return filepath.Join(GetDoerHome(), "data")
}

// ResolveContext picks the active context. flag already carries DOER_CONTEXT
// when the CLI parser has applied the environment.
func ResolveContext(flag string, settings *Settings) string {
	if flag != "" {
		return flag
	}
	if settings != nil && settings.Context != "" {
		return settings.Context
	}
	return DefaultContext
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
