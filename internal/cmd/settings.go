package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"doer/internal/config"
	"doer/internal/logging"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Meta SettingsMetaCmd `cmd:"meta" help:"Show settings file location and available options" default:"1"`
}

// SettingsMetaCmd displays settings metadata
type SettingsMetaCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the meta command
func (s *SettingsMetaCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing settings meta command", "format", s.Format)

	settingsFile := config.GetSettingsPath()
	example := config.GetSettingsExample()

	if s.Format == "json" {
		output := map[string]any{
			"data_dir":      config.GetDataPath(cli.settings),
			"format":        example,
			"settings_file": settingsFile,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Printf("Settings file: %s\n", settingsFile)
	fmt.Printf("Data directory: %s\n\n", config.GetDataPath(cli.settings))
	fmt.Println("Example config.toml:")
	fmt.Println()

	if err := toml.NewEncoder(os.Stdout).Encode(example); err != nil {
		return fmt.Errorf("failed to encode example: %w", err)
	}

	fmt.Println()
	fmt.Println("Create or edit this file to configure doer.")
	fmt.Println("All settings are optional and have sensible defaults.")

	return nil
}
