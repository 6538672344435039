package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"doer/internal/config"
	"doer/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	ContextName string           `name:"context" help:"Context to work in (overrides the configured context)" short:"c" env:"DOER_CONTEXT"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = settings or 100, negative = unlimited)"`

	Show     ShowCmd     `cmd:"" help:"Show the priorities and focus log of a day (default)" default:"withargs"`
	Plan     PlanCmd     `cmd:"" help:"Plan the priorities of a day"`
	Copy     CopyCmd     `cmd:"" help:"Copy priorities from one day to another"`
	Last     LastCmd     `cmd:"" help:"Show the most recent planned day"`
	Tick     TickCmd     `cmd:"" help:"Mark a priority as done"`
	Untick   UntickCmd   `cmd:"" help:"Mark a priority as not done"`
	Focus    FocusCmd    `cmd:"" help:"Set what you are working on, by name or priority id"`
	Break    BreakCmd    `cmd:"" help:"Start or end a break in the current focus"`
	End      EndCmd      `cmd:"" help:"Mark the end of the working day"`
	Note     NoteCmd     `cmd:"" help:"Add a note to a day"`
	Context  ContextCmd  `cmd:"" help:"Show, list or switch contexts"`
	Settings SettingsCmd `cmd:"" help:"Show the settings file location and options"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	// Precedence: CLI flags > env vars > config.toml > defaults
	if c.settings != nil {
		if c.MaxLogFiles == 0 {
			if _, hasEnv := os.LookupEnv("DOER_MAX_LOG_FILES"); !hasEnv {
				c.MaxLogFiles = c.settings.LogFileLimit()
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv("DOER_DEBUG"); !hasEnv {
				c.Debug = c.settings.DebugEnabled()
			}
		}
	}

	_, err := logging.Initialize(logging.Options{
		Debug:       c.Debug,
		DebugFile:   c.DebugFile,
		MaxLogFiles: c.MaxLogFiles,
	})
	if err != nil {
		return err
	}

	contextName := config.ResolveContext(c.ContextName, c.settings)
	logging.Logger.Debug("Resolved context", "context", contextName, "flag", c.ContextName)

	// Container is created after logging so adapters log to the right place
	container, err := NewContainer(c.settings, contextName)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
