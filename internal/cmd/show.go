package cmd

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"

	"doer/internal/logging"
)

// ShowCmd displays a day
type ShowCmd struct {
	Date   string `arg:"" optional:"" help:"Day to show: today, yesterday, tomorrow, a weekday or YYYY-MM-DD" default:"today"`
	Copy   bool   `help:"Also copy the day to the clipboard (as markdown unless --format json)"`
	Format string `help:"Output format: table, json or markdown" enum:"table,json,markdown" default:"table" short:"f"`
}

// Run executes the show command
func (s *ShowCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing show command", "date", s.Date, "format", s.Format, "copy", s.Copy)

	date, err := resolveDate(s.Date)
	if err != nil {
		return err
	}

	day, err := cli.Container.DayService.Day(context.Background(), date)
	if err != nil {
		return err
	}

	if err := printDay(cli, date, day, s.Format); err != nil {
		return err
	}

	if !s.Copy {
		return nil
	}

	// Table output carries terminal colours, so the clipboard gets markdown
	copyFormat := formatMarkdown
	if s.Format == formatJSON {
		copyFormat = formatJSON
	}
	text, err := renderDay(cli, date, day, copyFormat)
	if err != nil {
		return err
	}
	if err := clipboard.WriteAll(text); err != nil {
		logging.Logger.Warn("Failed to copy to clipboard", "error", err)
		return fmt.Errorf("failed to copy to clipboard: %w", err)
	}

	logging.Logger.Info("Copied day to clipboard", "date", date, "format", copyFormat)
	return nil
}
