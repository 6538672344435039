package cmd

import (
	"context"
	"fmt"

	"doer/internal/logging"
)

// EndCmd records the end of a working day
type EndCmd struct {
	Date string `arg:"" optional:"" help:"Day to end" default:"today"`
}

// Run executes the end command
func (e *EndCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing end command", "date", e.Date)

	date, err := resolveDate(e.Date)
	if err != nil {
		return err
	}

	day, err := cli.Container.DayService.EndDay(context.Background(), date)
	if err != nil {
		return err
	}

	fmt.Printf("Day %s ended at %s\n", date, day.EndTime.Short())
	return nil
}
