package cmd

import (
	"context"
	"fmt"

	"doer/internal/logging"
)

// TickCmd marks a priority as done
type TickCmd struct {
	ID   int    `arg:"" help:"Priority id as shown by show (starting at 1)"`
	Date string `help:"Day of the priority" default:"today" short:"D"`
}

// Run executes the tick command
func (t *TickCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing tick command", "id", t.ID, "date", t.Date)

	date, err := resolveDate(t.Date)
	if err != nil {
		return err
	}

	result, err := cli.Container.DayService.Tick(context.Background(), date, t.ID-1)
	if err != nil {
		return err
	}
	if err := checkTick(result, t.ID, date); err != nil {
		return err
	}

	fmt.Printf("Ticked #%d on %s\n", t.ID, date)
	return nil
}

// UntickCmd marks a priority as not done
type UntickCmd struct {
	ID   int    `arg:"" help:"Priority id as shown by show (starting at 1)"`
	Date string `help:"Day of the priority" default:"today" short:"D"`
}

// Run executes the untick command
func (u *UntickCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing untick command", "id", u.ID, "date", u.Date)

	date, err := resolveDate(u.Date)
	if err != nil {
		return err
	}

	result, err := cli.Container.DayService.Untick(context.Background(), date, u.ID-1)
	if err != nil {
		return err
	}
	if err := checkTick(result, u.ID, date); err != nil {
		return err
	}

	fmt.Printf("Unticked #%d on %s\n", u.ID, date)
	return nil
}
