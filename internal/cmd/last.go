package cmd

import (
	"context"
	"errors"
	"fmt"

	"doer/internal/domain"
	"doer/internal/logging"
)

// LastCmd displays the most recent planned day up to today
type LastCmd struct {
	Format string `help:"Output format: table, json or markdown" enum:"table,json,markdown" default:"table" short:"f"`
}

// Run executes the last command
func (l *LastCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing last command")

	ctx := context.Background()
	date, err := cli.Container.DayService.LastDate(ctx)
	if errors.Is(err, domain.ErrNoData) {
		fmt.Println("No data to show")
		return nil
	}
	if err != nil {
		return err
	}

	day, err := cli.Container.DayService.Day(ctx, date)
	if err != nil {
		return err
	}

	return printDay(cli, date, day, l.Format)
}
