package cmd

import (
	"context"
	"errors"
	"fmt"

	"doer/internal/domain"
	"doer/internal/logging"
	"doer/internal/ui"
)

// PlanCmd plans the priorities of a day
type PlanCmd struct {
	Date  string   `arg:"" optional:"" help:"Day to plan" default:"today"`
	Items []string `help:"Add an item without prompting (repeatable, kept in the given order)" short:"i" name:"item"`
}

// Run executes the plan command
func (p *PlanCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing plan command", "date", p.Date, "items", len(p.Items))

	date, err := resolveDate(p.Date)
	if err != nil {
		return err
	}

	ctx := context.Background()
	day, err := cli.Container.DayService.Day(ctx, date)
	if err != nil {
		return err
	}

	var ordered []domain.Priority
	if len(p.Items) > 0 {
		ordered = ui.MergeItems(day.Priorities, p.Items)
	} else {
		ordered, err = ui.NewPlanForm(date).Run(day.Priorities)
		if errors.Is(err, ui.ErrPlanAborted) {
			fmt.Println("Planning aborted, nothing saved")
			return nil
		}
		if err != nil {
			return err
		}
	}

	if len(ordered) > domain.MaxPriorities {
		warn("only the first %d priorities are kept", domain.MaxPriorities)
	}

	day, err = cli.Container.DayService.PlanPriorities(ctx, date, ordered)
	if err != nil {
		return err
	}

	return printDay(cli, date, day, formatTable)
}
