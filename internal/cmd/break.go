package cmd

import (
	"context"
	"fmt"

	"doer/internal/domain"
	"doer/internal/logging"
)

// BreakCmd pauses and resumes the current focus
type BreakCmd struct {
	Start BreakStartCmd `cmd:"" help:"Start a break" default:"1"`
	End   BreakEndCmd   `cmd:"" help:"End the current break"`
}

// BreakStartCmd starts a break
type BreakStartCmd struct{}

// Run executes the break start command
func (b *BreakStartCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing break start command")

	day, err := cli.Container.DayService.StartBreak(context.Background(), domain.Today())
	if err != nil {
		return err
	}

	fmt.Printf("Break from %s started\n", day.Focus().Name)
	return nil
}

// BreakEndCmd ends the current break
type BreakEndCmd struct{}

// Run executes the break end command
func (b *BreakEndCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing break end command")

	day, err := cli.Container.DayService.EndBreak(context.Background(), domain.Today())
	if err != nil {
		return err
	}

	fmt.Printf("Back to %s\n", day.Focus().Name)
	return nil
}
