package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"doer/internal/domain"
	"doer/internal/logging"
)

// FocusCmd sets the current focus of today
type FocusCmd struct {
	Target []string `arg:"" help:"Priority id, or the name of what you are working on"`
	Name   bool     `help:"Treat a numeric target as a name" short:"n"`
}

// Run executes the focus command
func (f *FocusCmd) Run(cli *CLI) error {
	target := strings.TrimSpace(strings.Join(f.Target, " "))
	logging.Logger.Debug("Executing focus command", "target", target)

	if target == "" {
		return fmt.Errorf("focus name required")
	}

	ctx := context.Background()
	date := domain.Today()

	if id, err := strconv.Atoi(target); err == nil && !f.Name {
		result, err := cli.Container.DayService.FocusPriority(ctx, date, id-1)
		if err != nil {
			return err
		}
		if err := checkTick(result, id, date); err != nil {
			return err
		}
		fmt.Printf("Focusing on #%d\n", id)
		return nil
	}

	if _, err := cli.Container.DayService.SetFocus(ctx, date, target); err != nil {
		return err
	}
	fmt.Printf("Focusing on %s\n", target)
	return nil
}
