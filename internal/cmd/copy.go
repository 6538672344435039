package cmd

import (
	"context"
	"fmt"

	"doer/internal/logging"
)

// CopyCmd copies the priorities of one day onto another
type CopyCmd struct {
	From     string `arg:"" help:"Day to copy from"`
	To       string `arg:"" optional:"" help:"Day to copy to" default:"today"`
	OpenOnly bool   `help:"Leave priorities that are already done behind" short:"o"`
}

// Run executes the copy command
func (c *CopyCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing copy command", "from", c.From, "to", c.To, "openOnly", c.OpenOnly)

	from, err := resolveDate(c.From)
	if err != nil {
		return err
	}
	to, err := resolveDate(c.To)
	if err != nil {
		return err
	}
	if from == to {
		return fmt.Errorf("cannot copy %s onto itself", from)
	}

	day, err := cli.Container.DayService.CopyPriorities(context.Background(), from, to, c.OpenOnly)
	if err != nil {
		return err
	}

	return printDay(cli, to, day, formatTable)
}
