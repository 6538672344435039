package cmd

import (
	"context"
	"fmt"
	"os"

	"doer/internal/domain"
	"doer/internal/logging"
	"doer/internal/services"
	"doer/internal/ui"
)

// ContextCmd manages contexts
type ContextCmd struct {
	Show    ContextShowCmd    `cmd:"" help:"Show the context in use" default:"1"`
	List    ContextListCmd    `cmd:"" aliases:"ls" help:"List all contexts"`
	Set     ContextSetCmd     `cmd:"" help:"Make a context the default"`
	Merge   ContextMergeCmd   `cmd:"" help:"Copy every day of one context into another"`
	Upgrade ContextUpgradeCmd `cmd:"" help:"Rewrite a context's files in the current format"`
}

// ContextShowCmd prints the context in use
type ContextShowCmd struct{}

// Run executes the context show command
func (c *ContextShowCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing context show command")

	fmt.Println(cli.Container.ContextService.Current())
	return nil
}

// ContextListCmd lists contexts
type ContextListCmd struct {
	Summary bool `help:"Also show the latest planned day of each context" short:"s"`
}

// Run executes the context list command
func (c *ContextListCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing context list command", "summary", c.Summary)

	ctx := context.Background()
	service := cli.Container.ContextService

	if c.Summary {
		summaries, err := service.Summaries(ctx, domain.Today())
		if err != nil {
			return err
		}
		return ui.WriteContextSummaries(os.Stdout, summaries)
	}

	names, err := service.List(ctx)
	if err != nil {
		return err
	}
	for _, name := range names {
		marker := " "
		if name == service.Current() {
			marker = "*"
		}
		fmt.Printf("%s %s\n", marker, name)
	}
	return nil
}

// ContextSetCmd switches the default context
type ContextSetCmd struct {
	Name string `arg:"" help:"Context name"`
}

// Run executes the context set command
func (c *ContextSetCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing context set command", "name", c.Name)

	if err := cli.Container.ContextService.Set(context.Background(), c.Name); err != nil {
		return err
	}

	fmt.Printf("Default context is now '%s'\n", c.Name)
	return nil
}

// ContextMergeCmd copies the days of one context into another
type ContextMergeCmd struct {
	From      string `arg:"" help:"Context to copy days from"`
	To        string `arg:"" help:"Context to copy days into"`
	Overwrite bool   `help:"Replace days already planned in the destination"`
}

// Run executes the context merge command
func (c *ContextMergeCmd) Run(cli *CLI) error {
	logging.Logger.Debug("Executing context merge command", "from", c.From, "to", c.To, "overwrite", c.Overwrite)

	result, err := cli.Container.MigrationService.MergeContexts(context.Background(), services.MergeContextsParams{
		Dest:      c.To,
		Overwrite: c.Overwrite,
		Source:    c.From,
	})
	if err != nil {
		return err
	}

	fmt.Printf("Copied %d days from '%s' to '%s'\n", result.CopiedDays, c.From, c.To)
	if result.SkippedDays > 0 {
		fmt.Printf("Kept %d days already planned in '%s' (use --overwrite to replace them)\n", result.SkippedDays, c.To)
	}
	return nil
}

// ContextUpgradeCmd rewrites every year file of a context
type ContextUpgradeCmd struct {
	Name string `arg:"" optional:"" help:"Context to upgrade (defaults to the context in use)"`
}

// Run executes the context upgrade command
func (c *ContextUpgradeCmd) Run(cli *CLI) error {
	name := c.Name
	if name == "" {
		name = cli.Container.ContextService.Current()
	}
	logging.Logger.Debug("Executing context upgrade command", "name", name)

	result, err := cli.Container.MigrationService.UpgradeContext(context.Background(), name)
	if err != nil {
		return err
	}

	fmt.Printf("Upgraded %d year files in '%s'\n", len(result.Years), name)
	return nil
}
