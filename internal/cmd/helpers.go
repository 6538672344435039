package cmd

import (
	"fmt"
	"os"

	"doer/internal/dates"
	"doer/internal/domain"
	"doer/internal/ui"
)

// resolveDate turns a command-line date word into a date relative to today
func resolveDate(s string) (domain.Date, error) {
	date, err := dates.Parse(s, domain.Today())
	if err != nil {
		return domain.Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return date, nil
}

// Output formats accepted by --format
const (
	formatJSON     = "json"
	formatMarkdown = "markdown"
	formatTable    = "table"
)

// renderDay formats a day for stdout
func renderDay(cli *CLI, date domain.Date, day domain.Day, format string) (string, error) {
	contextName := cli.Container.DayService.Context()

	switch format {
	case formatJSON:
		data, err := ui.RenderDayJSON(date, contextName, day)
		if err != nil {
			return "", err
		}
		return string(data) + "\n", nil
	case formatMarkdown:
		return ui.RenderDayMarkdown(date, contextName, day), nil
	default:
		return ui.RenderDay(date, contextName, day), nil
	}
}

// printDay renders a day on stdout
func printDay(cli *CLI, date domain.Date, day domain.Day, format string) error {
	out, err := renderDay(cli, date, day, format)
	if err != nil {
		return err
	}
	fmt.Print(out)
	return nil
}

// checkTick turns an out-of-range tick result into a user-facing error.
// Ids are 1-based on the command line.
func checkTick(result domain.TickResult, id int, date domain.Date) error {
	if result.Applied {
		return nil
	}
	if result.MaxIndex < 0 {
		return fmt.Errorf("no priorities planned for %s", date)
	}
	return fmt.Errorf("id %d invalid, maximum is %d", id, result.MaxIndex+1)
}

func warn(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Warning: "+format+"\n", args...)
}
