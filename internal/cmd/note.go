package cmd

import (
	"context"
	"fmt"
	"strings"

	"doer/internal/logging"
)

// NoteCmd adds a free-form note to a day
type NoteCmd struct {
	Text []string `arg:"" help:"Note text"`
	Date string   `help:"Day to add the note to" default:"today" short:"D"`
}

// Run executes the note command
func (n *NoteCmd) Run(cli *CLI) error {
	text := strings.TrimSpace(strings.Join(n.Text, " "))
	logging.Logger.Debug("Executing note command", "date", n.Date, "length", len(text))

	if text == "" {
		return fmt.Errorf("note text required")
	}

	date, err := resolveDate(n.Date)
	if err != nil {
		return err
	}

	day, err := cli.Container.DayService.AddNote(context.Background(), date, text)
	if err != nil {
		return err
	}

	fmt.Printf("Note %d added to %s\n", len(day.Notes), date)
	return nil
}
