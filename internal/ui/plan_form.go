package ui

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"

	"doer/internal/domain"
	"doer/internal/logging"
)

// ErrPlanAborted is returned when the user cancels a planning prompt
var ErrPlanAborted = errors.New("planning aborted")

// PlanForm asks for a day's priorities and their order
type PlanForm struct {
	accessible bool
	date       domain.Date
	input      io.Reader
	output     io.Writer
}

// NewPlanForm creates a plan form on stdin and stderr. Plain line prompts are
// used when stdin is not a terminal.
func NewPlanForm(date domain.Date) *PlanForm {
	return &PlanForm{
		accessible: !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()),
		date:       date,
		input:      os.Stdin,
		output:     os.Stderr,
	}
}

// Run collects new items, merges them with existing priorities and asks for
// the order of the result
func (f *PlanForm) Run(existing []domain.Priority) ([]domain.Priority, error) {
	items, err := f.collectItems(existing)
	if err != nil {
		return nil, err
	}
	candidates := MergeItems(existing, items)
	logging.Logger.Debug("Collected plan candidates", "date", f.date, "count", len(candidates))

	return OrderPriorities(candidates, f.choose)
}

// collectItems prompts for one item at a time until an empty answer
func (f *PlanForm) collectItems(existing []domain.Priority) ([]string, error) {
	var items []string
	for {
		count := len(existing) + len(items)
		title := fmt.Sprintf("What needs doing on %s?", f.date)
		if count > 0 {
			title = fmt.Sprintf("Anything else? (%d so far, empty to finish)", count)
		}

		var item string
		input := huh.NewInput().
			Title(title).
			Value(&item)
		if count == 0 {
			input = input.Placeholder("empty to finish")
		}

		if err := f.run(huh.NewForm(huh.NewGroup(input))); err != nil {
			return nil, err
		}

		item = strings.TrimSpace(item)
		if item == "" {
			return items, nil
		}
		items = append(items, item)
	}
}

func (f *PlanForm) choose(remaining []domain.Priority, rank int) (int, error) {
	options := make([]huh.Option[int], 0, len(remaining)+1)
	for i, p := range remaining {
		label := p.Name
		if p.Done {
			label += " (done)"
		}
		options = append(options, huh.NewOption(label, i))
	}
	options = append(options, huh.NewOption("Leave the rest out", StopChoosing))

	choice := StopChoosing
	selectField := huh.NewSelect[int]().
		Title(fmt.Sprintf("Priority #%d", rank)).
		Options(options...).
		Value(&choice)
	if err := f.run(huh.NewForm(huh.NewGroup(selectField))); err != nil {
		return StopChoosing, err
	}
	return choice, nil
}

func (f *PlanForm) run(form *huh.Form) error {
	// WithProgramOptions replaces earlier program options, so it goes first
	form = form.
		WithProgramOptions(tea.WithInput(f.input), tea.WithOutput(f.output)).
		WithAccessible(f.accessible).
		WithInput(f.input).
		WithOutput(f.output).
		WithShowHelp(false)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return ErrPlanAborted
		}
		return fmt.Errorf("prompt failed: %w", err)
	}
	return nil
}
