package ui

import (
	"encoding/json"
	"fmt"

	"doer/internal/domain"
)

// dayJSON is the machine-readable form printed by show --format json
type dayJSON struct {
	Context    string         `json:"context"`
	Date       string         `json:"date"`
	EndTime    *string        `json:"end_time"`
	Focus      *string        `json:"focus"`
	InBreak    bool           `json:"in_break"`
	Log        []focusJSON    `json:"log"`
	Notes      []string       `json:"notes"`
	Priorities []priorityJSON `json:"priorities"`
}

type priorityJSON struct {
	Done bool   `json:"done"`
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type focusJSON struct {
	Breaks []breakJSON `json:"breaks"`
	Name   string      `json:"name"`
	Start  string      `json:"start"`
}

type breakJSON struct {
	End   *string `json:"end"`
	Start string  `json:"start"`
}

// RenderDayJSON formats a day as indented JSON. Priority ids start at 1.
func RenderDayJSON(date domain.Date, contextName string, day domain.Day) ([]byte, error) {
	out := dayJSON{
		Context:    contextName,
		Date:       date.String(),
		Log:        make([]focusJSON, 0, len(day.Log)),
		Notes:      append(make([]string, 0, len(day.Notes)), day.Notes...),
		Priorities: make([]priorityJSON, 0, len(day.Priorities)),
	}

	for i, p := range day.Priorities {
		out.Priorities = append(out.Priorities, priorityJSON{Done: p.Done, ID: i + 1, Name: p.Name})
	}

	for _, f := range day.Log {
		entry := focusJSON{Name: f.Name, Start: f.Start.String(), Breaks: make([]breakJSON, 0, len(f.Breaks))}
		for _, brk := range f.Breaks {
			b := breakJSON{Start: brk.Start.String()}
			if !brk.IsOpen() {
				end := brk.End.String()
				b.End = &end
			}
			entry.Breaks = append(entry.Breaks, b)
		}
		out.Log = append(out.Log, entry)
	}

	if focus := day.Focus(); focus != nil {
		name := focus.Name
		out.Focus = &name
		out.InBreak = focus.InBreak()
	}
	if day.EndTime != nil {
		end := day.EndTime.String()
		out.EndTime = &end
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return data, nil
}
