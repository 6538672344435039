package ui

import (
	"fmt"
	"strings"

	"doer/internal/domain"
)

// RenderDayMarkdown formats a day as a markdown checklist, for pasting into
// notes and chat
func RenderDayMarkdown(date domain.Date, contextName string, day domain.Day) string {
	var b strings.Builder

	fmt.Fprintf(&b, "## %s %s (%s)\n", date.Weekday(), date, contextName)

	if len(day.Priorities) > 0 {
		b.WriteString("\n")
		for _, p := range day.Priorities {
			mark := " "
			if p.Done {
				mark = "x"
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, p.Name)
		}
	}

	if len(day.Log) > 0 {
		b.WriteString("\n### Focus log\n\n")
		for _, focus := range day.Log {
			fmt.Fprintf(&b, "- %s %s\n", focus.Start.Short(), focus.Name)
			for _, brk := range focus.Breaks {
				fmt.Fprintf(&b, "  - %s\n", describeBreak(brk))
			}
		}
	}

	if len(day.Notes) > 0 {
		b.WriteString("\n### Notes\n\n")
		for _, note := range day.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	if day.EndTime != nil {
		fmt.Fprintf(&b, "\nEnded at %s\n", day.EndTime.Short())
	}

	return b.String()
}
