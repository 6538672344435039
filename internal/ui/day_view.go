package ui

import (
	"fmt"
	"strings"

	"doer/internal/domain"
	"doer/internal/theme"
)

const (
	doneMark  = "✓"
	focusMark = "▶"
	openMark  = "·"
)

// RenderDay formats a day for the terminal. Priorities are numbered from 1,
// matching the ids the tick and focus commands take.
func RenderDay(date domain.Date, contextName string, day domain.Day) string {
	var b strings.Builder

	title := theme.TitleStyle.Render(fmt.Sprintf("%s %s", date.Weekday(), date))
	fmt.Fprintf(&b, "%s %s\n", title, theme.ContextStyle.Render("("+contextName+")"))

	if day.IsEmpty() {
		b.WriteString(theme.MutedStyle.Render("Nothing planned"))
		b.WriteString("\n")
		return b.String()
	}

	renderPriorities(&b, day)
	renderLog(&b, day)

	if len(day.Notes) > 0 {
		b.WriteString("\n")
		b.WriteString(theme.SectionStyle.Render("Notes"))
		b.WriteString("\n")
		for _, note := range day.Notes {
			fmt.Fprintf(&b, "  - %s\n", theme.NormalStyle.Render(note))
		}
	}

	if day.EndTime != nil {
		b.WriteString("\n")
		b.WriteString(theme.MutedStyle.Render("Day ended at " + day.EndTime.Short()))
		b.WriteString("\n")
	}

	return b.String()
}

func renderPriorities(b *strings.Builder, day domain.Day) {
	b.WriteString("\n")
	b.WriteString(theme.SectionStyle.Render("Priorities"))
	b.WriteString("\n")

	if len(day.Priorities) == 0 {
		b.WriteString(theme.MutedStyle.Render("  none"))
		b.WriteString("\n")
		return
	}

	var focusName string
	if focus := day.Focus(); focus != nil {
		focusName = focus.Name
	}

	for i, p := range day.Priorities {
		index := theme.IndexStyle.Render(fmt.Sprintf("%d.", i+1))
		mark := theme.OpenMarkStyle.Render(openMark)
		name := theme.NormalStyle.Render(p.Name)
		if p.Done {
			mark = theme.DoneMarkStyle.Render(doneMark)
			name = theme.DoneStyle.Render(p.Name)
		}
		if p.Name == focusName {
			name += " " + theme.FocusMarkStyle.Render(focusMark)
		}
		fmt.Fprintf(b, "%s %s %s\n", index, mark, name)
	}
}

func renderLog(b *strings.Builder, day domain.Day) {
	if len(day.Log) == 0 {
		return
	}

	b.WriteString("\n")
	b.WriteString(theme.SectionStyle.Render("Focus log"))
	b.WriteString("\n")

	last := len(day.Log) - 1
	for i, focus := range day.Log {
		start := theme.TimeStyle.Render(focus.Start.Short())
		name := theme.NormalStyle.Render(focus.Name)
		if i == last {
			name = theme.FocusStyle.Render(focus.Name)
		}
		fmt.Fprintf(b, "  %s %s\n", start, name)

		for _, brk := range focus.Breaks {
			fmt.Fprintf(b, "        %s\n", theme.BreakStyle.Render(describeBreak(brk)))
		}
	}
}

func describeBreak(brk domain.Break) string {
	if brk.IsOpen() {
		return "on break since " + brk.Start.Short()
	}
	return fmt.Sprintf("break %s-%s", brk.Start.Short(), brk.End.Short())
}
