package ui

import (
	"fmt"
	"io"
	"text/tabwriter"

	"doer/internal/services"
)

// WriteContextSummaries prints one row per context with its latest planned
// day and how many of that day's priorities are done
func WriteContextSummaries(w io.Writer, summaries []services.ContextSummary) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "\tCONTEXT\tLAST DAY\tDONE")

	for _, s := range summaries {
		marker := ""
		if s.Current {
			marker = "*"
		}
		last, done := "-", "-"
		if s.HasData() {
			last = s.LastDate.String()
			done = fmt.Sprintf("%d/%d", s.Done, s.Total)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", marker, s.Name, last, done)
	}

	return tw.Flush()
}
