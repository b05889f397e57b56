package main

import (
	"fmt"

	"briefer"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	summaries, err := deps.History.FindSummaries(deps.Ctx, briefer.SummaryFilter{Limit: c.Limit})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", briefer.ErrorMessage(err))
		return err
	}

	if len(summaries) == 0 {
		fmt.Fprintln(deps.Stdout, "No summaries yet. Run 'briefer summarize <url>' to create one.")
		return nil
	}

	for _, s := range summaries {
		title := s.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s\n", s.CreatedAt.Local().Format("2006-01-02 15:04"), title)
		fmt.Fprintf(deps.Stdout, "    %s  [%s, %d words, %s]\n", s.URL, s.Format, s.WordCount, s.Provider)
		if c.Full {
			fmt.Fprintln(deps.Stdout, s.Text)
			fmt.Fprintln(deps.Stdout)
		}
	}

	return nil
}
