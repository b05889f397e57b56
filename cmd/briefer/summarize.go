package main

import (
	"fmt"
	"strings"

	"briefer"
	"briefer/sqlite"
)

// Run executes the summarize command.
func (c *SummarizeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stderr, "Fetching %s...\n", c.URL)
	rawHTML, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to fetch article: %s\n", err)
		return err
	}

	article, err := deps.Extractor.ExtractArticle(rawHTML, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", briefer.ErrorMessage(err))
		fmt.Fprintln(deps.Stderr, "The page might be behind a paywall, require JavaScript, or not contain readable article content.")
		return err
	}

	req := briefer.SummaryRequest{
		Format:   briefer.Format(c.Format),
		MaxWords: c.MaxWords,
		Provider: c.Provider,
	}

	fmt.Fprintf(deps.Stderr, "Generating %s summary (%d words max, provider %s)...\n",
		c.Format, c.MaxWords, c.Provider)

	result, err := deps.Summarizer.Summarize(deps.Ctx, article, req)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", briefer.ErrorMessage(err))
		if briefer.ErrorCode(err) == briefer.EAUTH {
			fmt.Fprintln(deps.Stderr, "Hint: Check the API key for the selected provider.")
		}
		return err
	}

	if result.ChunksFailed > 0 {
		fmt.Fprintf(deps.Stderr, "warning: %d of %d sections could not be summarized; the summary covers the rest\n",
			result.ChunksFailed, result.ChunksTotal)
	}
	if result.Truncated {
		fmt.Fprintln(deps.Stderr, "note: summary was truncated to fit the word budget")
	}

	if c.Output == "console" || c.Output == "both" {
		printSummary(deps, article, result)
	}

	if c.Output == "html" || c.Output == "both" {
		path, err := SaveReport(ReportData{
			URL:     c.URL,
			Title:   article.Title,
			Format:  req.Format,
			Summary: result.Text,
		})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to write HTML report: %s\n", err)
		} else {
			fmt.Fprintf(deps.Stderr, "Summary saved to: %s\n", path)
		}
	}

	if !c.NoSave && deps.History != nil {
		summary := &briefer.Summary{
			URL:         c.URL,
			Title:       article.Title,
			Format:      req.Format,
			MaxWords:    req.MaxWords,
			Provider:    req.Provider,
			Text:        result.Text,
			WordCount:   result.WordCount,
			ContentHash: sqlite.HashContent(article.CleanText),
		}
		if err := deps.History.CreateSummary(deps.Ctx, summary); err != nil {
			fmt.Fprintf(deps.Stderr, "warning: failed to save to history: %s\n", err)
		}
	}

	return nil
}

func printSummary(deps *Dependencies, article *briefer.Article, result *briefer.SummaryResult) {
	divider := strings.Repeat("=", 80)
	fmt.Fprintln(deps.Stdout, divider)
	if article.Title != "" {
		fmt.Fprintln(deps.Stdout, article.Title)
	} else {
		fmt.Fprintln(deps.Stdout, "SUMMARY")
	}
	fmt.Fprintln(deps.Stdout, divider)
	fmt.Fprintln(deps.Stdout, result.Text)
	fmt.Fprintln(deps.Stdout, divider)
	fmt.Fprintf(deps.Stdout, "%d words\n", result.WordCount)
}
