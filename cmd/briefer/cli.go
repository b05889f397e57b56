package main

import (
	"context"
	"io"
	"log/slog"

	"briefer"
	"briefer/pipeline"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx        context.Context
	Stdout     io.Writer
	Stderr     io.Writer
	Logger     *slog.Logger
	Fetcher    briefer.Fetcher
	Extractor  *briefer.ExtractorChain
	Providers  *briefer.Registry
	Summarizer *pipeline.Summarizer
	History    briefer.HistoryService
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Summarize SummarizeCmd `cmd:"" help:"Fetch a web article and summarize it"`
	History   HistoryCmd   `cmd:"" help:"List past summaries"`
	Providers ProvidersCmd `cmd:"" help:"List configured provider backends"`

	Verbose bool `short:"v" help:"Enable debug logging"`
}

// SummarizeCmd is the "summarize" subcommand.
type SummarizeCmd struct {
	URL         string `arg:"" help:"URL of the article to summarize"`
	Format      string `short:"f" enum:"points,para" default:"points" help:"Summary format: 'points' for bullets, 'para' for prose"`
	MaxWords    int    `default:"200" help:"Maximum words in the summary"`
	Provider    string `short:"p" default:"openai" help:"Provider backend to use"`
	Model       string `help:"Override the provider's default model"`
	Output      string `short:"o" enum:"console,html,both" default:"console" help:"Where to write the summary"`
	Concurrency int    `short:"c" default:"4" help:"Concurrent chunk summarization limit"`
	NoSave      bool   `help:"Skip saving the summary to history"`
}

// HistoryCmd is the "history" subcommand.
type HistoryCmd struct {
	Limit int  `default:"20" help:"Maximum entries to show"`
	Full  bool `help:"Show full summary text"`
}

// ProvidersCmd is the "providers" subcommand.
type ProvidersCmd struct{}
