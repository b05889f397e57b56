// Package slog provides logging decorators for briefer interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"briefer"
)

// Ensure LoggingProvider implements briefer.Provider.
var _ briefer.Provider = (*LoggingProvider)(nil)

// LoggingProvider wraps a Provider with per-call timing and outcome logs.
type LoggingProvider struct {
	next   briefer.Provider
	id     string
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider. The id labels log
// entries with the provider identifier the registry knows it by.
func NewLoggingProvider(next briefer.Provider, id string, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, id: id, logger: logger}
}

// Complete delegates to the wrapped provider, logging duration and outcome.
func (p *LoggingProvider) Complete(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
	begin := time.Now()
	out, err := p.next.Complete(ctx, prompt, maxOutputWords)
	if err != nil {
		p.logger.Warn("provider call failed",
			"provider", p.id,
			"duration", time.Since(begin),
			"error", err,
		)
		return "", err
	}
	p.logger.Debug("provider call",
		"provider", p.id,
		"duration", time.Since(begin),
		"promptWords", briefer.CountWords(prompt),
		"outputWords", briefer.CountWords(out),
	)
	return out, nil
}
