package slog

import (
	"log/slog"
	"time"

	"briefer"
)

// Ensure LoggingExtractor implements briefer.Extractor.
var _ briefer.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with debug logging, labeling each
// attempt with the extraction method's name so fallback-chain behavior is
// visible in logs.
type LoggingExtractor struct {
	next   briefer.Extractor
	name   string
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next briefer.Extractor, name string, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, name: name, logger: logger}
}

// Extract delegates to the wrapped extractor, logging the outcome.
func (e *LoggingExtractor) Extract(html string) (*briefer.ExtractResult, error) {
	begin := time.Now()
	result, err := e.next.Extract(html)
	if err != nil {
		e.logger.Debug("extraction failed",
			"method", e.name,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}
	e.logger.Debug("extraction attempt",
		"method", e.name,
		"duration", time.Since(begin),
		"words", briefer.CountWords(result.Text),
	)
	return result, nil
}
