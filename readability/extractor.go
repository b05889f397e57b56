// Package readability provides a generic readability-style content
// extractor, used as the first fallback when trafilatura fails the
// quality gate.
package readability

import (
	"strings"

	"briefer"

	readability "github.com/go-shiori/go-readability"
)

// Ensure Extractor implements briefer.Extractor at compile time.
var _ briefer.Extractor = (*Extractor)(nil)

// Extractor wraps go-readability to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content as plain text.
func (e *Extractor) Extract(rawHTML string) (*briefer.ExtractResult, error) {
	if rawHTML == "" {
		return nil, briefer.Errorf(briefer.EINVALID, "empty HTML input")
	}

	article, err := readability.FromReader(strings.NewReader(rawHTML), nil)
	if err != nil {
		return nil, err
	}

	return &briefer.ExtractResult{
		Title: article.Title,
		Text:  article.TextContent,
	}, nil
}
