// Package trafilatura provides the primary, high-precision content
// extractor built on go-trafilatura.
package trafilatura

import (
	"strings"

	"briefer"

	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements briefer.Extractor at compile time.
var _ briefer.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
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

	opts := trafilatura.Options{
		ExcludeComments: true,
		ExcludeTables:   true,
		EnableFallback:  true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, err
	}

	return &briefer.ExtractResult{
		Title: result.Metadata.Title,
		Text:  result.ContentText,
	}, nil
}
