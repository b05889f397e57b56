// Package goquery provides the last-resort DOM-stripping extractor: it
// removes obvious non-content elements and takes whatever visible text
// remains. It trades precision for recall and only runs when the smarter
// extractors fail the quality gate.
package goquery

import (
	"strings"

	"briefer"

	"github.com/PuerkitoBio/goquery"
)

// nonContentSelector matches elements that never carry article text.
const nonContentSelector = "script, style, nav, header, footer, aside, iframe, noscript, form, button"

// Ensure Extractor implements briefer.Extractor at compile time.
var _ briefer.Extractor = (*Extractor)(nil)

// Extractor strips non-content elements from HTML and returns the
// remaining visible text.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the stripped visible text.
func (e *Extractor) Extract(rawHTML string) (*briefer.ExtractResult, error) {
	if rawHTML == "" {
		return nil, briefer.Errorf(briefer.EINVALID, "empty HTML input")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, briefer.Errorf(briefer.EINVALID, "failed to parse HTML: %v", err)
	}

	title := extractTitle(doc)

	doc.Find(nonContentSelector).Remove()

	var body *goquery.Selection
	if body = doc.Find("body"); body.Length() == 0 {
		body = doc.Selection
	}

	return &briefer.ExtractResult{
		Title: title,
		Text:  body.Text(),
	}, nil
}

// extractTitle returns the page title, preferring <title> and falling
// back to the og:title meta property.
func extractTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	if og, ok := doc.Find(`meta[property="og:title"]`).First().Attr("content"); ok {
		return strings.TrimSpace(og)
	}
	return ""
}
