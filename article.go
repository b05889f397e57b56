package briefer

import "strings"

// MinArticleWords is the quality gate: an extraction attempt must yield at
// least this many words (after whitespace normalization) to be accepted.
const MinArticleWords = 50

// Article is clean text extracted from one fetched page. It lives only for
// the duration of one pipeline run; persistence is the caller's concern.
type Article struct {
	// URL is the source the raw HTML was fetched from.
	URL string

	// Title may be empty if no extraction method could determine one.
	Title string

	// CleanText is the whitespace-normalized article body. It is produced
	// exactly once by the extraction chain and immutable thereafter.
	CleanText string
}

// ExtractorChain runs extractors in order until one passes the quality
// gate. The chain is the ContentExtractor of the pipeline: a high-precision
// primary method first, then progressively cruder fallbacks.
type ExtractorChain struct {
	// Extractors are tried in order. The first result with non-empty text
	// of at least MinWords words wins.
	Extractors []Extractor

	// MinWords overrides the quality gate threshold. Zero means
	// MinArticleWords.
	MinWords int
}

// ExtractArticle turns raw HTML into an Article. It fails with EEXTRACTION
// if no extractor in the chain passes the quality gate.
func (c *ExtractorChain) ExtractArticle(rawHTML, url string) (*Article, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return nil, Errorf(EEXTRACTION, "empty HTML input for %s", url)
	}

	minWords := c.MinWords
	if minWords <= 0 {
		minWords = MinArticleWords
	}

	// Control characters in the source break some parsers downstream.
	cleaned := StripControlChars(rawHTML)

	var title string
	for _, extractor := range c.Extractors {
		result, err := extractor.Extract(cleaned)
		if err != nil || result == nil {
			continue
		}
		if title == "" {
			title = strings.TrimSpace(result.Title)
		}
		text := NormalizeWhitespace(result.Text)
		if CountWords(text) < minWords {
			continue
		}
		articleTitle := strings.TrimSpace(result.Title)
		if articleTitle == "" {
			articleTitle = title
		}
		return &Article{
			URL:       url,
			Title:     articleTitle,
			CleanText: text,
		}, nil
	}

	return nil, Errorf(EEXTRACTION, "no extractable content at %s", url)
}
