package briefer

// ExtractResult holds content extracted from an HTML page.
type ExtractResult struct {
	// Title is the page title from metadata. Empty means unknown, not an
	// error; callers must treat it that way.
	Title string

	// Text is the main article content as plain text, with boilerplate
	// (nav, footer, sidebar, ads) removed.
	Text string
}

// Extractor extracts main content from HTML pages, removing boilerplate.
// Implementations must not mutate the input.
type Extractor interface {
	// Extract processes raw HTML and returns the main content as text.
	Extract(html string) (*ExtractResult, error)
}
