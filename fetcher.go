package briefer

import "context"

// Fetcher retrieves raw HTML from a URL. Fetching is outside the core
// pipeline (the pipeline accepts already-fetched HTML); this interface is
// the seam the CLI uses to supply it.
type Fetcher interface {
	// Fetch retrieves the HTML content from the given URL.
	Fetch(ctx context.Context, url string) (string, error)

	// Close releases any resources held by the fetcher.
	Close() error
}
