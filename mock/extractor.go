package mock

import "briefer"

var _ briefer.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of briefer.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*briefer.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*briefer.ExtractResult, error) {
	return e.ExtractFn(html)
}
