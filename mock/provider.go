package mock

import (
	"context"

	"briefer"
)

var _ briefer.Provider = (*Provider)(nil)

// Provider is a mock implementation of briefer.Provider.
type Provider struct {
	CompleteFn func(ctx context.Context, prompt string, maxOutputWords int) (string, error)
}

func (p *Provider) Complete(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
	return p.CompleteFn(ctx, prompt, maxOutputWords)
}
