// Package openai implements briefer.Provider using the OpenAI Chat
// Completions API.
package openai

import (
	"context"
	"errors"

	"briefer"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gpt-4o-mini"

// Ensure Provider implements briefer.Provider at compile time.
var _ briefer.Provider = (*Provider)(nil)

// Provider issues completions against the OpenAI API.
type Provider struct {
	client openai.Client
	model  string
}

// Option configures a Provider.
type Option func(*Provider)

// WithModel overrides the model. Defaults to DefaultModel.
func WithModel(model string) Option {
	return func(p *Provider) {
		if model != "" {
			p.model = model
		}
	}
}

// NewProvider creates a Provider authenticated with apiKey.
func NewProvider(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		client: openai.NewClient(option.WithAPIKey(apiKey)),
		model:  DefaultModel,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Complete sends prompt and returns the model's text response.
func (p *Provider) Complete(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
	resp, err := p.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: openai.ChatModel(p.model),
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(briefer.SystemPrompt),
			openai.UserMessage(prompt),
		},
		Temperature:         openai.Float(0.3),
		MaxCompletionTokens: openai.Int(MaxOutputTokens(maxOutputWords)),
	})
	if err != nil {
		return "", mapError(err)
	}

	if len(resp.Choices) == 0 {
		return "", briefer.Errorf(briefer.EBADRESPONSE, "openai returned no choices")
	}
	content := resp.Choices[0].Message.Content
	if content == "" {
		return "", briefer.Errorf(briefer.EBADRESPONSE,
			"openai returned empty content (finish reason %s)", resp.Choices[0].FinishReason)
	}

	return content, nil
}

// MaxOutputTokens converts a word budget to a token cap. English prose
// averages ~1.3 tokens per word; doubling leaves headroom so the cap
// never silently truncates an in-budget summary.
func MaxOutputTokens(words int) int64 {
	tokens := int64(words) * 2
	if tokens < 256 {
		tokens = 256
	}
	return tokens
}

// mapError converts OpenAI API errors to the uniform provider taxonomy.
func mapError(err error) error {
	var apierr *openai.Error
	if errors.As(err, &apierr) {
		switch {
		case apierr.StatusCode == 401 || apierr.StatusCode == 403:
			return briefer.Errorf(briefer.EAUTH, "openai: invalid or missing API key")
		case apierr.StatusCode == 429:
			return briefer.Errorf(briefer.ERATELIMIT, "openai: rate limited")
		case apierr.StatusCode >= 500:
			return briefer.Errorf(briefer.EUNAVAILABLE, "openai: service error (HTTP %d)", apierr.StatusCode)
		default:
			return briefer.Errorf(briefer.EBADRESPONSE, "openai: %s", apierr.Error())
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return briefer.Errorf(briefer.EUNAVAILABLE, "openai: request failed: %v", err)
}
