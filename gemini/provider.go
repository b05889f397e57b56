// Package gemini implements briefer.Provider using Google Gemini.
package gemini

import (
	"context"
	"errors"

	"briefer"

	"google.golang.org/genai"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "gemini-2.5-flash"

// Ensure Provider implements briefer.Provider at compile time.
var _ briefer.Provider = (*Provider)(nil)

// Provider issues completions against the Gemini API.
type Provider struct {
	client *genai.Client
	model  string
}

// NewProvider creates a Provider using the given client. An empty model
// selects DefaultModel.
func NewProvider(client *genai.Client, model string) *Provider {
	if model == "" {
		model = DefaultModel
	}
	return &Provider{client: client, model: model}
}

// Complete sends prompt and returns the model's text response.
func (p *Provider) Complete(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
	result, err := p.client.Models.GenerateContent(ctx, p.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		BuildConfig(maxOutputWords),
	)
	if err != nil {
		return "", mapError(err)
	}
	if result == nil {
		return "", briefer.Errorf(briefer.EBADRESPONSE, "gemini returned nil result")
	}

	text := result.Text()
	if text == "" {
		return "", briefer.Errorf(briefer.EBADRESPONSE, "gemini returned empty text")
	}
	return text, nil
}

// BuildConfig returns the GenerateContentConfig for Gemini API calls.
// The token cap doubles the word budget to leave headroom, matching the
// sizing used by the other providers.
func BuildConfig(maxOutputWords int) *genai.GenerateContentConfig {
	temp := float32(0.3)
	maxTokens := int32(maxOutputWords) * 2
	if maxTokens < 256 {
		maxTokens = 256
	}
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: briefer.SystemPrompt}},
		},
		Temperature:     &temp,
		MaxOutputTokens: maxTokens,
	}
}

// mapError converts Gemini API errors to the uniform provider taxonomy.
func mapError(err error) error {
	var apierr genai.APIError
	if errors.As(err, &apierr) {
		switch {
		case apierr.Code == 401 || apierr.Code == 403:
			return briefer.Errorf(briefer.EAUTH, "gemini: invalid or missing API key")
		case apierr.Code == 429:
			return briefer.Errorf(briefer.ERATELIMIT, "gemini: rate limited")
		case apierr.Code >= 500:
			return briefer.Errorf(briefer.EUNAVAILABLE, "gemini: service error (HTTP %d)", apierr.Code)
		default:
			return briefer.Errorf(briefer.EBADRESPONSE, "gemini: %s", apierr.Message)
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return briefer.Errorf(briefer.EUNAVAILABLE, "gemini: request failed: %v", err)
}
