// Package anthropic implements briefer.Provider using the Anthropic
// Messages API over plain HTTP.
package anthropic

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"briefer"
)

// DefaultModel is used when no model is configured.
const DefaultModel = "claude-3-5-haiku-latest"

const (
	messagesURL = "https://api.anthropic.com/v1/messages"
	apiVersion  = "2023-06-01"
)

// Ensure Provider implements briefer.Provider at compile time.
var _ briefer.Provider = (*Provider)(nil)

// Provider issues completions against the Anthropic API.
type Provider struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
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

// WithBaseURL overrides the API endpoint. Used in tests.
func WithBaseURL(url string) Option {
	return func(p *Provider) {
		p.baseURL = url
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// NewProvider creates a Provider authenticated with apiKey.
func NewProvider(apiKey string, opts ...Option) *Provider {
	p := &Provider{
		apiKey:  apiKey,
		model:   DefaultModel,
		baseURL: messagesURL,
		client:  http.DefaultClient,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Messages API request/response types.

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	System    string    `json:"system,omitempty"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type messagesResponse struct {
	Content []contentBlock `json:"content"`
	Error   *apiError      `json:"error,omitempty"`
}

type contentBlock struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type apiError struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// Complete sends prompt and returns the model's text response.
func (p *Provider) Complete(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
	maxTokens := maxOutputWords * 2
	if maxTokens < 256 {
		maxTokens = 256
	}

	body, err := json.Marshal(messagesRequest{
		Model:     p.model,
		MaxTokens: maxTokens,
		System:    briefer.SystemPrompt,
		Messages:  []message{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic: failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("anthropic: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", p.apiKey)
	req.Header.Set("anthropic-version", apiVersion)

	resp, err := p.client.Do(req)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return "", err
		}
		return "", briefer.Errorf(briefer.EUNAVAILABLE, "anthropic: request failed: %v", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", briefer.Errorf(briefer.EUNAVAILABLE, "anthropic: failed to read response: %v", err)
	}

	if resp.StatusCode != http.StatusOK {
		return "", mapStatus(resp.StatusCode, respBody)
	}

	var apiResp messagesResponse
	if err := json.Unmarshal(respBody, &apiResp); err != nil {
		return "", briefer.Errorf(briefer.EBADRESPONSE, "anthropic: failed to parse response: %v", err)
	}
	if apiResp.Error != nil {
		return "", briefer.Errorf(briefer.EBADRESPONSE, "anthropic: API error: %s - %s",
			apiResp.Error.Type, apiResp.Error.Message)
	}
	if len(apiResp.Content) == 0 || apiResp.Content[0].Text == "" {
		return "", briefer.Errorf(briefer.EBADRESPONSE, "anthropic: empty response")
	}

	return apiResp.Content[0].Text, nil
}

// mapStatus converts non-200 responses to the uniform provider taxonomy.
func mapStatus(status int, body []byte) error {
	var apiResp messagesResponse
	detail := ""
	if err := json.Unmarshal(body, &apiResp); err == nil && apiResp.Error != nil {
		detail = ": " + apiResp.Error.Message
	}

	switch {
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return briefer.Errorf(briefer.EAUTH, "anthropic: invalid or missing API key%s", detail)
	case status == http.StatusTooManyRequests:
		return briefer.Errorf(briefer.ERATELIMIT, "anthropic: rate limited%s", detail)
	case status >= 500:
		return briefer.Errorf(briefer.EUNAVAILABLE, "anthropic: service error (HTTP %d)%s", status, detail)
	default:
		return briefer.Errorf(briefer.EBADRESPONSE, "anthropic: unexpected HTTP %d%s", status, detail)
	}
}
