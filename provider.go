package briefer

import (
	"context"
	"sort"
	"sync"
)

// SystemPrompt is the shared instruction providers send with every
// completion request.
const SystemPrompt = "You are a professional article summarizer. " +
	"Your summaries are factual, concise, and capture the essential information. " +
	"Do not speculate, add opinions, or include unnecessary quotes. " +
	"Focus on the main ideas and key facts."

// Provider issues a single prompt/response exchange against one
// language-model backend. Variants encapsulate their own authentication,
// request formatting, and response parsing behind this contract.
//
// Failures surface uniformly via error codes regardless of variant:
// EAUTH (missing/invalid credential), ERATELIMIT (retry after backoff),
// EUNAVAILABLE (network or service failure), EBADRESPONSE (malformed or
// empty output). Providers never retry internally; retry policy belongs
// to the pipeline.
type Provider interface {
	// Complete sends prompt and returns the model's text response.
	// maxOutputWords is a sizing hint for the response, not a guarantee.
	Complete(ctx context.Context, prompt string, maxOutputWords int) (string, error)
}

// Registry maps provider identifiers to Provider implementations. The set
// of valid identifiers is whatever was registered; the core never
// hardcodes it.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{providers: make(map[string]Provider)}
}

// Register adds or replaces the provider for id.
func (r *Registry) Register(id string, p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[id] = p
}

// Get returns the provider registered under id.
// Returns ENOTFOUND if no provider is registered under id.
func (r *Registry) Get(id string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.providers[id]
	if !ok {
		return nil, Errorf(ENOTFOUND, "unknown provider %q", id)
	}
	return p, nil
}

// List returns all registered provider identifiers, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.providers))
	for id := range r.providers {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
