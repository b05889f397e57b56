package briefer

import (
	"context"
	"time"
)

// Summary is a persisted summarization outcome. The pipeline itself holds
// no state across runs; history is owned by the caller (the CLI stores one
// record per successful run).
type Summary struct {
	ID          string    `json:"id"`
	URL         string    `json:"url"`
	Title       string    `json:"title"`
	Format      Format    `json:"format"`
	MaxWords    int       `json:"maxWords"`
	Provider    string    `json:"provider"`
	Text        string    `json:"text"`
	WordCount   int       `json:"wordCount"`
	ContentHash string    `json:"contentHash"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Validate returns an error if the summary contains invalid fields.
func (s *Summary) Validate() error {
	if s.URL == "" {
		return Errorf(EINVALID, "summary URL required")
	}
	if s.Text == "" {
		return Errorf(EINVALID, "summary text required")
	}
	if s.Provider == "" {
		return Errorf(EINVALID, "summary provider required")
	}
	return nil
}

// HistoryService stores and retrieves past summaries.
type HistoryService interface {
	// CreateSummary persists a new summary record.
	CreateSummary(ctx context.Context, summary *Summary) error

	// FindSummaryByID retrieves a summary by ID.
	// Returns ENOTFOUND if the summary does not exist.
	FindSummaryByID(ctx context.Context, id string) (*Summary, error)

	// FindSummaries retrieves summaries matching the filter, newest first.
	FindSummaries(ctx context.Context, filter SummaryFilter) ([]*Summary, error)

	// DeleteSummary permanently removes a summary.
	// Returns ENOTFOUND if the summary does not exist.
	DeleteSummary(ctx context.Context, id string) error
}

// SummaryFilter represents a filter for FindSummaries.
type SummaryFilter struct {
	ID       *string `json:"id"`
	URL      *string `json:"url"`
	Provider *string `json:"provider"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
