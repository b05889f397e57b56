package mock

import (
	"context"

	"briefer"
)

var _ briefer.HistoryService = (*HistoryService)(nil)

// HistoryService is a mock implementation of briefer.HistoryService.
type HistoryService struct {
	CreateSummaryFn   func(ctx context.Context, summary *briefer.Summary) error
	FindSummaryByIDFn func(ctx context.Context, id string) (*briefer.Summary, error)
	FindSummariesFn   func(ctx context.Context, filter briefer.SummaryFilter) ([]*briefer.Summary, error)
	DeleteSummaryFn   func(ctx context.Context, id string) error
}

func (s *HistoryService) CreateSummary(ctx context.Context, summary *briefer.Summary) error {
	return s.CreateSummaryFn(ctx, summary)
}

func (s *HistoryService) FindSummaryByID(ctx context.Context, id string) (*briefer.Summary, error) {
	return s.FindSummaryByIDFn(ctx, id)
}

func (s *HistoryService) FindSummaries(ctx context.Context, filter briefer.SummaryFilter) ([]*briefer.Summary, error) {
	return s.FindSummariesFn(ctx, filter)
}

func (s *HistoryService) DeleteSummary(ctx context.Context, id string) error {
	return s.DeleteSummaryFn(ctx, id)
}
