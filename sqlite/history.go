package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"briefer"

	"github.com/cespare/xxhash/v2"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ briefer.HistoryService = (*HistoryService)(nil)

// HistoryService implements briefer.HistoryService using SQLite.
type HistoryService struct {
	db *DB
}

// NewHistoryService creates a new HistoryService.
func NewHistoryService(db *DB) *HistoryService {
	return &HistoryService{db: db}
}

// HashContent computes the xxHash of content as a hex string. The CLI uses
// it to fingerprint the extracted article text a summary was produced from.
func HashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

// CreateSummary persists a new summary record, assigning its ID and
// creation time.
func (s *HistoryService) CreateSummary(ctx context.Context, summary *briefer.Summary) error {
	if err := summary.Validate(); err != nil {
		return err
	}

	summary.ID = uuid.New().String()
	summary.CreatedAt = time.Now().UTC()
	if summary.ContentHash == "" {
		summary.ContentHash = HashContent(summary.Text)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO summaries (id, url, title, format, max_words, provider, text, word_count, content_hash, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, summary.ID, summary.URL, summary.Title, string(summary.Format), summary.MaxWords,
		summary.Provider, summary.Text, summary.WordCount, summary.ContentHash,
		summary.CreatedAt.Format(time.RFC3339))

	return err
}

// FindSummaryByID retrieves a summary by ID.
func (s *HistoryService) FindSummaryByID(ctx context.Context, id string) (*briefer.Summary, error) {
	var summary briefer.Summary
	var format, createdAt string

	err := s.db.QueryRowContext(ctx, `
		SELECT id, url, title, format, max_words, provider, text, word_count, content_hash, created_at
		FROM summaries
		WHERE id = ?
	`, id).Scan(&summary.ID, &summary.URL, &summary.Title, &format, &summary.MaxWords,
		&summary.Provider, &summary.Text, &summary.WordCount, &summary.ContentHash, &createdAt)

	if err == sql.ErrNoRows {
		return nil, briefer.Errorf(briefer.ENOTFOUND, "summary not found")
	}
	if err != nil {
		return nil, err
	}

	summary.Format = briefer.Format(format)
	summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
	if err != nil {
		return nil, err
	}

	return &summary, nil
}

// FindSummaries retrieves summaries matching the filter, newest first.
func (s *HistoryService) FindSummaries(ctx context.Context, filter briefer.SummaryFilter) ([]*briefer.Summary, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, url, title, format, max_words, provider, text, word_count, content_hash, created_at FROM summaries WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}
	if filter.Provider != nil {
		query.WriteString(" AND provider = ?")
		args = append(args, *filter.Provider)
	}

	query.WriteString(" ORDER BY created_at DESC")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var summaries []*briefer.Summary
	for rows.Next() {
		var summary briefer.Summary
		var format, createdAt string

		if err := rows.Scan(&summary.ID, &summary.URL, &summary.Title, &format, &summary.MaxWords,
			&summary.Provider, &summary.Text, &summary.WordCount, &summary.ContentHash, &createdAt); err != nil {
			return nil, err
		}

		summary.Format = briefer.Format(format)
		summary.CreatedAt, err = parseRFC3339(createdAt, "created_at")
		if err != nil {
			return nil, err
		}

		summaries = append(summaries, &summary)
	}

	return summaries, rows.Err()
}

// DeleteSummary permanently removes a summary.
func (s *HistoryService) DeleteSummary(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM summaries WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return briefer.Errorf(briefer.ENOTFOUND, "summary not found")
	}

	return nil
}

// parseRFC3339 parses an RFC3339 formatted timestamp string.
func parseRFC3339(value, fieldName string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse %s: %w", fieldName, err)
	}
	return t, nil
}

// appendPagination appends LIMIT and OFFSET clauses if values are > 0.
func appendPagination(query *strings.Builder, args *[]any, limit, offset int) {
	if limit > 0 {
		query.WriteString(" LIMIT ?")
		*args = append(*args, limit)
	}
	if offset > 0 {
		query.WriteString(" OFFSET ?")
		*args = append(*args, offset)
	}
}
