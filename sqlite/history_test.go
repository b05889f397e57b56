package sqlite_test

import (
	"context"
	"fmt"
	"testing"

	"briefer"
	"briefer/sqlite"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary(i int) *briefer.Summary {
	return &briefer.Summary{
		URL:       fmt.Sprintf("https://example.com/article-%d", i),
		Title:     fmt.Sprintf("Article %d", i),
		Format:    briefer.FormatBulletPoints,
		MaxWords:  200,
		Provider:  "openai",
		Text:      "- Point one.\n- Point two.",
		WordCount: 6,
	}
}

func TestHistoryService_CreateSummary(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID, timestamp, and content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		summary := testSummary(1)
		require.NoError(t, svc.CreateSummary(context.Background(), summary))

		assert.NotEmpty(t, summary.ID)
		assert.False(t, summary.CreatedAt.IsZero())
		assert.NotEmpty(t, summary.ContentHash)
	})

	t.Run("keeps caller-provided content hash", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		summary := testSummary(1)
		summary.ContentHash = "precomputed"
		require.NoError(t, svc.CreateSummary(context.Background(), summary))

		assert.Equal(t, "precomputed", summary.ContentHash)
	})

	t.Run("rejects invalid summary", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		err := svc.CreateSummary(context.Background(), &briefer.Summary{})
		require.Error(t, err)
		assert.Equal(t, briefer.EINVALID, briefer.ErrorCode(err))
	})
}

func TestHistoryService_FindSummaryByID(t *testing.T) {
	t.Parallel()

	t.Run("round-trips all fields", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		created := testSummary(1)
		require.NoError(t, svc.CreateSummary(ctx, created))

		found, err := svc.FindSummaryByID(ctx, created.ID)
		require.NoError(t, err)

		assert.Equal(t, created.URL, found.URL)
		assert.Equal(t, created.Title, found.Title)
		assert.Equal(t, created.Format, found.Format)
		assert.Equal(t, created.MaxWords, found.MaxWords)
		assert.Equal(t, created.Provider, found.Provider)
		assert.Equal(t, created.Text, found.Text)
		assert.Equal(t, created.WordCount, found.WordCount)
		assert.Equal(t, created.ContentHash, found.ContentHash)
		assert.Equal(t, created.CreatedAt.Unix(), found.CreatedAt.Unix())
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		_, err := svc.FindSummaryByID(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, briefer.ENOTFOUND, briefer.ErrorCode(err))
	})
}

func TestHistoryService_FindSummaries(t *testing.T) {
	t.Parallel()

	t.Run("returns newest first", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateSummary(ctx, testSummary(i)))
		}

		summaries, err := svc.FindSummaries(ctx, briefer.SummaryFilter{})
		require.NoError(t, err)
		require.Len(t, summaries, 5)

		for i := 1; i < len(summaries); i++ {
			assert.False(t, summaries[i].CreatedAt.After(summaries[i-1].CreatedAt),
				"summaries must be ordered newest first")
		}
	})

	t.Run("applies limit and offset", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		for i := 0; i < 5; i++ {
			require.NoError(t, svc.CreateSummary(ctx, testSummary(i)))
		}

		page, err := svc.FindSummaries(ctx, briefer.SummaryFilter{Limit: 2})
		require.NoError(t, err)
		assert.Len(t, page, 2)

		rest, err := svc.FindSummaries(ctx, briefer.SummaryFilter{Limit: 10, Offset: 3})
		require.NoError(t, err)
		assert.Len(t, rest, 2)
	})

	t.Run("filters by URL", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		for i := 0; i < 3; i++ {
			require.NoError(t, svc.CreateSummary(ctx, testSummary(i)))
		}

		url := "https://example.com/article-1"
		summaries, err := svc.FindSummaries(ctx, briefer.SummaryFilter{URL: &url})
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, url, summaries[0].URL)
	})

	t.Run("filters by provider", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		require.NoError(t, svc.CreateSummary(ctx, testSummary(0)))
		other := testSummary(1)
		other.Provider = "gemini"
		require.NoError(t, svc.CreateSummary(ctx, other))

		provider := "gemini"
		summaries, err := svc.FindSummaries(ctx, briefer.SummaryFilter{Provider: &provider})
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "gemini", summaries[0].Provider)
	})

	t.Run("returns empty result for no matches", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		summaries, err := svc.FindSummaries(context.Background(), briefer.SummaryFilter{})
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestHistoryService_DeleteSummary(t *testing.T) {
	t.Parallel()

	t.Run("deletes an existing summary", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)
		ctx := context.Background()

		summary := testSummary(1)
		require.NoError(t, svc.CreateSummary(ctx, summary))
		require.NoError(t, svc.DeleteSummary(ctx, summary.ID))

		_, err := svc.FindSummaryByID(ctx, summary.ID)
		assert.Equal(t, briefer.ENOTFOUND, briefer.ErrorCode(err))
	})

	t.Run("returns not found for unknown ID", func(t *testing.T) {
		t.Parallel()

		db := setupTestDB(t)
		svc := sqlite.NewHistoryService(db)

		err := svc.DeleteSummary(context.Background(), "missing")
		require.Error(t, err)
		assert.Equal(t, briefer.ENOTFOUND, briefer.ErrorCode(err))
	})
}

func TestHashContent(t *testing.T) {
	t.Parallel()

	a := sqlite.HashContent("some article text")
	b := sqlite.HashContent("some article text")
	c := sqlite.HashContent("different text")

	assert.Equal(t, a, b, "hash must be deterministic")
	assert.NotEqual(t, a, c)
	assert.Len(t, a, 16, "64-bit hash as hex")
}
