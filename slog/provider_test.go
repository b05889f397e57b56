package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"briefer"
	"briefer/mock"
	briefslog "briefer/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestLoggingProvider_PassesThroughResult(t *testing.T) {
	t.Parallel()

	next := &mock.Provider{
		CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
			return "the output", nil
		},
	}

	var buf bytes.Buffer
	provider := briefslog.NewLoggingProvider(next, "openai", testLogger(&buf))

	out, err := provider.Complete(context.Background(), "the prompt", 100)

	require.NoError(t, err)
	assert.Equal(t, "the output", out)
	assert.Contains(t, buf.String(), "provider=openai")
}

func TestLoggingProvider_PassesThroughError(t *testing.T) {
	t.Parallel()

	next := &mock.Provider{
		CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
			return "", briefer.Errorf(briefer.ERATELIMIT, "slow down")
		},
	}

	var buf bytes.Buffer
	provider := briefslog.NewLoggingProvider(next, "openai", testLogger(&buf))

	_, err := provider.Complete(context.Background(), "the prompt", 100)

	require.Error(t, err)
	assert.Equal(t, briefer.ERATELIMIT, briefer.ErrorCode(err))
	assert.Contains(t, buf.String(), "provider call failed")
}

func TestLoggingExtractor_PassesThrough(t *testing.T) {
	t.Parallel()

	next := &mock.Extractor{
		ExtractFn: func(html string) (*briefer.ExtractResult, error) {
			return &briefer.ExtractResult{Title: "T", Text: "some text"}, nil
		},
	}

	var buf bytes.Buffer
	extractor := briefslog.NewLoggingExtractor(next, "trafilatura", testLogger(&buf))

	result, err := extractor.Extract("<html></html>")

	require.NoError(t, err)
	assert.Equal(t, "T", result.Title)
	assert.Contains(t, buf.String(), "method=trafilatura")
}
