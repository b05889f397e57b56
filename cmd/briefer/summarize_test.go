package main_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"briefer"
	main "briefer/cmd/briefer"
	"briefer/mock"
	"briefer/pipeline"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func articleText(n int) string {
	var sb strings.Builder
	for briefer.CountWords(sb.String()) < n {
		sb.WriteString("The quick brown fox jumps over the lazy dog. ")
	}
	return strings.TrimSpace(sb.String())
}

// testDeps wires a full mock dependency set around the given provider
// output.
func testDeps(t *testing.T, provider briefer.Provider) (*main.Dependencies, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()

	registry := briefer.NewRegistry()
	registry.Register("openai", provider)

	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}

	return &main.Dependencies{
		Ctx:    context.Background(),
		Stdout: stdout,
		Stderr: stderr,
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "<html><body><p>" + articleText(100) + "</p></body></html>", nil
			},
			CloseFn: func() error { return nil },
		},
		Extractor: &briefer.ExtractorChain{
			Extractors: []briefer.Extractor{&mock.Extractor{
				ExtractFn: func(html string) (*briefer.ExtractResult, error) {
					return &briefer.ExtractResult{Title: "Test Article", Text: articleText(100)}, nil
				},
			}},
		},
		Providers:  registry,
		Summarizer: &pipeline.Summarizer{Providers: registry},
	}, stdout, stderr
}

func TestSummarizeCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("prints summary with title and word count", func(t *testing.T) {
		t.Parallel()

		provider := &mock.Provider{
			CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
				return "- First point.\n- Second point.", nil
			},
		}
		deps, stdout, _ := testDeps(t, provider)

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "points",
			MaxWords: 200,
			Provider: "openai",
			Output:   "console",
			NoSave:   true,
		}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "Test Article")
		assert.Contains(t, output, "- First point.")
		assert.Contains(t, output, "6 words")
	})

	t.Run("saves summary to history", func(t *testing.T) {
		t.Parallel()

		provider := &mock.Provider{
			CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
				return "A summary.", nil
			},
		}
		deps, _, _ := testDeps(t, provider)

		var saved *briefer.Summary
		deps.History = &mock.HistoryService{
			CreateSummaryFn: func(ctx context.Context, summary *briefer.Summary) error {
				saved = summary
				return nil
			},
		}

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "points",
			MaxWords: 200,
			Provider: "openai",
			Output:   "console",
		}

		require.NoError(t, cmd.Run(deps))

		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com/a", saved.URL)
		assert.Equal(t, "Test Article", saved.Title)
		assert.Equal(t, "A summary.", saved.Text)
		assert.NotEmpty(t, saved.ContentHash)
	})

	t.Run("no-save skips history", func(t *testing.T) {
		t.Parallel()

		provider := &mock.Provider{
			CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
				return "A summary.", nil
			},
		}
		deps, _, _ := testDeps(t, provider)

		deps.History = &mock.HistoryService{
			CreateSummaryFn: func(ctx context.Context, summary *briefer.Summary) error {
				t.Fatal("history must not be written with --no-save")
				return nil
			},
		}

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "points",
			MaxWords: 200,
			Provider: "openai",
			Output:   "console",
			NoSave:   true,
		}

		require.NoError(t, cmd.Run(deps))
	})

	t.Run("history failure is a warning, not an error", func(t *testing.T) {
		t.Parallel()

		provider := &mock.Provider{
			CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
				return "A summary.", nil
			},
		}
		deps, _, stderr := testDeps(t, provider)

		deps.History = &mock.HistoryService{
			CreateSummaryFn: func(ctx context.Context, summary *briefer.Summary) error {
				return briefer.Errorf(briefer.EINTERNAL, "disk full")
			},
		}

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "points",
			MaxWords: 200,
			Provider: "openai",
			Output:   "console",
		}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "failed to save to history")
	})

	t.Run("fetch failure surfaces on stderr", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t, &mock.Provider{})
		deps.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return "", briefer.Errorf(briefer.EUNAVAILABLE, "connection refused")
			},
		}

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "points",
			MaxWords: 200,
			Provider: "openai",
			Output:   "console",
			NoSave:   true,
		}

		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "failed to fetch article")
	})

	t.Run("extraction failure explains likely causes", func(t *testing.T) {
		t.Parallel()

		deps, _, stderr := testDeps(t, &mock.Provider{})
		deps.Extractor = &briefer.ExtractorChain{
			Extractors: []briefer.Extractor{&mock.Extractor{
				ExtractFn: func(html string) (*briefer.ExtractResult, error) {
					return &briefer.ExtractResult{Text: "too short"}, nil
				},
			}},
		}

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "points",
			MaxWords: 200,
			Provider: "openai",
			Output:   "console",
			NoSave:   true,
		}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, briefer.EEXTRACTION, briefer.ErrorCode(err))
		assert.Contains(t, stderr.String(), "paywall")
	})

	t.Run("auth failure prints a credential hint", func(t *testing.T) {
		t.Parallel()

		provider := &mock.Provider{
			CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
				return "", briefer.Errorf(briefer.EAUTH, "invalid api key")
			},
		}
		deps, _, stderr := testDeps(t, provider)

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "points",
			MaxWords: 200,
			Provider: "openai",
			Output:   "console",
			NoSave:   true,
		}

		require.Error(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "Check the API key")
	})

	t.Run("truncation is noted on stderr", func(t *testing.T) {
		t.Parallel()

		provider := &mock.Provider{
			CompleteFn: func(ctx context.Context, prompt string, maxOutputWords int) (string, error) {
				return articleText(300) + ".", nil
			},
		}
		deps, _, stderr := testDeps(t, provider)

		cmd := &main.SummarizeCmd{
			URL:      "https://example.com/a",
			Format:   "para",
			MaxWords: 50,
			Provider: "openai",
			Output:   "console",
			NoSave:   true,
		}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stderr.String(), "truncated")
	})
}
