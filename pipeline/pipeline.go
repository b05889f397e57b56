// Package pipeline orchestrates article summarization. It decides between
// the single-pass and map-reduce paths based on content size, drives
// concurrent chunk summarization with a join barrier, and enforces the
// word budget backstop on the final output.
package pipeline

import (
	"context"
	"log/slog"
	"math"
	"strings"
	"time"

	"briefer"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Tunable defaults. These are applied when the corresponding Summarizer
// field is zero.
const (
	// DefaultSingleCallThreshold is the clean-text word count above which
	// the map-reduce path is taken instead of a single model call.
	DefaultSingleCallThreshold = 800

	// DefaultExpansionFactor inflates per-chunk budgets so the reduce
	// stage has material to select from instead of receiving partials
	// that were already over-compressed.
	DefaultExpansionFactor = 1.3

	// DefaultTolerance is the accepted overage on the final word budget
	// before the truncation backstop kicks in.
	DefaultTolerance = 0.10

	// DefaultMaxReduceRounds bounds reduce-of-reduce recursion. Beyond
	// this the run fails rather than recursing unbounded.
	DefaultMaxReduceRounds = 3

	// DefaultConcurrency bounds in-flight map-stage provider calls.
	DefaultConcurrency = 4

	// DefaultCallTimeout bounds a single provider call.
	DefaultCallTimeout = 120 * time.Second
)

// Summarizer runs the extraction-to-summary pipeline against a registry
// of language-model providers.
type Summarizer struct {
	Providers *briefer.Registry

	// Concurrency bounds in-flight chunk summarization calls.
	Concurrency int

	// SingleCallThreshold is the word count above which map-reduce is used.
	SingleCallThreshold int

	// TargetChunkWords is the soft cap for chunk sizes.
	TargetChunkWords int

	// ExpansionFactor inflates map-stage word budgets (must be > 1).
	ExpansionFactor float64

	// Tolerance is the accepted fraction of budget overage.
	Tolerance float64

	// MaxReduceRounds bounds intermediate reduce recursion.
	MaxReduceRounds int

	// RetryDelays are the backoff delays for retryable provider errors.
	RetryDelays []time.Duration

	// CallTimeout bounds each provider call.
	CallTimeout time.Duration

	// Limiter, if set, paces provider calls.
	Limiter *rate.Limiter

	// Logger, if set, receives progress and degradation events.
	Logger *slog.Logger
}

// Summarize produces a summary of article.CleanText honoring the request's
// format and word budget. Short articles take the single-pass path; long
// ones are chunked, mapped concurrently, and reduced.
func (s *Summarizer) Summarize(ctx context.Context, article *briefer.Article, req briefer.SummaryRequest) (*briefer.SummaryResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if article == nil || briefer.CountWords(article.CleanText) == 0 {
		return nil, briefer.Errorf(briefer.EINVALID, "article text required")
	}

	provider, err := s.Providers.Get(req.Provider)
	if err != nil {
		return nil, err
	}

	words := briefer.CountWords(article.CleanText)
	if words <= s.singleCallThreshold() {
		return s.singlePass(ctx, provider, article.CleanText, req)
	}
	return s.mapReduce(ctx, provider, article.CleanText, req, words)
}

// singlePass issues exactly one provider call with the final format and
// budget, bypassing chunking entirely.
func (s *Summarizer) singlePass(ctx context.Context, provider briefer.Provider, text string, req briefer.SummaryRequest) (*briefer.SummaryResult, error) {
	s.log().Debug("single-pass summarization",
		"provider", req.Provider,
		"words", briefer.CountWords(text),
	)

	out, err := s.complete(ctx, provider, FinalPrompt(text, req.Format, req.MaxWords), req.MaxWords)
	if err != nil {
		return nil, s.pipelineError(err, req.Provider, "single-pass call failed")
	}

	return s.finish(out, req, 0, 0), nil
}

// mapReduce chunks the text, summarizes chunks concurrently, and reduces
// the ordered partial summaries into the final output.
func (s *Summarizer) mapReduce(ctx context.Context, provider briefer.Provider, text string, req briefer.SummaryRequest, words int) (*briefer.SummaryResult, error) {
	chunks := briefer.ChunkText(text, s.targetChunkWords())

	s.log().Debug("map-reduce summarization",
		"provider", req.Provider,
		"words", words,
		"chunks", len(chunks),
	)

	partials, failed, err := s.mapChunks(ctx, provider, chunks, req)
	if err != nil {
		return nil, err
	}
	if failed > 0 {
		s.log().Warn("proceeding without failed chunks",
			"failed", failed,
			"total", len(chunks),
		)
	}

	out, err := s.reduce(ctx, provider, partials, req)
	if err != nil {
		return nil, err
	}

	return s.finish(out, req, len(chunks), failed), nil
}

// mapChunks summarizes chunks concurrently, bounded by the concurrency
// cap. Each call writes only into its own indexed slot; the join barrier
// is g.Wait, after which results are collected in index order regardless
// of completion order. Individual chunk failures are recorded, not
// propagated; only total failure (or context cancellation) is an error.
func (s *Summarizer) mapChunks(ctx context.Context, provider briefer.Provider, chunks []briefer.Chunk, req briefer.SummaryRequest) ([]*briefer.PartialSummary, int, error) {
	budget := mapBudget(req.MaxWords, len(chunks), s.expansionFactor())

	slots := make([]*briefer.PartialSummary, len(chunks))
	errs := make([]error, len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency())

	for i, chunk := range chunks {
		g.Go(func() error {
			out, err := s.complete(gctx, provider, MapPrompt(chunk.Text, budget), budget)
			if err != nil {
				errs[i] = err
				return nil
			}
			slots[i] = &briefer.PartialSummary{
				ChunkIndex: chunk.Index,
				Text:       strings.TrimSpace(out),
				WordCount:  briefer.CountWords(out),
			}
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	partials := make([]*briefer.PartialSummary, 0, len(slots))
	var failed int
	var lastErr error
	for i, p := range slots {
		if p == nil {
			failed++
			lastErr = errs[i]
			s.log().Warn("chunk summarization failed",
				"chunk", i,
				"error", errText(errs[i]),
			)
			continue
		}
		partials = append(partials, p)
	}

	if len(partials) == 0 {
		return nil, failed, briefer.Errorf(briefer.EPIPELINE,
			"all %d chunk summaries failed (provider %s): %s",
			len(chunks), req.Provider, errText(lastErr))
	}

	return partials, failed, nil
}

// reduce joins partial summaries in chunk-index order and issues the
// synthesis call that applies the requested format and budget. If the
// joined intermediate text is still too long for one call, it is
// re-chunked and re-summarized, at most MaxReduceRounds times.
func (s *Summarizer) reduce(ctx context.Context, provider briefer.Provider, partials []*briefer.PartialSummary, req briefer.SummaryRequest) (string, error) {
	joined := joinPartials(partials)

	for rounds := 0; briefer.CountWords(joined) > s.singleCallThreshold(); rounds++ {
		if rounds >= s.maxReduceRounds() {
			return "", briefer.Errorf(briefer.EPIPELINE,
				"intermediate text still too long after %d reduce rounds (provider %s)",
				rounds, req.Provider)
		}

		s.log().Debug("re-reducing intermediate text",
			"round", rounds+1,
			"words", briefer.CountWords(joined),
		)

		chunks := briefer.ChunkText(joined, s.targetChunkWords())
		reduced, _, err := s.mapChunks(ctx, provider, chunks, req)
		if err != nil {
			return "", err
		}
		joined = joinPartials(reduced)
	}

	out, err := s.complete(ctx, provider, FinalPrompt(joined, req.Format, req.MaxWords), req.MaxWords)
	if err != nil {
		return "", s.pipelineError(err, req.Provider, "reduce call failed")
	}
	return out, nil
}

// finish applies the word budget backstop and assembles the result. Output
// within tolerance passes through; anything longer is truncated at a
// sentence boundary inside the budget and flagged.
func (s *Summarizer) finish(out string, req briefer.SummaryRequest, chunksTotal, chunksFailed int) *briefer.SummaryResult {
	text := strings.TrimSpace(out)
	wordCount := briefer.CountWords(text)

	truncated := false
	limit := int(math.Floor(float64(req.MaxWords) * (1 + s.tolerance())))
	if wordCount > limit {
		s.log().Warn("summary exceeded budget, truncating",
			"words", wordCount,
			"budget", req.MaxWords,
		)
		text = briefer.Truncate(text, req.MaxWords)
		wordCount = briefer.CountWords(text)
		truncated = true
	}

	return &briefer.SummaryResult{
		Text:         text,
		WordCount:    wordCount,
		Truncated:    truncated,
		ChunksTotal:  chunksTotal,
		ChunksFailed: chunksFailed,
	}
}

// pipelineError maps a provider failure to the run-level error. Auth
// failures pass through unchanged so callers can render a credential
// hint; everything else becomes EPIPELINE with stage context.
func (s *Summarizer) pipelineError(err error, providerID, stage string) error {
	if briefer.ErrorCode(err) == briefer.EAUTH {
		return err
	}
	return briefer.Errorf(briefer.EPIPELINE, "%s (provider %s): %s", stage, providerID, errText(err))
}

// mapBudget is the per-chunk word allowance:
// ceil(maxWords / numChunks * expansionFactor).
func mapBudget(maxWords, numChunks int, expansionFactor float64) int {
	if numChunks <= 0 {
		numChunks = 1
	}
	return int(math.Ceil(float64(maxWords) / float64(numChunks) * expansionFactor))
}

// joinPartials concatenates partial summaries in chunk-index order with
// blank-line separators. The input is already index-ordered; the separator
// keeps section boundaries visible to the synthesis call.
func joinPartials(partials []*briefer.PartialSummary) string {
	parts := make([]string, 0, len(partials))
	for _, p := range partials {
		parts = append(parts, p.Text)
	}
	return strings.Join(parts, "\n\n")
}

func errText(err error) string {
	if err == nil {
		return "unknown error"
	}
	if msg := briefer.ErrorMessage(err); msg != "" && msg != "Internal error." {
		return msg
	}
	return err.Error()
}

func (s *Summarizer) concurrency() int {
	if s.Concurrency > 0 {
		return s.Concurrency
	}
	return DefaultConcurrency
}

func (s *Summarizer) singleCallThreshold() int {
	if s.SingleCallThreshold > 0 {
		return s.SingleCallThreshold
	}
	return DefaultSingleCallThreshold
}

func (s *Summarizer) targetChunkWords() int {
	if s.TargetChunkWords > 0 {
		return s.TargetChunkWords
	}
	return briefer.DefaultTargetChunkWords
}

func (s *Summarizer) expansionFactor() float64 {
	if s.ExpansionFactor > 1 {
		return s.ExpansionFactor
	}
	return DefaultExpansionFactor
}

func (s *Summarizer) tolerance() float64 {
	if s.Tolerance > 0 {
		return s.Tolerance
	}
	return DefaultTolerance
}

func (s *Summarizer) maxReduceRounds() int {
	if s.MaxReduceRounds > 0 {
		return s.MaxReduceRounds
	}
	return DefaultMaxReduceRounds
}

func (s *Summarizer) callTimeout() time.Duration {
	if s.CallTimeout > 0 {
		return s.CallTimeout
	}
	return DefaultCallTimeout
}

func (s *Summarizer) log() *slog.Logger {
	if s.Logger != nil {
		return s.Logger
	}
	return slog.New(slog.DiscardHandler)
}
