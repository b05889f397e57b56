package pipeline

import (
	"context"
	"errors"
	"strings"
	"time"

	"briefer"
)

// DefaultRetryDelays returns the backoff delays for retryable provider
// errors: 1s, 2s, 4s (3 retries, 4 total attempts).
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// complete issues one provider call with rate limiting, a per-call
// timeout, and bounded exponential backoff. Only rate-limit, availability,
// and timeout failures are retried; auth and malformed-response failures
// surface immediately since retrying cannot fix them.
func (s *Summarizer) complete(ctx context.Context, provider briefer.Provider, prompt string, maxOutputWords int) (string, error) {
	delays := s.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}
	maxAttempts := len(delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return "", err
			}
		}

		callCtx, cancel := context.WithTimeout(ctx, s.callTimeout())
		out, err := provider.Complete(callCtx, prompt, maxOutputWords)
		cancel()

		if err == nil {
			if strings.TrimSpace(out) == "" {
				return "", briefer.Errorf(briefer.EBADRESPONSE, "provider returned empty output")
			}
			return out, nil
		}
		lastErr = err

		// The caller going away is not a provider failure.
		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		if !retryable(err) || attempt >= maxAttempts-1 {
			break
		}

		s.log().Debug("retrying provider call",
			"attempt", attempt+2,
			"delay", delays[attempt],
			"error", errText(err),
		)

		select {
		case <-ctx.Done():
			return "", ctx.Err()
		case <-time.After(delays[attempt]):
		}
	}

	return "", lastErr
}

// retryable reports whether a provider error is worth retrying. A per-call
// timeout counts as a transient failure as long as the parent context is
// still live.
func retryable(err error) bool {
	switch briefer.ErrorCode(err) {
	case briefer.ERATELIMIT, briefer.EUNAVAILABLE:
		return true
	}
	return errors.Is(err, context.DeadlineExceeded)
}
