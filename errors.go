package briefer

import (
	"errors"
	"fmt"
)

// Application error codes.
//
// The generic codes (EINVALID, ENOTFOUND, EINTERNAL) cover validation,
// lookup, and unexpected failures. The remaining codes form the pipeline's
// failure taxonomy: extraction, provider, and orchestration failures each
// map to exactly one code so callers can render a specific message.
const (
	EINVALID  = "invalid"
	ENOTFOUND = "not_found"
	EINTERNAL = "internal"

	// EEXTRACTION means no extraction method passed the quality gate.
	EEXTRACTION = "extraction_failed"

	// Provider failures. ERATELIMIT and EUNAVAILABLE are retryable;
	// EAUTH and EBADRESPONSE are not.
	EAUTH        = "auth"
	ERATELIMIT   = "rate_limit"
	EUNAVAILABLE = "unavailable"
	EBADRESPONSE = "bad_response"

	// EPIPELINE means the run as a whole failed: every chunk call failed,
	// the single-pass call failed after exhausting retries, or the reduce
	// stage exceeded its round limit.
	EPIPELINE = "pipeline_failed"
)

// Error represents an application error with a machine-readable code
// and a human-readable message.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("briefer error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper to construct an Error with a formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors return EINTERNAL; nil returns the empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return a generic message; nil returns "".
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}
