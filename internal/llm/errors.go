package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrorKind classifies provider failures.
type ErrorKind int

const (
	KindUnavailable     ErrorKind = iota // Network failure or 5xx
	KindRateLimited                      // 429
	KindInvalidResponse                  // Output did not match the schema
	KindTruncated                        // Output hit the token limit
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate limited"
	case KindInvalidResponse:
		return "invalid response"
	case KindTruncated:
		return "truncated"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Error is returned by every provider in this package.
type Error struct {
	Kind     ErrorKind
	Provider string

	// RetryAfter is the server-suggested wait for KindRateLimited.
	RetryAfter time.Duration

	// Content holds the offending output for KindInvalidResponse/KindTruncated.
	Content json.RawMessage

	Err error
}

func (e *Error) Error() string {
	prefix := "llm"
	if e.Provider != "" {
		prefix = "llm " + e.Provider
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %s", prefix, e.Kind)
	}
	return fmt.Sprintf("%s: %s: %v", prefix, e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// IsKind reports whether err wraps an *Error of kind k.
func IsKind(err error, k ErrorKind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

// fromStatus maps an HTTP status reported by an SDK to an *Error.
func fromStatus(provider string, status int, err error) *Error {
	if status == http.StatusTooManyRequests {
		return &Error{Kind: KindRateLimited, Provider: provider, Err: err}
	}
	return &Error{Kind: KindUnavailable, Provider: provider, Err: err}
}

func invalidResponse(provider string, content json.RawMessage, err error) *Error {
	return &Error{Kind: KindInvalidResponse, Provider: provider, Content: content, Err: err}
}
