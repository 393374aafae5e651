// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package scholar

import (
	"context"
	"errors"
	"fmt"
	"net"
)

var (
	// ErrUnauthorized reports an HTTP 401: the API key was rejected.
	ErrUnauthorized = errors.New("invalid API key")

	// ErrInsufficientCredits reports an HTTP 402: the account is out of credits.
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrNotFound reports an HTTP 404 for the requested paper or author.
	ErrNotFound = errors.New("not found")

	// ErrMissingAPIKey is returned before any request when no key is configured.
	ErrMissingAPIKey = errors.New("API key is required")
)

// APIError is a non-200 response from the graph API.
type APIError struct {
	StatusCode int
	Path       string
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("API returned status %d", e.StatusCode)
}

// Unwrap maps well-known status codes to sentinel errors so callers can
// use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.StatusCode {
	case 401:
		return ErrUnauthorized
	case 402:
		return ErrInsufficientCredits
	case 404:
		return ErrNotFound
	}
	return nil
}

// TransportError is a failure to complete the HTTP exchange at all
// (DNS, connection refused, TLS, timeout).
type TransportError struct {
	Path string
	Err  error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("requesting %s: %v", e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsTimeout reports whether err is a request timeout, either from the HTTP
// client deadline or from the caller's context.
func IsTimeout(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var ne net.Error
	return errors.As(err, &ne) && ne.Timeout()
}

// IsAbort reports whether err should stop a multi-request tool outright
// rather than being reported against a single item.
func IsAbort(err error) bool {
	return errors.Is(err, ErrUnauthorized) || errors.Is(err, ErrInsufficientCredits) || errors.Is(err, ErrMissingAPIKey)
}
