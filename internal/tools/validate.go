// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package tools

import (
	"context"
	"errors"
	"time"

	"github.com/pdiddy/scholar-tools/internal/render"
	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// ErrInvalidCredentials wraps every credential check failure.
var ErrInvalidCredentials = errors.New("credential check failed")

// CredentialError reports why an API key was rejected. Message is the text
// shown to whoever configured the key.
type CredentialError struct {
	Message string
	Err     error
}

func (e *CredentialError) Error() string { return e.Message }

func (e *CredentialError) Is(target error) bool { return target == ErrInvalidCredentials }

func (e *CredentialError) Unwrap() error { return e.Err }

// Validator confirms an API key is accepted by issuing one cheap search.
type Validator struct {
	client  *scholar.Client
	timeout time.Duration
}

// NewValidator creates a Validator using c's host and transport. timeout
// bounds the check; zero means no extra bound.
func NewValidator(c *scholar.Client, timeout time.Duration) *Validator {
	return &Validator{client: c, timeout: timeout}
}

// Validate checks key. An empty key fails without a request.
func (v *Validator) Validate(ctx context.Context, key string) error {
	if key == "" {
		return &CredentialError{Message: render.CredentialError(scholar.ErrMissingAPIKey), Err: scholar.ErrMissingAPIKey}
	}
	if v.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, v.timeout)
		defer cancel()
	}

	c := *v.client
	c.APIKey = key
	c.MaxRetries = 0
	if err := c.Ping(ctx); err != nil {
		return &CredentialError{Message: render.CredentialError(err), Err: err}
	}
	return nil
}
