// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package render

import (
	"errors"
	"fmt"

	"github.com/pdiddy/scholar-tools/internal/scholar"
)

// InsufficientCreditsText is the user-facing text for an HTTP 402.
const InsufficientCreditsText = "Insufficient credits. Please recharge at ai4scholar.net"

// ErrorMessage maps a client error to the text shown to the user. notFound
// is the message for an HTTP 404 (e.g. "Paper not found with ID: x"); pass
// "" for endpoints where a 404 is just another bad status.
func ErrorMessage(err error, notFound string) string {
	var te *scholar.TransportError
	switch {
	case errors.Is(err, scholar.ErrMissingAPIKey):
		return "Error: API key is required"
	case errors.Is(err, scholar.ErrUnauthorized):
		return "Error: Invalid API key"
	case errors.Is(err, scholar.ErrInsufficientCredits):
		return "Error: " + InsufficientCreditsText
	case errors.Is(err, scholar.ErrNotFound) && notFound != "":
		return "Error: " + notFound
	case scholar.StatusCode(err) != 0:
		return fmt.Sprintf("Error: API returned status %d", scholar.StatusCode(err))
	case scholar.IsTimeout(err):
		return "Error: Request timeout. Please try again."
	case errors.As(err, &te):
		return "Error: Network error - " + te.Err.Error()
	default:
		return "Error: " + err.Error()
	}
}

// CredentialError maps a failed credential check to its message. The
// wording differs slightly from tool errors because it is shown by the host
// when the key is first configured.
func CredentialError(err error) string {
	var te *scholar.TransportError
	switch {
	case errors.Is(err, scholar.ErrMissingAPIKey):
		return "API key is required"
	case errors.Is(err, scholar.ErrUnauthorized):
		return "Invalid API key"
	case errors.Is(err, scholar.ErrInsufficientCredits):
		return InsufficientCreditsText
	case scholar.StatusCode(err) != 0:
		return fmt.Sprintf("API error: %d", scholar.StatusCode(err))
	case scholar.IsTimeout(err):
		return "API request timeout"
	case errors.As(err, &te):
		return "Network error: " + te.Err.Error()
	default:
		return err.Error()
	}
}
