package handle

import (
	"errors"
	"net/http"
	"strings"

	"google.golang.org/api/googleapi"

	"github.com/abhyasttechno/awagen-api/internal/gen"
)

const (
	msgNotConfigured = "Server is not configured with the API key or failed to initialize API client."
	msgAuth          = "API authentication failed. Check your GEMINI_API_KEY."
	msgQuota         = "API quota exceeded. Please try again later."
	msgRateLimit     = "API rate limit exceeded. Please try again later."
)

// classifyProviderError maps a generation failure to the user-facing
// message of the 500 response. Typed googleapi errors are checked
// first, then the error text; anything unmatched becomes generic.
func classifyProviderError(err error) string {
	if errors.Is(err, gen.ErrNotConfigured) {
		return msgNotConfigured
	}

	var gerr *googleapi.Error
	if errors.As(err, &gerr) {
		switch gerr.Code {
		case http.StatusUnauthorized, http.StatusForbidden:
			return msgAuth
		case http.StatusTooManyRequests:
			return msgQuota
		case http.StatusBadRequest:
			return "Invalid input sent to AI model: " + err.Error()
		}
	}

	msg := err.Error()
	switch {
	case strings.Contains(msg, "API key") || strings.Contains(msg, "authentication"):
		return msgAuth
	case strings.Contains(msg, "quota"):
		return msgQuota
	case strings.Contains(msg, "rate limit"):
		return msgRateLimit
	case strings.Contains(msg, "invalid_argument") || strings.Contains(msg, "Bad Request"):
		return "Invalid input sent to AI model: " + msg
	default:
		return "An unexpected error occurred: " + msg
	}
}
