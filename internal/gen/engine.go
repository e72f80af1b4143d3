package gen

import (
	"context"
	"errors"
)

// ErrNotConfigured is returned when the provider API key is missing.
var ErrNotConfigured = errors.New("generation engine is not configured")

// Attachment is an in-memory user upload. MIMEType is the declared
// media type of the part, not a sniffed one.
type Attachment struct {
	Filename string
	MIMEType string
	Data     []byte
}

// Request is one generation call: a composed prompt plus the image
// attachments that should accompany it.
type Request struct {
	Prompt      string
	Attachments []Attachment
}

// Engine produces raw model text for a request. Implementations make a
// single synchronous call with no retries.
type Engine interface {
	Generate(ctx context.Context, req Request) (string, error)
}
