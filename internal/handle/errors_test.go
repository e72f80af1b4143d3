package handle

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/googleapi"

	"github.com/abhyasttechno/awagen-api/internal/gen"
)

func TestClassifyProviderError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{
			name: "not configured sentinel",
			err:  fmt.Errorf("engine: %w", gen.ErrNotConfigured),
			want: msgNotConfigured,
		},
		{
			name: "googleapi unauthorized",
			err:  &googleapi.Error{Code: 401, Message: "invalid key"},
			want: msgAuth,
		},
		{
			name: "googleapi forbidden",
			err:  &googleapi.Error{Code: 403, Message: "permission denied"},
			want: msgAuth,
		},
		{
			name: "googleapi too many requests",
			err:  &googleapi.Error{Code: 429, Message: "resource exhausted"},
			want: msgQuota,
		},
		{
			name: "wrapped googleapi bad request",
			err:  fmt.Errorf("generate: %w", &googleapi.Error{Code: 400, Message: "bad image"}),
			want: "Invalid input sent to AI model: generate: googleapi: Error 400: bad image",
		},
		{
			name: "text mentions API key",
			err:  errors.New("API key not valid"),
			want: msgAuth,
		},
		{
			name: "text mentions authentication",
			err:  errors.New("authentication handshake failed"),
			want: msgAuth,
		},
		{
			name: "text mentions quota",
			err:  errors.New("quota exceeded for model"),
			want: msgQuota,
		},
		{
			name: "text mentions rate limit",
			err:  errors.New("rate limit reached"),
			want: msgRateLimit,
		},
		{
			name: "text mentions invalid_argument",
			err:  errors.New("rpc error: code = invalid_argument"),
			want: "Invalid input sent to AI model: rpc error: code = invalid_argument",
		},
		{
			name: "unmatched",
			err:  errors.New("connection reset by peer"),
			want: "An unexpected error occurred: connection reset by peer",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifyProviderError(tt.err))
		})
	}
}
