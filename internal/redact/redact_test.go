package redact_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/phrazzld/taskflow-api/internal/redact"
	"github.com/stretchr/testify/assert"
)

func TestRedactString(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "no sensitive data",
			input:    "model returned no candidates",
			expected: "model returned no candidates",
		},
		{
			name:     "google API key",
			input:    "invalid credential AIzaSyA1234567890abcdefghijklmnopq",
			expected: "invalid credential [REDACTED_KEY]",
		},
		{
			name:     "API key parameter",
			input:    "Using api_key=abcdef1234567890ghijklmnop for authentication",
			expected: "Using [REDACTED_KEY] for authentication",
		},
		{
			name:     "bearer token",
			input:    "Authorization: Bearer abc123def456ghi789",
			expected: "Authorization: [REDACTED_TOKEN]",
		},
		{
			name:     "email address",
			input:    "quota exceeded for owner@example.com",
			expected: "quota exceeded for [REDACTED_EMAIL]",
		},
		{
			name:     "host and port",
			input:    "dial tcp: lookup generativelanguage.googleapis.com:443 failed",
			expected: "dial tcp: lookup [REDACTED_HOST] failed",
		},
		{
			name:     "URL path",
			input:    "unexpected status from /v1beta/models/gemini-2.0-flash:generateContent",
			expected: "unexpected status from [REDACTED_PATH]:generateContent",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, redact.String(tt.input))
		})
	}
}

func TestRedactError(t *testing.T) {
	assert.Equal(t, "", redact.Error(nil))

	err := fmt.Errorf("gemini call failed: %w", errors.New("token=supersecretvalue123 rejected"))
	redacted := redact.Error(err)

	assert.NotContains(t, redacted, "supersecretvalue123")
	assert.Contains(t, redacted, "gemini call failed")
	assert.Contains(t, redacted, "[REDACTED_KEY]")
}
