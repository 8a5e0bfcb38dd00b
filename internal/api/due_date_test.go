package api

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDueDate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected time.Time
		ok       bool
	}{
		{"RFC3339 with Z", "2025-03-10T12:00:00Z", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), true},
		{"RFC3339 with offset", "2025-03-10T14:00:00+02:00", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), true},
		{"fractional seconds", "2025-03-10T12:00:00.250Z", time.Date(2025, 3, 10, 12, 0, 0, 250_000_000, time.UTC), true},
		{"naive date-time is UTC", "2025-03-10T12:00:00", time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC), true},
		{"naive with fraction", "2025-03-10T12:00:00.5", time.Date(2025, 3, 10, 12, 0, 0, 500_000_000, time.UTC), true},
		{"date only", "2025-03-10", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"surrounding whitespace", " 2025-03-10 ", time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), true},
		{"empty", "", time.Time{}, false},
		{"garbage", "tomorrow", time.Time{}, false},
		{"impossible date", "2025-02-30", time.Time{}, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got, ok := ParseDueDate(tc.input)

			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.True(t, tc.expected.Equal(got), "expected %v, got %v", tc.expected, got)
				assert.Equal(t, time.UTC, got.Location())
			}
		})
	}
}
