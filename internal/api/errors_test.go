package api

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestMapErrorToStatusCode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"empty title", domain.ErrEmptyTaskTitle, http.StatusBadRequest},
		{"wrapped empty title", fmt.Errorf("snapshot: %w", domain.ErrEmptyTaskTitle), http.StatusBadRequest},
		{"invalid priority", domain.ErrInvalidPriority, http.StatusBadRequest},
		{"validation", domain.ErrValidation, http.StatusBadRequest},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.expected, MapErrorToStatusCode(tc.err))
		})
	}
}

func TestGetSafeErrorMessage(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Task title is required", GetSafeErrorMessage(domain.ErrEmptyTaskTitle))
	assert.Equal(t, "Invalid priority", GetSafeErrorMessage(domain.ErrInvalidPriority))
	assert.Equal(t, "Validation failed", GetSafeErrorMessage(domain.ErrValidation))
	assert.Equal(t, "An unexpected error occurred", GetSafeErrorMessage(nil))

	// Internal details never reach the client
	internal := errors.New("dial tcp 10.0.0.5:5432: connection refused")
	assert.NotContains(t, GetSafeErrorMessage(internal), "10.0.0.5")
}
