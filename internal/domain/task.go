package domain

import (
	"strings"
	"time"
)

// TaskSnapshot is the subset of a task record needed to judge its priority.
// It carries no identity: callers build one per analysis request.
type TaskSnapshot struct {
	Title       string
	Description string
	// DueDate is nil when the task has no due date.
	DueDate *time.Time
}

// Validate checks that the snapshot carries a title.
func (t TaskSnapshot) Validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return ErrEmptyTaskTitle
	}
	return nil
}

// TaskRecord is a task as seen by the summary operation. Priority and Status
// are passed through verbatim from the owning task store.
type TaskRecord struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}
