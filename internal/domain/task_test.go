package domain

import (
	"encoding/json"
	"testing"
)

func TestTaskSnapshotValidate(t *testing.T) {
	t.Parallel() // Enable parallel execution

	if err := (TaskSnapshot{Title: "Write report"}).Validate(); err != nil {
		t.Errorf("Expected no error, got %v", err)
	}

	for _, title := range []string{"", "   "} {
		if err := (TaskSnapshot{Title: title}).Validate(); err != ErrEmptyTaskTitle {
			t.Errorf("Title %q: expected %v, got %v", title, ErrEmptyTaskTitle, err)
		}
	}
}

func TestNewTaskSummaryNeverNil(t *testing.T) {
	t.Parallel() // Enable parallel execution

	summary := NewTaskSummary("No tasks to summarize", nil, nil)
	if summary.Insights == nil || summary.Recommendations == nil {
		t.Fatal("Expected empty, non-nil slices")
	}

	data, err := json.Marshal(summary)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	expected := `{"summary":"No tasks to summarize","insights":[],"recommendations":[]}`
	if string(data) != expected {
		t.Errorf("Expected %s, got %s", expected, data)
	}
}

func TestOperatingModeString(t *testing.T) {
	t.Parallel() // Enable parallel execution

	if ModeAI.String() != "ai" {
		t.Errorf("Expected ai, got %s", ModeAI.String())
	}
	if ModeHeuristic.String() != "heuristic" {
		t.Errorf("Expected heuristic, got %s", ModeHeuristic.String())
	}
}
