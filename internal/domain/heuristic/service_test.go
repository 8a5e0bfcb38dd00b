package heuristic

import (
	"testing"
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

func TestDefaultService(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewDefaultService()

	result := service.Analyze(domain.TaskSnapshot{Title: "Plan", DueDate: dueIn(2 * time.Hour)}, referenceNow)

	if result.SuggestedPriority != domain.PriorityHigh {
		t.Errorf("Expected priority high, got %s", result.SuggestedPriority)
	}
	if result.UrgencyScore < 8 {
		t.Errorf("Expected score of at least 8, got %d", result.UrgencyScore)
	}
}

func TestNewServiceWithNilParams(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewServiceWithParams(nil)

	result := service.Analyze(domain.TaskSnapshot{Title: "Someday idea"}, referenceNow)

	if result.UrgencyScore != 3 {
		t.Errorf("Expected score 3, got %d", result.UrgencyScore)
	}
}

func TestNewParamsOverrides(t *testing.T) {
	t.Parallel() // Enable parallel execution
	service := NewServiceWithParams(NewParams(ParamsConfig{
		HighKeywords:            []string{"  SHIP ", ""},
		ComplexityWordThreshold: 3,
	}))

	shipped := service.Analyze(domain.TaskSnapshot{Title: "Ship release"}, referenceNow)
	if shipped.UrgencyScore != 8 {
		t.Errorf("Expected custom keyword to score 8, got %d", shipped.UrgencyScore)
	}

	replaced := service.Analyze(domain.TaskSnapshot{Title: "Urgent"}, referenceNow)
	if replaced.UrgencyScore != 5 {
		t.Errorf("Expected replaced keyword set to ignore 'urgent', got %d", replaced.UrgencyScore)
	}

	detailed := service.Analyze(domain.TaskSnapshot{Title: "Plan", Description: "one two three"}, referenceNow)
	if detailed.UrgencyScore != 6 {
		t.Errorf("Expected lowered complexity threshold to score 6, got %d", detailed.UrgencyScore)
	}

	defaults := NewDefaultParams()
	if defaults.KeywordRules[0].Keywords[0] != "urgent" {
		t.Errorf("Expected default keyword sets to be untouched, got %v", defaults.KeywordRules[0].Keywords)
	}
}
