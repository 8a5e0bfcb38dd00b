package domain

import (
	"errors"
	"testing"
)

func TestPriorityFromScore(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := []struct {
		score    int
		expected Priority
	}{
		{score: 1, expected: PriorityLow},
		{score: 4, expected: PriorityLow},
		{score: 5, expected: PriorityMedium},
		{score: 7, expected: PriorityMedium},
		{score: 8, expected: PriorityHigh},
		{score: 10, expected: PriorityHigh},
	}

	for _, tc := range testCases {
		if got := PriorityFromScore(tc.score); got != tc.expected {
			t.Errorf("score %d: expected %s, got %s", tc.score, tc.expected, got)
		}
	}
}

func TestParsePriority(t *testing.T) {
	t.Parallel() // Enable parallel execution

	valid := map[string]Priority{
		"low":       PriorityLow,
		"Medium":    PriorityMedium,
		"  HIGH \n": PriorityHigh,
	}
	for input, expected := range valid {
		got, err := ParsePriority(input)
		if err != nil {
			t.Errorf("ParsePriority(%q): unexpected error %v", input, err)
		}
		if got != expected {
			t.Errorf("ParsePriority(%q): expected %s, got %s", input, expected, got)
		}
	}

	for _, input := range []string{"", "urgent", "med", "critical"} {
		if _, err := ParsePriority(input); !errors.Is(err, ErrInvalidPriority) {
			t.Errorf("ParsePriority(%q): expected ErrInvalidPriority, got %v", input, err)
		}
	}
}

func TestClampUrgency(t *testing.T) {
	t.Parallel() // Enable parallel execution

	testCases := map[int]int{
		-7: 1,
		0:  1,
		1:  1,
		6:  6,
		10: 10,
		11: 10,
		42: 10,
	}
	for input, expected := range testCases {
		if got := ClampUrgency(input); got != expected {
			t.Errorf("ClampUrgency(%d): expected %d, got %d", input, expected, got)
		}
	}
}
