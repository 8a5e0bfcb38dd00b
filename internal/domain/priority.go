package domain

import (
	"fmt"
	"strings"
)

// Priority is the coarse priority label attached to a task.
type Priority string

// Possible priority values
const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

// Urgency score bounds
const (
	MinUrgencyScore     = 1
	MaxUrgencyScore     = 10
	NeutralUrgencyScore = 5

	// highPriorityThreshold is the lowest score labelled high.
	highPriorityThreshold = 8
)

// PriorityFromScore maps an urgency score onto its priority label.
// Scores of 8 and above are high, 5 to 7 are medium and anything lower is low.
func PriorityFromScore(score int) Priority {
	switch {
	case score >= highPriorityThreshold:
		return PriorityHigh
	case score >= NeutralUrgencyScore:
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// ParsePriority converts a free-form label into a Priority. Matching ignores
// case and surrounding whitespace.
func ParsePriority(s string) (Priority, error) {
	p := Priority(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	return p, nil
}

// Valid reports whether p is one of the known priority labels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	default:
		return false
	}
}

// ClampUrgency clamps score into [MinUrgencyScore, MaxUrgencyScore].
func ClampUrgency(score int) int {
	if score < MinUrgencyScore {
		return MinUrgencyScore
	}
	if score > MaxUrgencyScore {
		return MaxUrgencyScore
	}
	return score
}
