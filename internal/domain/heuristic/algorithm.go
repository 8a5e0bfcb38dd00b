package heuristic

import (
	"strings"
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// scoreAdjustment is the outcome of a single rule.
type scoreAdjustment struct {
	delta  int
	floor  int
	reason string
}

// dueDateAdjustment finds the due-date band for the task.
//
// Parameters:
//   - due: The task's due date, nil when absent
//   - now: The reference time, usually the time of the request
//   - params: Configuration parameters for the heuristic
//
// Returns:
//   - The adjustment for the matching band
//   - false when the task has no due date or no band matched
//
// A due date without zone information must already have been placed in UTC
// by the caller; time.Time carries no "naive" state of its own.
func dueDateAdjustment(due *time.Time, now time.Time, params *Params) (scoreAdjustment, bool) {
	if due == nil {
		return scoreAdjustment{}, false
	}

	deltaHours := due.Sub(now).Hours()
	for _, bucket := range params.DueBuckets {
		if deltaHours <= bucket.UpToHours {
			return scoreAdjustment{
				delta:  bucket.Adjustment,
				floor:  bucket.Floor,
				reason: bucket.Reason,
			}, true
		}
	}

	return scoreAdjustment{}, false
}

// keywordAdjustments applies every keyword rule whose set intersects the
// text. Matching is by substring on the lower-cased title and description.
func keywordAdjustments(title, description string, params *Params) []scoreAdjustment {
	text := strings.ToLower(title + " " + description)

	var adjustments []scoreAdjustment
	for _, rule := range params.KeywordRules {
		if containsAny(text, rule.Keywords) {
			adjustments = append(adjustments, scoreAdjustment{
				delta:  rule.Adjustment,
				reason: rule.Reason,
			})
		}
	}
	return adjustments
}

// complexityAdjustment rewards long descriptions.
func complexityAdjustment(description string, params *Params) (scoreAdjustment, bool) {
	if len(strings.Fields(description)) < params.ComplexityWordThreshold {
		return scoreAdjustment{}, false
	}
	return scoreAdjustment{
		delta:  params.ComplexityAdjustment,
		reason: params.ComplexityReason,
	}, true
}

// analyze computes the priority judgment for a task at time now.
//
// Algorithm behavior:
//   - Starts from params.BaseScore
//   - Applies at most one due-date band, then every matching keyword rule,
//     then the complexity rule
//   - Clamps into [1, 10] and raises the result to any floor a rule set
//   - Derives the label from the final score
//   - Joins the reasons of the fired rules, in evaluation order, with "; "
//
// analyze has no side effects and reads no clock: identical inputs always
// produce identical output.
func analyze(task domain.TaskSnapshot, now time.Time, params *Params) domain.PriorityAnalysis {
	score := params.BaseScore
	floor := 0
	var reasons []string

	apply := func(adj scoreAdjustment) {
		score += adj.delta
		if adj.floor > 0 {
			floor = max(floor, adj.floor)
			score = max(score, adj.floor)
		}
		reasons = append(reasons, adj.reason)
	}

	if adj, ok := dueDateAdjustment(task.DueDate, now, params); ok {
		apply(adj)
	}
	for _, adj := range keywordAdjustments(task.Title, task.Description, params) {
		apply(adj)
	}
	if adj, ok := complexityAdjustment(task.Description, params); ok {
		apply(adj)
	}

	score = max(domain.ClampUrgency(score), floor)

	reasoning := strings.Join(reasons, "; ")
	if reasoning == "" {
		reasoning = params.DefaultReasoning
	}

	return domain.PriorityAnalysis{
		SuggestedPriority: domain.PriorityFromScore(score),
		Reasoning:         reasoning,
		UrgencyScore:      score,
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if keyword != "" && strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}

func normalizeKeywords(keywords []string) []string {
	normalized := make([]string, 0, len(keywords))
	for _, keyword := range keywords {
		if k := strings.ToLower(strings.TrimSpace(keyword)); k != "" {
			normalized = append(normalized, k)
		}
	}
	return normalized
}
