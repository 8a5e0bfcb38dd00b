package domain

// PriorityAnalysis is the structured priority judgment for a single task.
// Every field is always populated.
type PriorityAnalysis struct {
	SuggestedPriority Priority `json:"suggested_priority"`
	Reasoning         string   `json:"reasoning"`
	UrgencyScore      int      `json:"urgency_score"`
}

// TaskSummary is a natural-language digest of a list of tasks.
type TaskSummary struct {
	Summary         string   `json:"summary"`
	Insights        []string `json:"insights"`
	Recommendations []string `json:"recommendations"`
}

// NewTaskSummary builds a TaskSummary, replacing nil slices with empty ones so
// the value always serializes as a complete JSON object.
func NewTaskSummary(summary string, insights, recommendations []string) TaskSummary {
	if insights == nil {
		insights = []string{}
	}
	if recommendations == nil {
		recommendations = []string{}
	}
	return TaskSummary{
		Summary:         summary,
		Insights:        insights,
		Recommendations: recommendations,
	}
}
