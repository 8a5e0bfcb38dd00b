package api

import (
	"github.com/phrazzld/taskflow-api/internal/domain"
)

// AnalyzePriorityRequest defines the payload for analyzing a single task.
type AnalyzePriorityRequest struct {
	Title       string  `json:"title"       validate:"required"`
	Description string  `json:"description"`
	DueDate     *string `json:"due_date"`
}

// TaskRecordRequest is one task in a summary request.
type TaskRecordRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	Status      string `json:"status"`
}

// TaskSummaryRequest defines the payload for summarizing a task list.
// An empty or missing list is valid.
type TaskSummaryRequest struct {
	Tasks []TaskRecordRequest `json:"tasks"`
}

// HealthResponse reports liveness and the operating mode chosen at startup.
type HealthResponse struct {
	Status string `json:"status"`
	Mode   string `json:"mode"`
}

// ToSnapshot converts the request into the snapshot analyzed by the engine.
// An unparseable due date is dropped.
func (r AnalyzePriorityRequest) ToSnapshot() domain.TaskSnapshot {
	snapshot := domain.TaskSnapshot{
		Title:       r.Title,
		Description: r.Description,
	}
	if r.DueDate != nil {
		if due, ok := ParseDueDate(*r.DueDate); ok {
			snapshot.DueDate = &due
		}
	}
	return snapshot
}

// ToRecords converts the request tasks into domain records.
func (r TaskSummaryRequest) ToRecords() []domain.TaskRecord {
	records := make([]domain.TaskRecord, 0, len(r.Tasks))
	for _, t := range r.Tasks {
		records = append(records, domain.TaskRecord{
			Title:       t.Title,
			Description: t.Description,
			Priority:    t.Priority,
			Status:      t.Status,
		})
	}
	return records
}
