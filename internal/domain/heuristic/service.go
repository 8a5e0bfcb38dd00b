package heuristic

import (
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// Service defines the interface for rule-based priority analysis
type Service interface {
	// Analyze scores a task relative to now. It never fails.
	Analyze(task domain.TaskSnapshot, now time.Time) domain.PriorityAnalysis
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new heuristic service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new heuristic service with custom parameters
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

// Analyze implements the Service interface
func (s *defaultService) Analyze(task domain.TaskSnapshot, now time.Time) domain.PriorityAnalysis {
	return analyze(task, now, s.params)
}
