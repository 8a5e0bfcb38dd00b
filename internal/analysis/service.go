package analysis

import (
	"context"
	"log/slog"
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/domain/heuristic"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/phrazzld/taskflow-api/internal/redact"
)

// Fixed results returned when the AI backend cannot be used for a request
const (
	EmptySummaryText          = "No tasks to summarize"
	UnavailablePriorityReason = "Priority analysis temporarily unavailable"
	UnavailableSummaryText    = "AI analysis temporarily unavailable"
	unavailableInsight        = "System is processing your tasks"
	unavailableRecommendation = "Continue with your current workflow"
)

// Service is the entry point for priority analysis and task summaries.
// It holds no mutable state and is safe for concurrent use.
type Service struct {
	mode   domain.OperatingMode
	client generation.Client
	engine heuristic.Service
	logger *slog.Logger
	now    func() time.Time
}

// Option configures optional Service dependencies.
type Option func(*Service)

// WithLogger sets the logger used to report backend failures.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithClock replaces the clock used as "now" by the heuristic engine.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		if now != nil {
			s.now = now
		}
	}
}

// NewService creates a Service for the given operating mode. In heuristic
// mode the client is never called; a nil client is replaced with
// generation.NullClient and a nil engine with the default heuristic engine.
func NewService(
	mode domain.OperatingMode,
	client generation.Client,
	engine heuristic.Service,
	opts ...Option,
) *Service {
	if client == nil {
		client = generation.NullClient{}
	}
	if engine == nil {
		engine = heuristic.NewDefaultService()
	}

	s := &Service{
		mode:   mode,
		client: client,
		engine: engine,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Mode returns the operating mode fixed at construction.
func (s *Service) Mode() domain.OperatingMode {
	return s.mode
}

// AnalyzePriority judges the priority of a single task.
//
// In heuristic mode the rule engine scores the task. In AI mode the model is
// asked for a judgment; if the call fails the result is a neutral medium
// priority explaining that analysis is unavailable. The AI path deliberately
// does not fall back to the rule engine.
func (s *Service) AnalyzePriority(ctx context.Context, task domain.TaskSnapshot) domain.PriorityAnalysis {
	if s.mode != domain.ModeAI {
		return s.engine.Analyze(task, s.now().UTC())
	}

	prompt, err := generation.PriorityPrompt(task)
	if err != nil {
		s.logFailure(ctx, "priority_prompt", err)
		return unavailablePriority()
	}

	text, err := s.client.Complete(ctx, generation.PrioritySystemPrompt, prompt)
	if err != nil {
		s.logFailure(ctx, "priority_completion", err)
		return unavailablePriority()
	}

	result := ParsePriority(text)
	s.logger.DebugContext(ctx, "priority analyzed",
		"mode", s.mode.String(),
		"suggested_priority", result.SuggestedPriority,
		"urgency_score", result.UrgencyScore)
	return result
}

// Summarize produces a natural-language digest of tasks.
//
// An empty task list, or heuristic mode, yields the fixed "No tasks to
// summarize" result. A failed model call yields a distinct summary saying
// analysis is temporarily unavailable.
func (s *Service) Summarize(ctx context.Context, tasks []domain.TaskRecord) domain.TaskSummary {
	if len(tasks) == 0 || s.mode != domain.ModeAI {
		return domain.NewTaskSummary(EmptySummaryText, nil, nil)
	}

	prompt, err := generation.SummaryPrompt(tasks)
	if err != nil {
		s.logFailure(ctx, "summary_prompt", err)
		return unavailableSummary()
	}

	text, err := s.client.Complete(ctx, generation.SummarySystemPrompt, prompt)
	if err != nil {
		s.logFailure(ctx, "summary_completion", err)
		return unavailableSummary()
	}

	result := ParseSummary(text)
	s.logger.DebugContext(ctx, "tasks summarized",
		"task_count", len(tasks),
		"insight_count", len(result.Insights),
		"recommendation_count", len(result.Recommendations))
	return result
}

func (s *Service) logFailure(ctx context.Context, stage string, err error) {
	s.logger.ErrorContext(ctx, "AI analysis failed, returning degraded result",
		"stage", stage,
		"error", redact.Error(err))
}

func unavailablePriority() domain.PriorityAnalysis {
	return domain.PriorityAnalysis{
		SuggestedPriority: domain.PriorityMedium,
		Reasoning:         UnavailablePriorityReason,
		UrgencyScore:      domain.NeutralUrgencyScore,
	}
}

func unavailableSummary() domain.TaskSummary {
	return domain.NewTaskSummary(
		UnavailableSummaryText,
		[]string{unavailableInsight},
		[]string{unavailableRecommendation},
	)
}
