package api

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/phrazzld/taskflow-api/internal/api/shared"
	"github.com/phrazzld/taskflow-api/internal/domain"
)

// TaskAnalyzer is the subset of the analysis service used by the handlers.
type TaskAnalyzer interface {
	Mode() domain.OperatingMode
	AnalyzePriority(ctx context.Context, task domain.TaskSnapshot) domain.PriorityAnalysis
	Summarize(ctx context.Context, tasks []domain.TaskRecord) domain.TaskSummary
}

// AnalysisHandler handles the task-intelligence endpoints.
type AnalysisHandler struct {
	analyzer TaskAnalyzer
	logger   *slog.Logger
}

// NewAnalysisHandler creates a new AnalysisHandler.
func NewAnalysisHandler(analyzer TaskAnalyzer, logger *slog.Logger) *AnalysisHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AnalysisHandler{
		analyzer: analyzer,
		logger:   logger.With("component", "analysis_handler"),
	}
}

// AnalyzePriority handles POST /api/ai/analyze-priority.
func (h *AnalysisHandler) AnalyzePriority(w http.ResponseWriter, r *http.Request) {
	var req AnalyzePriorityRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}
	if err := shared.ValidateRequest(&req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Task title is required", err)
		return
	}

	snapshot := req.ToSnapshot()
	if err := snapshot.Validate(); err != nil {
		shared.RespondWithError(w, r, MapErrorToStatusCode(err), GetSafeErrorMessage(err), err)
		return
	}

	result := h.analyzer.AnalyzePriority(r.Context(), snapshot)

	h.logger.DebugContext(r.Context(), "priority analyzed",
		slog.String("trace_id", shared.GetTraceID(r.Context())),
		slog.String("mode", h.analyzer.Mode().String()),
		slog.String("suggested_priority", string(result.SuggestedPriority)),
		slog.Int("urgency_score", result.UrgencyScore))

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// TaskSummary handles POST /api/ai/task-summary.
func (h *AnalysisHandler) TaskSummary(w http.ResponseWriter, r *http.Request) {
	var req TaskSummaryRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format", err)
		return
	}

	result := h.analyzer.Summarize(r.Context(), req.ToRecords())

	h.logger.DebugContext(r.Context(), "tasks summarized",
		slog.String("trace_id", shared.GetTraceID(r.Context())),
		slog.String("mode", h.analyzer.Mode().String()),
		slog.Int("task_count", len(req.Tasks)))

	shared.RespondWithJSON(w, r, http.StatusOK, result)
}

// Health handles GET /health.
func (h *AnalysisHandler) Health(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status: "ok",
		Mode:   h.analyzer.Mode().String(),
	})
}
