package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/phrazzld/taskflow-api/internal/api"
	apiMiddleware "github.com/phrazzld/taskflow-api/internal/api/middleware"
	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/mocks"
	"github.com/phrazzld/taskflow-api/internal/platform/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T, apiKey string, origins ...string) http.Handler {
	t.Helper()
	_, log := logger.NewTestLogger(t)

	cfg := testConfig()
	cfg.LLM.GeminiAPIKey = apiKey
	cfg.Server.CORSAllowedOrigins = origins

	return newApplication(context.Background(), cfg, log).setupRouter()
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/health", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get(apiMiddleware.TraceIDHeader))

	var resp api.HealthResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "heuristic", resp.Mode)
}

func TestRouter_AnalyzePriority(t *testing.T) {
	router := newTestRouter(t, "")

	req := httptest.NewRequest(http.MethodPost, "/api/ai/analyze-priority",
		strings.NewReader(`{"title":"Someday idea"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var result domain.PriorityAnalysis
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, domain.PriorityLow, result.SuggestedPriority)
	assert.Equal(t, 3, result.UrgencyScore)
}

func TestRouter_TaskSummaryInAIMode(t *testing.T) {
	client := mocks.NewMockClientWithText(
		`{"summary":"One task","insights":["focus"],"recommendations":["start now"]}`)
	stubLLMClient(t, client, nil)
	router := newTestRouter(t, "test-key")

	req := httptest.NewRequest(http.MethodPost, "/api/ai/task-summary",
		strings.NewReader(`{"tasks":[{"title":"Write docs","priority":"medium","status":"pending"}]}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	var summary domain.TaskSummary
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &summary))
	assert.Equal(t, "One task", summary.Summary)
	assert.Equal(t, []string{"focus"}, summary.Insights)
	assert.Equal(t, []string{"start now"}, summary.Recommendations)
	assert.Equal(t, 1, client.CallCount())

	_, userPrompt := client.LastPrompts()
	assert.Contains(t, userPrompt, "Write docs")
}

func TestRouter_MethodAndPath(t *testing.T) {
	router := newTestRouter(t, "")

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/ai/analyze-priority", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)

	rr = httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/tasks", nil))
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestRouter_CORS(t *testing.T) {
	router := newTestRouter(t, "", "http://localhost:3000")

	preflight := func(origin string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodOptions, "/api/ai/analyze-priority", nil)
		req.Header.Set("Origin", origin)
		req.Header.Set("Access-Control-Request-Method", http.MethodPost)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)
		return rr
	}

	allowed := preflight("http://localhost:3000")
	assert.Equal(t, "http://localhost:3000", allowed.Header().Get("Access-Control-Allow-Origin"))

	denied := preflight("http://evil.example")
	assert.Empty(t, denied.Header().Get("Access-Control-Allow-Origin"))
}
