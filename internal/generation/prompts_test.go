package generation_test

import (
	"context"
	"testing"
	"time"

	"github.com/phrazzld/taskflow-api/internal/domain"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityPrompt(t *testing.T) {
	t.Parallel()

	due := time.Date(2025, time.March, 14, 23, 30, 0, 0, time.FixedZone("UTC-2", -2*60*60))
	prompt, err := generation.PriorityPrompt(domain.TaskSnapshot{
		Title:       "Ship <release>",
		Description: "Tag & publish",
		DueDate:     &due,
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "Title: Ship <release>", "text/template must not HTML-escape task text")
	assert.Contains(t, prompt, "Description: Tag & publish")
	assert.Contains(t, prompt, "Due: 2025-03-15", "due date should be rendered in UTC")
	assert.Contains(t, prompt, `"urgency_score"`)
}

func TestPriorityPromptWithoutDueDate(t *testing.T) {
	t.Parallel()

	prompt, err := generation.PriorityPrompt(domain.TaskSnapshot{Title: "Plan"})
	require.NoError(t, err)

	assert.Contains(t, prompt, "No due date specified")
	assert.NotContains(t, prompt, "Due: ")
}

func TestSummaryPrompt(t *testing.T) {
	t.Parallel()

	prompt, err := generation.SummaryPrompt([]domain.TaskRecord{
		{Title: "Write tests", Priority: "high", Status: "in_progress", Description: "cover parser"},
		{Title: "Clean desk", Priority: "low", Status: "pending"},
	})
	require.NoError(t, err)

	assert.Contains(t, prompt, "- Write tests (Priority: high, Status: in_progress): cover parser\n")
	assert.Contains(t, prompt, "- Clean desk (Priority: low, Status: pending)\n")
	assert.Contains(t, prompt, "keys: summary, insights, recommendations")
}

func TestNullClient(t *testing.T) {
	t.Parallel()

	var client generation.Client = generation.NullClient{}
	text, err := client.Complete(context.Background(), "system", "user")

	require.NoError(t, err)
	assert.Equal(t, generation.DisabledSentinel, text)
}
