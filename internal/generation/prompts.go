package generation

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// System prompts for the two analysis operations
const (
	PrioritySystemPrompt = "You are an AI assistant that analyzes tasks and suggests appropriate priorities."
	SummarySystemPrompt  = "You are an AI productivity assistant that analyzes tasks and provides insightful summaries."
)

// dueDateLayout formats due dates in prompts; the model only needs the day.
const dueDateLayout = "2006-01-02"

var priorityTemplate = template.Must(template.New("priority").Parse(
	`Analyze this task and suggest an appropriate priority level:

Title: {{.Title}}
Description: {{.Description}}
{{.DueDateText}}

Consider factors like:
- Urgency (time sensitivity)
- Importance (impact on goals)
- Complexity
- Dependencies

Suggest priority as "low", "medium", or "high" and provide reasoning.
Also provide an urgency score from 1-10 (10 being most urgent).

Format as JSON: {"suggested_priority": "...", "reasoning": "...", "urgency_score": ...}
`))

var summaryTemplate = template.Must(template.New("summary").Parse(
	`Analyze the following tasks and provide a comprehensive summary:

{{.TaskList}}

Please provide:
1. A brief overall summary of the current task situation
2. 2-3 key insights about productivity patterns or task distribution
3. 2-3 actionable recommendations for better task management

Format your response as JSON with keys: summary, insights, recommendations
`))

type priorityPromptData struct {
	Title       string
	Description string
	DueDateText string
}

type summaryPromptData struct {
	TaskList string
}

// PriorityPrompt builds the user prompt asking the model to judge a task's priority.
func PriorityPrompt(task domain.TaskSnapshot) (string, error) {
	data := priorityPromptData{
		Title:       task.Title,
		Description: task.Description,
		DueDateText: "No due date specified",
	}
	if task.DueDate != nil {
		data.DueDateText = "Due: " + task.DueDate.UTC().Format(dueDateLayout)
	}

	return execute(priorityTemplate, data)
}

// SummaryPrompt builds the user prompt asking the model to summarize tasks.
// Each task becomes one line: "- title (Priority: p, Status: s): description".
func SummaryPrompt(tasks []domain.TaskRecord) (string, error) {
	lines := make([]string, 0, len(tasks))
	for _, task := range tasks {
		line := fmt.Sprintf("- %s (Priority: %s, Status: %s)", task.Title, task.Priority, task.Status)
		if task.Description != "" {
			line += ": " + task.Description
		}
		lines = append(lines, line)
	}

	return execute(summaryTemplate, summaryPromptData{TaskList: strings.Join(lines, "\n")})
}

func execute(tmpl *template.Template, data any) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute %s prompt template: %w", tmpl.Name(), err)
	}
	return buf.String(), nil
}
