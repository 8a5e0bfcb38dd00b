package analysis

import (
	"bytes"
	"encoding/json"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/phrazzld/taskflow-api/internal/domain"
)

// Field defaults used when a model reply omits a field or gives it the wrong type
const (
	DefaultPriorityReasoning = "Analysis completed"
	DefaultSummaryText       = "Task analysis completed"
)

// Fallbacks used when a model reply is not a JSON object at all
const (
	unparsedPriorityReasoning = "AI suggested medium priority based on task analysis"
	unparsedSummaryInsight    = "AI analysis completed"
	unparsedRecommendation    = "Continue managing tasks effectively"

	// summaryPreviewRunes is how much of an unparseable reply is kept as the summary.
	summaryPreviewRunes = 200
)

// ParsePriority converts a model reply into a PriorityAnalysis. Missing or
// mistyped fields take their defaults; a reply that is not a JSON object
// yields a neutral medium judgment. The urgency score is always clamped
// into [1, 10].
func ParsePriority(raw string) domain.PriorityAnalysis {
	fields, ok := decodeObject(raw)
	if !ok {
		return domain.PriorityAnalysis{
			SuggestedPriority: domain.PriorityMedium,
			Reasoning:         unparsedPriorityReasoning,
			UrgencyScore:      domain.NeutralUrgencyScore,
		}
	}

	priority := domain.PriorityMedium
	if label, ok := stringField(fields, "suggested_priority"); ok {
		if p, err := domain.ParsePriority(label); err == nil {
			priority = p
		}
	}

	reasoning := DefaultPriorityReasoning
	if r, ok := stringField(fields, "reasoning"); ok && strings.TrimSpace(r) != "" {
		reasoning = r
	}

	score := domain.NeutralUrgencyScore
	if s, ok := intField(fields, "urgency_score"); ok {
		score = domain.ClampUrgency(s)
	}

	return domain.PriorityAnalysis{
		SuggestedPriority: priority,
		Reasoning:         reasoning,
		UrgencyScore:      score,
	}
}

// ParseSummary converts a model reply into a TaskSummary. Missing or mistyped
// fields take their defaults. A reply that is not a JSON object is kept as
// prose: its first 200 characters become the summary, followed by "..." when
// truncated.
func ParseSummary(raw string) domain.TaskSummary {
	fields, ok := decodeObject(raw)
	if !ok {
		text := strings.TrimSpace(raw)
		if text == "" {
			text = DefaultSummaryText
		}
		return domain.NewTaskSummary(
			preview(text, summaryPreviewRunes),
			[]string{unparsedSummaryInsight},
			[]string{unparsedRecommendation},
		)
	}

	summary := DefaultSummaryText
	if s, ok := stringField(fields, "summary"); ok && strings.TrimSpace(s) != "" {
		summary = s
	}

	return domain.NewTaskSummary(
		summary,
		stringListField(fields, "insights"),
		stringListField(fields, "recommendations"),
	)
}

// decodeObject parses raw as a JSON object after trimming whitespace and any
// Markdown code fence around it.
func decodeObject(raw string) (map[string]json.RawMessage, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(stripCodeFence(raw)), &fields); err != nil || fields == nil {
		return nil, false
	}
	return fields, true
}

// stripCodeFence removes a surrounding ```json ... ``` block, which models add
// even when asked for bare JSON.
func stripCodeFence(raw string) string {
	text := strings.TrimSpace(raw)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if newline := strings.IndexByte(text, '\n'); newline >= 0 {
		// Drop the info string, e.g. "json"
		text = text[newline+1:]
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")
	return strings.TrimSpace(text)
}

func stringField(fields map[string]json.RawMessage, key string) (string, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// intField accepts a JSON number or a numeric string. Fractions are truncated
// toward zero.
func intField(fields map[string]json.RawMessage, key string) (int, bool) {
	raw, ok := fields[key]
	if !ok || isNull(raw) {
		return 0, false
	}

	var f float64
	if err := json.Unmarshal(raw, &f); err != nil {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return 0, false
		}
		if f, err = strconv.ParseFloat(strings.TrimSpace(s), 64); err != nil {
			return 0, false
		}
	}

	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	// Keep the conversion in range before clamping
	f = math.Max(math.Min(f, math.MaxInt32), math.MinInt32)
	return int(f), true
}

// stringListField returns the string elements of a JSON array, skipping
// elements of any other type. Anything but an array yields an empty list.
func stringListField(fields map[string]json.RawMessage, key string) []string {
	raw, ok := fields[key]
	if !ok {
		return []string{}
	}

	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []string{}
	}

	values := make([]string, 0, len(items))
	for _, item := range items {
		if isNull(item) {
			continue
		}
		var s string
		if err := json.Unmarshal(item, &s); err == nil {
			values = append(values, s)
		}
	}
	return values
}

// isNull reports whether raw is the JSON null literal, which json.Unmarshal
// silently accepts for every target type.
func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}

func preview(text string, limit int) string {
	if utf8.RuneCountInString(text) <= limit {
		return text
	}
	return string([]rune(text)[:limit]) + "..."
}
