package heuristic

import "math"

// DueBucket is one band of the due-date rule. A task falls into the first
// bucket whose UpToHours is greater than or equal to its remaining hours.
type DueBucket struct {
	// UpToHours is the inclusive upper bound of the band, in hours from now.
	UpToHours float64

	// Adjustment is added to the score when the band matches.
	Adjustment int

	// Floor, when positive, is a minimum score for the task. A floor can
	// only raise the final score, and no later rule can push it back below.
	Floor int

	// Reason is the phrase reported when the band matches.
	Reason string
}

// KeywordRule adds Adjustment to the score when any of Keywords occurs in the
// lower-cased task text.
type KeywordRule struct {
	Keywords   []string
	Adjustment int
	Reason     string
}

// Params defines all configurable parameters for the priority heuristic
type Params struct {
	// BaseScore is the score every task starts from.
	BaseScore int

	// DueBuckets are evaluated in order; the first match wins.
	DueBuckets []DueBucket

	// KeywordRules are independent of each other; any number may fire.
	KeywordRules []KeywordRule

	// Complexity handling
	ComplexityWordThreshold int
	ComplexityAdjustment    int
	ComplexityReason        string

	// DefaultReasoning is reported when no rule fired.
	DefaultReasoning string
}

// Default keyword sets
var (
	DefaultHighKeywords = []string{
		"urgent", "asap", "today", "now", "immediately", "critical",
		"deadline", "bug", "prod", "exam", "submit",
	}
	DefaultMediumKeywords = []string{
		"soon", "important", "review", "prepare", "meeting", "follow up", "todo",
	}
	DefaultLowKeywords = []string{
		"optional", "someday", "later", "idea", "backlog", "nice to have",
	}
)

// ParamsConfig allows overriding the default parameters when creating a new Params instance
type ParamsConfig struct {
	// Keyword sets; an empty slice keeps the default set
	HighKeywords   []string
	MediumKeywords []string
	LowKeywords    []string

	// ComplexityWordThreshold overrides the description length, in words,
	// that counts as complex. Zero keeps the default.
	ComplexityWordThreshold int
}

// NewDefaultParams creates a new Params instance with default values
func NewDefaultParams() *Params {
	return &Params{
		BaseScore: 5,

		DueBuckets: []DueBucket{
			{UpToHours: 0, Adjustment: 3, Reason: "Past due: increase urgency"},
			{UpToHours: 3, Floor: 8, Reason: "Due within 3 hours"},
			{UpToHours: 24, Adjustment: 4, Reason: "Due within 24 hours"},
			{UpToHours: 72, Adjustment: 2, Reason: "Due in 1-3 days"},
			{UpToHours: 168, Adjustment: 1, Reason: "Due this week"},
			{UpToHours: math.Inf(1), Adjustment: -1, Reason: "Due later than a week"},
		},

		KeywordRules: []KeywordRule{
			{Keywords: DefaultHighKeywords, Adjustment: 3, Reason: "High-urgency keywords detected"},
			{Keywords: DefaultMediumKeywords, Adjustment: 1, Reason: "Important keywords detected"},
			{Keywords: DefaultLowKeywords, Adjustment: -2, Reason: "Low-urgency keywords detected"},
		},

		ComplexityWordThreshold: 40,
		ComplexityAdjustment:    1,
		ComplexityReason:        "Longer description suggests more complexity",

		DefaultReasoning: "Heuristic analysis completed",
	}
}

// NewParams creates a new Params instance with custom configuration
func NewParams(config ParamsConfig) *Params {
	params := NewDefaultParams()

	// Override keyword sets if provided
	if len(config.HighKeywords) > 0 {
		params.KeywordRules[0].Keywords = normalizeKeywords(config.HighKeywords)
	}
	if len(config.MediumKeywords) > 0 {
		params.KeywordRules[1].Keywords = normalizeKeywords(config.MediumKeywords)
	}
	if len(config.LowKeywords) > 0 {
		params.KeywordRules[2].Keywords = normalizeKeywords(config.LowKeywords)
	}

	if config.ComplexityWordThreshold > 0 {
		params.ComplexityWordThreshold = config.ComplexityWordThreshold
	}

	return params
}
