package config

import "time"

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server    ServerConfig    `mapstructure:"server"    validate:"required"`
	LLM       LLMConfig       `mapstructure:"llm"       validate:"required"`
	Heuristic HeuristicConfig `mapstructure:"heuristic"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port         int           `mapstructure:"port"          validate:"required,gt=0,lt=65536"`
	LogLevel     string        `mapstructure:"log_level"     validate:"required,oneof=debug info warn error"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"  validate:"gt=0"`
	WriteTimeout time.Duration `mapstructure:"write_timeout" validate:"gt=0"`
	// CORSAllowedOrigins lists the browser origins allowed to call the API.
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins" validate:"dive,required"`
}

// LLMConfig contains all LLM integration related settings.
// An empty GeminiAPIKey is valid: the service then runs in heuristic mode.
type LLMConfig struct {
	Enabled        bool          `mapstructure:"enabled"`
	GeminiAPIKey   string        `mapstructure:"gemini_api_key"`
	ModelName      string        `mapstructure:"model_name"      validate:"required"`
	RequestTimeout time.Duration `mapstructure:"request_timeout" validate:"gt=0"`
	Temperature    float32       `mapstructure:"temperature"     validate:"gte=0,lte=2"`
	// BaseURL overrides the Gemini endpoint. Empty uses the SDK default.
	BaseURL string `mapstructure:"base_url" validate:"omitempty,url"`
}

// HasCredential reports whether an AI backend may be used at all.
func (c LLMConfig) HasCredential() bool {
	return c.Enabled && c.GeminiAPIKey != ""
}

// HeuristicConfig overrides the keyword sets and thresholds of the
// rule-based priority engine. Empty values keep the built-in defaults.
type HeuristicConfig struct {
	HighKeywords            []string `mapstructure:"high_keywords"`
	MediumKeywords          []string `mapstructure:"medium_keywords"`
	LowKeywords             []string `mapstructure:"low_keywords"`
	ComplexityWordThreshold int      `mapstructure:"complexity_word_threshold" validate:"gte=0"`
}
