package gemini

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/generation"
)

// validateConfig checks the settings the client cannot work without.
//
// Parameters:
//   - ctx: Context for logging and cancellation
//   - logger: Logger for recording validation results
//   - config: The LLM configuration to validate
//
// Returns:
//   - An error wrapping generation.ErrInvalidConfig if validation fails, nil otherwise
func validateConfig(ctx context.Context, logger *slog.Logger, config config.LLMConfig) error {
	if config.GeminiAPIKey == "" {
		logger.DebugContext(ctx, "Gemini API key not configured")
		return fmt.Errorf("%w: gemini API key cannot be empty", generation.ErrInvalidConfig)
	}

	if config.ModelName == "" {
		return fmt.Errorf("%w: model name cannot be empty", generation.ErrInvalidConfig)
	}

	if config.RequestTimeout <= 0 {
		return fmt.Errorf("%w: request timeout must be positive, got %s",
			generation.ErrInvalidConfig, config.RequestTimeout)
	}

	if config.Temperature < 0 {
		logger.WarnContext(ctx, "Invalid temperature value",
			"value", config.Temperature,
			"action", "using model default")
	}

	return nil
}
