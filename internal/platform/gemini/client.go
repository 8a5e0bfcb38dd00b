package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/phrazzld/taskflow-api/internal/config"
	"github.com/phrazzld/taskflow-api/internal/generation"
	"github.com/phrazzld/taskflow-api/internal/redact"
	"google.golang.org/genai"
)

// responseMIMEType asks Gemini for a bare JSON document instead of prose.
const responseMIMEType = "application/json"

// Client implements the generation.Client interface using Google's Gemini API.
type Client struct {
	// logger is used for structured logging
	logger *slog.Logger

	// config contains LLM-specific configuration
	config config.LLMConfig

	// client is the Gemini API client for making requests
	client *genai.Client
}

var _ generation.Client = (*Client)(nil)

// NewClient creates a new instance of Client with the provided dependencies.
//
// Parameters:
//   - ctx: Context for the operation, which can be used for cancellation
//   - logger: A structured logger for operation logging
//   - config: LLM configuration containing API key, model name, and other settings
//
// Returns:
//   - A properly initialized Client or an error if initialization fails
func NewClient(ctx context.Context, logger *slog.Logger, config config.LLMConfig) (*Client, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	if err := validateConfig(ctx, logger, config); err != nil {
		return nil, err
	}

	clientConfig := &genai.ClientConfig{
		APIKey:  config.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	}
	if config.BaseURL != "" {
		clientConfig.HTTPOptions = genai.HTTPOptions{BaseURL: config.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientConfig)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create Gemini client: %v",
			generation.ErrInvalidConfig, redact.Error(err))
	}

	logger.InfoContext(ctx, "Gemini client initialized",
		"model", config.ModelName,
		"request_timeout", config.RequestTimeout.String())

	return &Client{
		logger: logger,
		config: config,
		client: client,
	}, nil
}

// Complete sends one request to Gemini and returns the text of the first
// candidate. It makes a single attempt bounded by config.RequestTimeout.
//
// Returns:
//   - The model's raw reply text
//   - An error wrapping generation.ErrTransientFailure for transport errors,
//     timeouts and cancellation, generation.ErrContentBlocked for safety
//     blocks, or generation.ErrInvalidResponse for empty replies
func (c *Client) Complete(ctx context.Context, systemPrompt, userPrompt string) (text string, err error) {
	if strings.TrimSpace(userPrompt) == "" {
		return "", generation.ErrEmptyPrompt
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.ErrorContext(ctx, "Gemini client panicked", "panic", redact.String(fmt.Sprint(r)))
			text = ""
			err = fmt.Errorf("%w: client panic", generation.ErrTransientFailure)
		}
	}()

	callCtx, cancel := context.WithTimeout(ctx, c.config.RequestTimeout)
	defer cancel()

	start := time.Now()
	c.logger.DebugContext(ctx, "Making Gemini API call",
		"model", c.config.ModelName,
		"prompt_length", len(userPrompt))

	resp, err := c.client.Models.GenerateContent(
		callCtx,
		c.config.ModelName,
		genai.Text(userPrompt),
		c.generateConfig(systemPrompt),
	)
	if err != nil {
		return "", c.transportError(ctx, callCtx, err, time.Since(start))
	}

	text, err = extractText(resp)
	if err != nil {
		c.logger.ErrorContext(ctx, "Gemini API returned unusable response",
			"error", err,
			"duration_ms", time.Since(start).Milliseconds())
		return "", err
	}

	c.logger.InfoContext(ctx, "Gemini API call successful",
		"response_length", len(text),
		"duration_ms", time.Since(start).Milliseconds())

	return text, nil
}

func (c *Client) generateConfig(systemPrompt string) *genai.GenerateContentConfig {
	temperature := c.config.Temperature
	cfg := &genai.GenerateContentConfig{
		ResponseMIMEType: responseMIMEType,
		Temperature:      &temperature,
	}
	if systemPrompt != "" {
		cfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: systemPrompt}},
		}
	}
	return cfg
}

// transportError classifies an SDK error. The caller's own cancellation and
// the per-call deadline are both transient from the service's point of view.
func (c *Client) transportError(ctx, callCtx context.Context, err error, elapsed time.Duration) error {
	reason := "request failed"
	switch {
	case ctx.Err() != nil:
		reason = "request cancelled"
	case errors.Is(callCtx.Err(), context.DeadlineExceeded):
		reason = "request timed out"
	}

	c.logger.ErrorContext(ctx, "Gemini API call error",
		"reason", reason,
		"error", redact.Error(err),
		"duration_ms", elapsed.Milliseconds())

	return fmt.Errorf("%w: %s", generation.ErrTransientFailure, reason)
}

// extractText pulls the reply text out of the first candidate.
func extractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", fmt.Errorf("%w: nil response", generation.ErrInvalidResponse)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return "", fmt.Errorf("%w: no content generated", generation.ErrInvalidResponse)
	}

	candidate := resp.Candidates[0]
	if candidate.FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", generation.ErrContentBlocked)
	}
	if candidate.Content == nil {
		return "", fmt.Errorf("%w: empty content in response", generation.ErrInvalidResponse)
	}

	var sb strings.Builder
	for _, part := range candidate.Content.Parts {
		if part != nil {
			sb.WriteString(part.Text)
		}
	}

	text := sb.String()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: empty text in response", generation.ErrInvalidResponse)
	}
	return text, nil
}
