package generation

import "errors"

// Common errors returned by the generation package
var (
	// ErrGenerationFailed is returned when a completion fails for any general reason
	ErrGenerationFailed = errors.New("failed to generate completion")

	// ErrInvalidResponse is returned when the LLM response is empty or malformed
	ErrInvalidResponse = errors.New("invalid response from language model")

	// ErrContentBlocked is returned when the LLM blocks the content due to safety filters
	ErrContentBlocked = errors.New("content blocked by language model safety filters")

	// ErrTransientFailure is returned for transport errors and timeouts
	ErrTransientFailure = errors.New("transient error calling language model")

	// ErrInvalidConfig is returned when the client configuration is invalid
	ErrInvalidConfig = errors.New("invalid generator configuration")

	// ErrEmptyPrompt is returned when a completion is requested without a prompt
	ErrEmptyPrompt = errors.New("prompt cannot be empty")
)
