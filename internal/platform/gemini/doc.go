// Package gemini provides an implementation of the generation.Client interface
// backed by Google's Gemini API.
//
// This package is an infrastructure adapter in the hexagonal architecture,
// connecting the task-intelligence core to Google's external Gemini service
// without exposing the details of that service to the rest of the application.
//
// Key components:
//
// 1. Client:
//   - Implements the generation.Client interface
//   - Sends the system prompt as a system instruction and asks for JSON output
//   - Bounds every call with the configured request timeout
//
// 2. Error Handling:
//   - Translates SDK errors, timeouts and safety blocks into the sentinel
//     errors of the generation package
//   - Recovers panics raised inside the SDK so nothing escapes the adapter
//   - Redacts upstream error text before logging it
//   - Makes exactly one attempt per call; callers decide what a failure means
//
// The package depends on Google's google.golang.org/genai client library for
// communicating with the Gemini API.
package gemini
