// Package generation defines the boundary between the task-intelligence
// service and external generative-language (LLM) backends. The Client
// interface takes a system prompt and a user prompt and returns raw model
// text; the prompts for priority analysis and task summaries are built here
// as well. Implementations live under internal/platform (Gemini) and in this
// package (NullClient, used when no backend is available).
package generation
