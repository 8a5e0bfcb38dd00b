// Package analysis coordinates task intelligence requests. It decides once
// per process whether a generative-language backend is usable (DecideMode),
// routes each request to that backend or to the heuristic engine, and turns
// model replies into structured results (ParsePriority, ParseSummary).
//
// No operation in this package returns an error: every failure resolves to
// a fixed, structurally valid fallback value.
package analysis
