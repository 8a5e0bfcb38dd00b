// Package heuristic implements the rule-based priority engine used when no
// generative-language backend is available. The engine scores a task from
// its due-date proximity, keyword content and description length, clamps the
// score into [1, 10] and maps it onto a low/medium/high label.
package heuristic
