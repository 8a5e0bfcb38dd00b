// Package domain contains the core value types of the task-intelligence
// service: task snapshots supplied by callers, the priority analysis and
// task summary results handed back to them, and the process-wide operating
// mode. It is independent of any transport, storage or AI provider.
package domain
