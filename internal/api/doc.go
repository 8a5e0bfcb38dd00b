// Package api handles incoming HTTP requests, request validation, and
// response formatting for the task-intelligence endpoints. It acts as an
// adapter between external clients (the task CRUD front end) and the
// analysis service, translating HTTP concerns to analysis operations.
package api
