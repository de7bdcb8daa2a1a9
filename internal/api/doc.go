// Package api implements the HTTP handlers for the task-tracking
// service: signup/login, the authenticated task CRUD surface, and the
// health check. Handlers map every internal failure onto the error
// taxonomy (validation, unauthenticated, conflict, not found,
// internal) at this boundary; nothing below it writes HTTP responses.
package api
