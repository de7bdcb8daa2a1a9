package api

import (
	"net/http"
	"time"

	"github.com/taskdeck/taskdeck-api/internal/api/shared"
)

// HealthResponse is the body of a successful health check.
type HealthResponse struct {
	Status    string    `json:"status"`
	Uptime    string    `json:"uptime"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthHandler reports process liveness and uptime.
type HealthHandler struct {
	startedAt time.Time
}

// NewHealthHandler creates a HealthHandler anchored at the current time.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{startedAt: time.Now()}
}

// Check handles GET /health requests.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	shared.RespondWithJSON(w, r, http.StatusOK, HealthResponse{
		Status:    "ok",
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
		Timestamp: time.Now().UTC(),
	})
}
