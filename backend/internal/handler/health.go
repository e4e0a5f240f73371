package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/itchan-dev/mailadmin/shared/api"
	"github.com/itchan-dev/mailadmin/shared/utils"
)

// Health is a liveness probe endpoint.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, api.HealthResponse{Status: "OK", Message: "Server is running"})
}

// Ready is a readiness probe endpoint.
// Returns 503 Service Unavailable if the database does not answer.
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.health.Ping(ctx); err != nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("database unavailable"))
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}
