package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"
)

// Pinger reports storage health. Nil means no durable backend
// (memory store), which is healthy by definition.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthResponse maps check name to status.
type HealthResponse map[string]string

func handleHealth(logger *slog.Logger, storage Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
		defer cancel()

		checks := HealthResponse{"storage": "ok"}
		status := http.StatusOK

		if storage != nil {
			if err := storage.Ping(ctx); err != nil {
				logger.Error("health check failed", "name", "storage", "error", err)
				checks["storage"] = "error"
				status = http.StatusServiceUnavailable
			}
		}

		writeJSON(w, status, checks)
	}
}
