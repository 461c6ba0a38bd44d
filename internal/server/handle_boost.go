package server

import (
	"net/http"
	"time"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

// BoostRequest is the ad-SDK reward seam: the surrounding platform
// grants a time-boxed multiplier after a rewarded ad.
type BoostRequest struct {
	Kind       string `json:"kind"`
	DurationMs int64  `json:"durationMs"`
}

type BoostResponse struct {
	Kind        string `json:"kind"`
	RemainingMs int64  `json:"remainingMs"`
}

func handleBoost(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req BoostRequest
		if err := readJSON(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if req.DurationMs <= 0 {
			writeError(w, http.StatusBadRequest, "durationMs must be positive")
			return
		}

		d := time.Duration(req.DurationMs) * time.Millisecond
		switch req.Kind {
		case "speed":
			eng.ActivateSpeedBoost(d)
			writeJSON(w, http.StatusOK, BoostResponse{
				Kind:        req.Kind,
				RemainingMs: eng.SpeedBoostRemaining().Milliseconds(),
			})
		case "rush":
			eng.ActivateRushHour(d)
			writeJSON(w, http.StatusOK, BoostResponse{
				Kind:        req.Kind,
				RemainingMs: eng.RushHourRemaining().Milliseconds(),
			})
		default:
			writeError(w, http.StatusBadRequest, "kind must be speed or rush")
		}
	}
}

func handleAdminSave(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, eng.Snapshot())
	}
}

func handleAdminReset(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eng.Reset(r.Context())
		writeJSON(w, http.StatusOK, map[string]string{"status": "reset"})
	}
}
