package server

import (
	"net/http"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

type OfflineClaimResponse struct {
	Earnings float64 `json:"earnings"`
	Seconds  int64   `json:"seconds"`
	Claimed  bool    `json:"claimed"`
}

// handleOfflineClaim credits the offline catch-up exactly once; the
// client calls this at startup to show the "while you were away"
// popup.
func handleOfflineClaim(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rep := eng.ClaimOffline(r.Context())
		writeJSON(w, http.StatusOK, OfflineClaimResponse{
			Earnings: rep.Earnings,
			Seconds:  rep.Seconds,
			Claimed:  rep.Claimed,
		})
	}
}
