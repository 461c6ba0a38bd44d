package server

import (
	"net/http"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

type PrestigeResponse struct {
	PrestigeMultiplier float64 `json:"prestigeMultiplier"`
}

func handlePrestige(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		eng.ResetForPrestige(r.Context())
		writeJSON(w, http.StatusOK, PrestigeResponse{
			PrestigeMultiplier: eng.View().PrestigeMultiplier,
		})
	}
}

type RebirthResponse struct {
	LicensesGranted int `json:"licensesGranted"`
	GoldenLicenses  int `json:"goldenLicenses"`
}

func handleRebirth(eng *engine.Engine, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !eng.CanRebirth() {
			writeError(w, http.StatusConflict, "rebirth requires 1M total earnings")
			return
		}

		granted := eng.ResetForRebirth(r.Context())
		broker.Publish(GameEvent{Type: "rebirth", LicensesGranted: granted})

		writeJSON(w, http.StatusOK, RebirthResponse{
			LicensesGranted: granted,
			GoldenLicenses:  eng.View().GoldenLicenses,
		})
	}
}
