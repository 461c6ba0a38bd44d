package server

import (
	"net/http"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

type ClickResponse struct {
	Credited    float64              `json:"credited"`
	TotalClicks int64                `json:"totalClicks"`
	Unlocked    *AchievementUnlocked `json:"unlocked,omitempty"`
}

// AchievementUnlocked is the toast payload for a fresh unlock.
type AchievementUnlocked struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Goal string `json:"goal"`
	Lore string `json:"lore"`
}

func handleClick(eng *engine.Engine, broker *Broker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		res := eng.Click(r.Context())

		resp := ClickResponse{
			Credited:    res.Credited,
			TotalClicks: res.TotalClicks,
		}
		if res.Unlocked != nil {
			resp.Unlocked = &AchievementUnlocked{
				ID:   res.Unlocked.ID,
				Name: res.Unlocked.Name,
				Goal: res.Unlocked.Goal,
				Lore: res.Unlocked.Lore,
			}
			broker.Publish(GameEvent{
				Type:            "achievement_unlocked",
				AchievementID:   res.Unlocked.ID,
				AchievementName: res.Unlocked.Name,
			})
		}
		writeJSON(w, http.StatusOK, resp)
	}
}
