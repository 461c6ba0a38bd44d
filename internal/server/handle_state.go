package server

import (
	"net/http"

	"github.com/yerevantaxi/tycoon/internal/engine"
	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// MultiplierBreakdown exposes every factor of the income multiplier
// so the UI can render "x2 prestige, +30% licenses, ...".
type MultiplierBreakdown struct {
	Total             float64 `json:"total"`
	Prestige          float64 `json:"prestige"`
	GoldenLicenses    int     `json:"goldenLicenses"`
	UpgradeBonus      float64 `json:"upgradeBonus"`
	AchievementFactor float64 `json:"achievementFactor"`
	SpeedFactor       float64 `json:"speedFactor"`
	RushFactor        float64 `json:"rushFactor"`
}

type MilestoneInfo struct {
	Index      int     `json:"index"`
	PrevTarget float64 `json:"prevTarget"`
	NextTarget float64 `json:"nextTarget"`
	Progress   float64 `json:"progress"`
}

type UpgradeInfo struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Category  string  `json:"category"`
	Level     int     `json:"level"`
	NextPrice float64 `json:"nextPrice"`
}

type GameStateResponse struct {
	Balance             float64             `json:"balance"`
	TotalEarnings       float64             `json:"totalEarnings"`
	TotalClicks         int64               `json:"totalClicks"`
	ClickValue          float64             `json:"clickValue"`
	IdleIncomePerSecond float64             `json:"idleIncomePerSecond"`
	Multiplier          MultiplierBreakdown `json:"multiplier"`
	Milestone           MilestoneInfo       `json:"milestone"`
	SpeedBoostLeftMs    int64               `json:"speedBoostLeftMs"`
	RushHourLeftMs      int64               `json:"rushHourLeftMs"`
	CanRebirth          bool                `json:"canRebirth"`
	Billionaire         bool                `json:"billionaire"`
	HighestTier         int                 `json:"highestTier"`
	LevelsBought        int                 `json:"levelsBought"`
	SessionSeconds      float64             `json:"sessionSeconds"`
	Upgrades            []UpgradeInfo       `json:"upgrades"`
	UnlockedIDs         []string            `json:"unlockedAchievementIds"`
}

func handleGameState(eng *engine.Engine) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v := eng.View()

		upgrades := make([]UpgradeInfo, 0, len(tycoon.ShopUpgradeIDs))
		for _, id := range tycoon.ShopUpgradeIDs {
			cfg := tycoon.Upgrades[id]
			price, _ := eng.UpgradePriceAt(id, v.UpgradeLevels[id])
			upgrades = append(upgrades, UpgradeInfo{
				ID:        id,
				Title:     cfg.Title,
				Category:  cfg.Category,
				Level:     v.UpgradeLevels[id],
				NextPrice: price,
			})
		}

		unlocked := v.UnlockedIDs
		if unlocked == nil {
			unlocked = []string{}
		}

		writeJSON(w, http.StatusOK, GameStateResponse{
			Balance:             v.Balance,
			TotalEarnings:       v.TotalEarnings,
			TotalClicks:         v.TotalClicks,
			ClickValue:          v.ClickValue,
			IdleIncomePerSecond: v.IdleIncomePerSecond,
			Multiplier: MultiplierBreakdown{
				Total:             v.Multiplier,
				Prestige:          v.PrestigeMultiplier,
				GoldenLicenses:    v.GoldenLicenses,
				UpgradeBonus:      v.UpgradeBonus,
				AchievementFactor: v.AchievementFactor,
				SpeedFactor:       v.SpeedFactor,
				RushFactor:        v.RushFactor,
			},
			Milestone: MilestoneInfo{
				Index:      v.MilestoneIndex,
				PrevTarget: v.MilestonePrev,
				NextTarget: v.MilestoneNext,
				Progress:   v.MilestoneProgress,
			},
			SpeedBoostLeftMs: v.SpeedBoostLeftMs,
			RushHourLeftMs:   v.RushHourLeftMs,
			CanRebirth:       v.CanRebirth,
			Billionaire:      v.Billionaire,
			HighestTier:      v.HighestTier,
			LevelsBought:     v.LevelsBought,
			SessionSeconds:   v.SessionSeconds,
			Upgrades:         upgrades,
			UnlockedIDs:      unlocked,
		})
	}
}
