package engine

import (
	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// View is a consistent read of everything the presentation layer
// renders, taken under one lock acquisition.
type View struct {
	Balance       float64
	TotalEarnings float64
	TotalClicks   int64

	ClickValue          float64
	IdleIncomePerSecond float64

	Multiplier         float64
	PrestigeMultiplier float64
	GoldenLicenses     int
	UpgradeBonus       float64
	AchievementFactor  float64
	SpeedFactor        float64
	RushFactor         float64

	MilestoneIndex     int
	MilestonePrev      float64
	MilestoneNext      float64
	MilestoneProgress  float64
	CanRebirth         bool
	Billionaire        bool
	HighestTier        int
	LevelsBought       int
	SessionSeconds     float64
	SpeedBoostLeftMs   int64
	RushHourLeftMs     int64
	UpgradeLevels      map[string]int
	UnlockedIDs        []string
}

// View assembles the full presentation snapshot.
func (e *Engine) View() View {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	upgradeBonus := 0.0
	for _, id := range tycoon.ShopUpgradeIDs {
		cfg := tycoon.Upgrades[id]
		if cfg.MultiplierPercent != 0 {
			upgradeBonus += float64(e.state.UpgradeLevels[id]) * cfg.MultiplierPercent
		}
	}

	levels := make(map[string]int, len(e.state.UpgradeLevels))
	for id, lvl := range e.state.UpgradeLevels {
		levels[id] = lvl
	}

	return View{
		Balance:       e.state.Balance,
		TotalEarnings: e.state.TotalEarnings,
		TotalClicks:   e.state.TotalClicks,

		ClickValue:          e.clickValue(now),
		IdleIncomePerSecond: e.idleIncomePerSecond(now),

		Multiplier:         e.multiplier(),
		PrestigeMultiplier: e.state.PrestigeMultiplier,
		GoldenLicenses:     e.state.GoldenLicenses,
		UpgradeBonus:       upgradeBonus,
		AchievementFactor:  e.ach.BonusMultiplier(),
		SpeedFactor:        e.speedFactor(now),
		RushFactor:         e.rushFactor(now),

		MilestoneIndex:    e.milestoneIndex(),
		MilestonePrev:     e.prevMilestoneTarget(),
		MilestoneNext:     e.nextMilestoneTarget(),
		MilestoneProgress: e.milestoneProgress(),
		CanRebirth:        e.state.TotalEarnings >= tycoon.RebirthThreshold,
		Billionaire:       e.state.Balance >= 1e9,
		HighestTier:       e.highestUnlockedTier(),
		LevelsBought:      e.levelsBought(),
		SessionSeconds:    now.Sub(e.sessionStart).Seconds(),
		SpeedBoostLeftMs:  remaining(now, e.speedBoostUntil).Milliseconds(),
		RushHourLeftMs:    remaining(now, e.rushHourUntil).Milliseconds(),
		UpgradeLevels:     levels,
		UnlockedIDs:       e.ach.UnlockedIDs(),
	}
}

// UpgradeLevel is the owned level of one upgrade, zero for unknown
// ids.
func (e *Engine) UpgradeLevel(id string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.UpgradeLevels[id]
}

// LevelsBought is the sum of all upgrade levels, an achievement input.
func (e *Engine) LevelsBought() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.levelsBought()
}

func (e *Engine) levelsBought() int {
	total := 0
	for _, id := range tycoon.ShopUpgradeIDs {
		total += e.state.UpgradeLevels[id]
	}
	return total
}

// highestUnlockedTier is the highest category index with at least one
// owned upgrade, 0 when nothing is owned.
func (e *Engine) highestUnlockedTier() int {
	maxIdx := -1
	for _, id := range tycoon.ShopUpgradeIDs {
		if e.state.UpgradeLevels[id] > 0 {
			if idx := tycoon.CategoryIndex(tycoon.Upgrades[id].Category); idx > maxIdx {
				maxIdx = idx
			}
		}
	}
	if maxIdx < 0 {
		return 0
	}
	return maxIdx
}
