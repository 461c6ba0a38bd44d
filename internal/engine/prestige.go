package engine

import (
	"context"
	"math"

	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// ResetForPrestige wipes all progress and doubles the permanent
// prestige multiplier. Irreversible.
func (e *Engine) ResetForPrestige(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.state.Balance = 0
	e.state.PrestigeMultiplier *= 2
	e.wipeProgress(ctx)
}

// CanRebirth reports whether lifetime earnings cover at least one
// Golden License.
func (e *Engine) CanRebirth() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.TotalEarnings >= tycoon.RebirthThreshold
}

// ResetForRebirth grants one Golden License per full million earned,
// then wipes progress like prestige does — except the prestige
// multiplier is untouched and licenses accumulate. Returns licenses
// granted; 0 when the gate is not met, in which case nothing changes.
func (e *Engine) ResetForRebirth(ctx context.Context) int {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.state.TotalEarnings < tycoon.RebirthThreshold {
		return 0
	}
	granted := int(math.Floor(e.state.TotalEarnings / tycoon.RebirthThreshold))
	e.state.GoldenLicenses += granted
	e.state.Balance = 0
	e.wipeProgress(ctx)
	return granted
}

// wipeProgress is the shared tail of both resets. Caller holds the
// mutex and has already adjusted the fields that differ.
func (e *Engine) wipeProgress(ctx context.Context) {
	for _, id := range tycoon.ShopUpgradeIDs {
		e.state.UpgradeLevels[id] = 0
	}
	e.state.TotalEarnings = 0
	e.state.TotalClicks = 0
	e.state.MilestoneIndex = 0
	e.state.LastSyncedUnixTime = e.clock.Now().Unix()
	e.persist(ctx)
}
