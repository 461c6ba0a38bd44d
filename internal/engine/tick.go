package engine

import (
	"context"
	"time"

	"github.com/yerevantaxi/tycoon/internal/achievements"
	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// TickResult reports what one idle tick did, so the caller can
// publish toasts and meter frames.
type TickResult struct {
	Credited            float64
	Balance             float64
	IdleIncomePerSecond float64
	MilestonesAdvanced  int
	Unlocked            *tycoon.Achievement
}

// Tick runs one idle-income step: credits passive income for the time
// elapsed since the previous tick, advances every milestone threshold
// the new total crossed, and re-checks achievements once. The driver
// calls this on a fixed interval (1 s reference cadence).
func (e *Engine) Tick(ctx context.Context) TickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	dt := now.Sub(e.lastTick).Seconds()
	if e.lastTick.IsZero() || dt < 0 {
		dt = 0
	}
	e.lastTick = now

	var res TickResult
	res.IdleIncomePerSecond = e.idleIncomePerSecond(now)
	if income := res.IdleIncomePerSecond * dt; income > 0 {
		res.Credited = e.credit(ctx, income)
	}

	// AdvanceMilestone is a dumb pointer increment; the tick is the
	// caller that checks crossings, looping in case one credit jumped
	// several thresholds.
	for e.state.TotalEarnings >= e.nextMilestoneTarget() {
		if !e.advanceMilestone(ctx) {
			break
		}
		res.MilestonesAdvanced++
	}

	if a, ok := e.checkAchievements(ctx, now); ok {
		res.Unlocked = &a
	}

	res.Balance = e.state.Balance
	return res
}

// checkAchievements runs one single-unlock achievement pass and
// persists when something unlocked. Caller holds the mutex.
func (e *Engine) checkAchievements(ctx context.Context, now time.Time) (tycoon.Achievement, bool) {
	stats := achievements.Stats{
		TotalClicks:        e.state.TotalClicks,
		TotalEarnings:      e.state.TotalEarnings,
		LevelsBought:       e.levelsBought(),
		UpgradeLevels:      e.state.UpgradeLevels,
		SessionTimeSeconds: now.Sub(e.sessionStart).Seconds(),
	}
	a, ok := e.ach.CheckAndUnlock(stats, now)
	if ok {
		e.persist(ctx)
	}
	return a, ok
}
