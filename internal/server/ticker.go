package server

import (
	"context"
	"log/slog"
	"time"

	"github.com/yerevantaxi/tycoon/internal/engine"
)

// RunTicker drives the engine: one idle-income/achievement tick per
// tickInterval and one forced save per saveInterval. Blocks until ctx
// is cancelled, then flushes a final save.
func RunTicker(ctx context.Context, logger *slog.Logger, eng *engine.Engine, broker *Broker, tickInterval, saveInterval time.Duration) error {
	tick := time.NewTicker(tickInterval)
	defer tick.Stop()
	autosave := time.NewTicker(saveInterval)
	defer autosave.Stop()

	for {
		select {
		case <-ctx.Done():
			eng.SaveNow(context.Background())
			logger.Info("final save flushed")
			return nil

		case <-tick.C:
			res := eng.Tick(ctx)
			if res.MilestonesAdvanced > 0 {
				final := eng.MilestoneIndex()
				for i := res.MilestonesAdvanced - 1; i >= 0; i-- {
					broker.Publish(GameEvent{
						Type:           "milestone_reached",
						MilestoneIndex: final - i,
					})
				}
			}
			if res.Unlocked != nil {
				broker.Publish(GameEvent{
					Type:            "achievement_unlocked",
					AchievementID:   res.Unlocked.ID,
					AchievementName: res.Unlocked.Name,
				})
			}

		case <-autosave.C:
			eng.SaveNow(ctx)
		}
	}
}
