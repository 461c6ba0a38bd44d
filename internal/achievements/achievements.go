// Package achievements evaluates unlock goals against player stats
// and a rolling click-rate window. It never mutates player state;
// the engine reads the bonus multiplier back from it.
package achievements

import (
	"time"

	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// rollingWindow is the trailing window for clicks-per-minute.
const rollingWindow = 60 * time.Second

// Stats is the read-only player view handed to CheckAndUnlock.
type Stats struct {
	TotalClicks        int64
	TotalEarnings      float64
	LevelsBought       int
	UpgradeLevels      map[string]int
	SessionTimeSeconds float64
}

// Tracker owns achievement state: the unlocked set (insertion order
// preserved for display) and the recent click timestamps. Not safe
// for concurrent use; the engine serializes access.
type Tracker struct {
	unlocked   []string
	unlockedBy map[string]bool
	clicks     []time.Time
}

func NewTracker() *Tracker {
	return &Tracker{unlockedBy: make(map[string]bool)}
}

// Restore replaces the unlocked set from a loaded save. Unknown ids
// are assumed already filtered by the snapshot sanitizer.
func (t *Tracker) Restore(ids []string) {
	t.unlocked = append([]string(nil), ids...)
	t.unlockedBy = make(map[string]bool, len(ids))
	for _, id := range ids {
		t.unlockedBy[id] = true
	}
}

// TrackClick records a click. Timestamps arrive in order, so evicting
// stale entries is a prefix trim.
func (t *Tracker) TrackClick(now time.Time) {
	t.clicks = append(t.clicks, now)
	cut := now.Add(-rollingWindow)
	i := 0
	for i < len(t.clicks) && t.clicks[i].Before(cut) {
		i++
	}
	if i > 0 {
		t.clicks = append(t.clicks[:0], t.clicks[i:]...)
	}
}

// ClicksPerMinute counts clicks inside the trailing window at query
// time. It is a live count, not the buffer length: with no new clicks
// the rate decays to zero as the window slides past the buffer.
func (t *Tracker) ClicksPerMinute(now time.Time) int {
	cut := now.Add(-rollingWindow)
	n := 0
	for i := len(t.clicks) - 1; i >= 0; i-- {
		if t.clicks[i].Before(cut) {
			break
		}
		n++
	}
	return n
}

// CheckAndUnlock walks the definitions in fixed order and unlocks the
// first goal that is met and still locked, returning it. At most one
// achievement unlocks per call; callers re-invoke on every tick and
// click, so simultaneous unlocks surface on consecutive calls.
func (t *Tracker) CheckAndUnlock(stats Stats, now time.Time) (tycoon.Achievement, bool) {
	cpm := t.ClicksPerMinute(now)

	for _, a := range tycoon.Achievements {
		if t.unlockedBy[a.ID] {
			continue
		}

		met := false
		switch a.GoalType {
		case tycoon.GoalTotalClicks:
			met = float64(stats.TotalClicks) >= a.Target
		case tycoon.GoalTotalEarnings:
			met = stats.TotalEarnings >= a.Target
		case tycoon.GoalLevelsBought:
			met = float64(stats.LevelsBought) >= a.Target
		case tycoon.GoalClicksPerMinute:
			met = float64(cpm) >= a.Target
		case tycoon.GoalUpgradeLevel:
			met = float64(stats.UpgradeLevels[a.UpgradeID]) >= a.Target
		case tycoon.GoalSessionTime:
			met = stats.SessionTimeSeconds >= a.Target
		}

		if met {
			t.unlocked = append(t.unlocked, a.ID)
			t.unlockedBy[a.ID] = true
			return a, true
		}
	}
	return tycoon.Achievement{}, false
}

// UnlockedIDs returns a copy of the unlocked set in unlock order.
func (t *Tracker) UnlockedIDs() []string {
	return append([]string(nil), t.unlocked...)
}

func (t *Tracker) UnlockedCount() int {
	return len(t.unlocked)
}

// BonusMultiplier is the permanent income factor from achievements:
// +2 % per unlock.
func (t *Tracker) BonusMultiplier() float64 {
	return 1 + float64(len(t.unlocked))*tycoon.AchievementBonus
}
