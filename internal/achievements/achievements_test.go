package achievements

import (
	"testing"
	"time"

	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

var t0 = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func TestClicksPerMinuteCountsWindow(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 10; i++ {
		tr.TrackClick(t0.Add(time.Duration(i) * time.Second))
	}
	if got := tr.ClicksPerMinute(t0.Add(9 * time.Second)); got != 10 {
		t.Errorf("cpm = %d, want 10", got)
	}
}

func TestClicksPerMinuteDecaysWithoutTrim(t *testing.T) {
	tr := NewTracker()
	tr.TrackClick(t0)
	tr.TrackClick(t0.Add(time.Second))

	// No TrackClick since, so nothing trimmed the buffer; the count
	// must still decay to zero as the window slides past it.
	if got := tr.ClicksPerMinute(t0.Add(30 * time.Second)); got != 2 {
		t.Errorf("cpm at +30s = %d, want 2", got)
	}
	if got := tr.ClicksPerMinute(t0.Add(61 * time.Second)); got != 0 {
		t.Errorf("cpm at +61s = %d, want 0", got)
	}
}

func TestTrackClickEvictsOldEntries(t *testing.T) {
	tr := NewTracker()
	tr.TrackClick(t0)
	tr.TrackClick(t0.Add(2 * time.Minute))
	if got := len(tr.clicks); got != 1 {
		t.Errorf("buffer length = %d, want 1 after eviction", got)
	}
}

func TestUnlockExactlyOnce(t *testing.T) {
	tr := NewTracker()

	if _, ok := tr.CheckAndUnlock(Stats{TotalClicks: 99}, t0); ok {
		t.Fatal("unlocked at 99 clicks")
	}

	a, ok := tr.CheckAndUnlock(Stats{TotalClicks: 100}, t0)
	if !ok || a.ID != "barev" {
		t.Fatalf("expected barev, got %v %v", a.ID, ok)
	}

	if _, ok := tr.CheckAndUnlock(Stats{TotalClicks: 100}, t0); ok {
		t.Error("barev unlocked twice")
	}
}

func TestSingleUnlockPerCall(t *testing.T) {
	tr := NewTracker()

	// Meets both the 100-click and the 5-levels goals at once; one
	// achievement surfaces per call, in definition order.
	stats := Stats{TotalClicks: 100, LevelsBought: 5}

	a, ok := tr.CheckAndUnlock(stats, t0)
	if !ok || a.ID != "barev" {
		t.Fatalf("first call: got %v %v, want barev", a.ID, ok)
	}
	a, ok = tr.CheckAndUnlock(stats, t0)
	if !ok || a.ID != "gas" {
		t.Fatalf("second call: got %v %v, want gas", a.ID, ok)
	}
	if _, ok := tr.CheckAndUnlock(stats, t0); ok {
		t.Error("third call unlocked something else")
	}
}

func TestUpgradeLevelGoal(t *testing.T) {
	tr := NewTracker()
	stats := Stats{UpgradeLevels: map[string]int{"white_opel_astra": 50}}
	a, ok := tr.CheckAndUnlock(stats, t0)
	if !ok || a.ID != "legendary_astra" {
		t.Fatalf("got %v %v, want legendary_astra", a.ID, ok)
	}
}

func TestSessionTimeGoal(t *testing.T) {
	tr := NewTracker()
	if _, ok := tr.CheckAndUnlock(Stats{SessionTimeSeconds: 3599}, t0); ok {
		t.Fatal("unlocked below one hour")
	}
	a, ok := tr.CheckAndUnlock(Stats{SessionTimeSeconds: 3600}, t0)
	if !ok || a.ID != "no_traffic" {
		t.Fatalf("got %v %v, want no_traffic", a.ID, ok)
	}
}

func TestClicksPerMinuteGoal(t *testing.T) {
	tr := NewTracker()
	for i := 0; i < 50; i++ {
		tr.TrackClick(t0.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	a, ok := tr.CheckAndUnlock(Stats{}, t0.Add(5*time.Second))
	if !ok || a.ID != "olympic_speed" {
		t.Fatalf("got %v %v, want olympic_speed", a.ID, ok)
	}
}

func TestBonusMultiplier(t *testing.T) {
	tr := NewTracker()
	if got := tr.BonusMultiplier(); got != 1 {
		t.Errorf("empty bonus = %v, want 1", got)
	}
	tr.Restore([]string{"barev", "gas", "route100"})
	if got := tr.BonusMultiplier(); got != 1.06 {
		t.Errorf("bonus = %v, want 1.06", got)
	}
}

func TestRestoreKeepsUnlocks(t *testing.T) {
	tr := NewTracker()
	tr.Restore([]string{"barev"})

	if _, ok := tr.CheckAndUnlock(Stats{TotalClicks: 1000}, t0); ok {
		t.Error("restored achievement unlocked again")
	}
	if got := tr.UnlockedCount(); got != 1 {
		t.Errorf("unlocked count = %d, want 1", got)
	}
}

func TestDefinitionsCoverAllGoalTypes(t *testing.T) {
	types := make(map[tycoon.GoalType]bool)
	for _, a := range tycoon.Achievements {
		types[a.GoalType] = true
	}
	for _, gt := range []tycoon.GoalType{
		tycoon.GoalTotalClicks, tycoon.GoalTotalEarnings,
		tycoon.GoalLevelsBought, tycoon.GoalClicksPerMinute,
		tycoon.GoalUpgradeLevel, tycoon.GoalSessionTime,
	} {
		if !types[gt] {
			t.Errorf("no achievement with goal type %s", gt)
		}
	}
}
