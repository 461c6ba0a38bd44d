package tycoon

// Snapshot is the persisted save shape. All fields are independently
// defaulted on load — external input is never trusted.
type Snapshot struct {
	Balance                float64        `json:"balance"`
	TotalEarnings          float64        `json:"totalEarnings"`
	TotalClicks            int64          `json:"totalClicks"`
	MilestoneIndex         int            `json:"milestoneIndex"`
	PrestigeMultiplier     float64        `json:"prestigeMultiplier"`
	GoldenLicenses         int            `json:"goldenLicenses"`
	UpgradeLevels          map[string]int `json:"upgradeLevels"`
	LastSyncedUnixTime     int64          `json:"lastSyncedUnixTime"`
	UnlockedAchievementIDs []string       `json:"unlockedAchievementIds"`
}

// DefaultSnapshot is a fresh save: zero progress, prestige 1, every
// catalog upgrade at level 0, synced at nowUnix.
func DefaultSnapshot(nowUnix int64) Snapshot {
	levels := make(map[string]int, len(ShopUpgradeIDs))
	for _, id := range ShopUpgradeIDs {
		levels[id] = 0
	}
	return Snapshot{
		PrestigeMultiplier: 1,
		UpgradeLevels:      levels,
		LastSyncedUnixTime: nowUnix,
	}
}

// Sanitize clamps a loaded snapshot to the reachable state space:
// negative numbers become zero, the prestige multiplier is at least 1,
// the milestone index stays inside Milestones, upgrade ids missing
// from the catalog are dropped, catalog ids missing from the save
// default to level 0, and unknown achievement ids are dropped.
func (s Snapshot) Sanitize(nowUnix int64) Snapshot {
	if s.Balance < 0 {
		s.Balance = 0
	}
	if s.TotalEarnings < 0 {
		s.TotalEarnings = 0
	}
	if s.TotalClicks < 0 {
		s.TotalClicks = 0
	}
	if s.MilestoneIndex < 0 {
		s.MilestoneIndex = 0
	}
	if s.MilestoneIndex > len(Milestones)-1 {
		s.MilestoneIndex = len(Milestones) - 1
	}
	if s.PrestigeMultiplier < 1 {
		s.PrestigeMultiplier = 1
	}
	if s.GoldenLicenses < 0 {
		s.GoldenLicenses = 0
	}
	if s.LastSyncedUnixTime <= 0 {
		s.LastSyncedUnixTime = nowUnix
	}

	levels := make(map[string]int, len(ShopUpgradeIDs))
	for _, id := range ShopUpgradeIDs {
		if lvl, ok := s.UpgradeLevels[id]; ok && lvl > 0 {
			levels[id] = lvl
		} else {
			levels[id] = 0
		}
	}
	s.UpgradeLevels = levels

	var unlocked []string
	seen := make(map[string]bool, len(s.UnlockedAchievementIDs))
	for _, id := range s.UnlockedAchievementIDs {
		if _, ok := AchievementByID(id); !ok || seen[id] {
			continue
		}
		seen[id] = true
		unlocked = append(unlocked, id)
	}
	s.UnlockedAchievementIDs = unlocked

	return s
}

// Clone returns a deep copy, so callers can hand snapshots across
// goroutine boundaries without aliasing the engine's maps.
func (s Snapshot) Clone() Snapshot {
	levels := make(map[string]int, len(s.UpgradeLevels))
	for id, lvl := range s.UpgradeLevels {
		levels[id] = lvl
	}
	s.UpgradeLevels = levels
	s.UnlockedAchievementIDs = append([]string(nil), s.UnlockedAchievementIDs...)
	return s
}
