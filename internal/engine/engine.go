// Package engine owns the mutable player state and applies every
// economy transaction: earnings, purchases, milestone and prestige
// progression, time-boxed boosts and offline catch-up. All state
// lives on one Engine instance behind one mutex; there are no
// package-level singletons.
package engine

import (
	"context"
	"errors"
	"log/slog"
	"math"
	"sync"
	"time"

	"github.com/yerevantaxi/tycoon/internal/achievements"
	"github.com/yerevantaxi/tycoon/internal/save"
	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// ErrUnknownUpgrade rejects transactions against ids not in the
// catalog.
var ErrUnknownUpgrade = errors.New("unknown upgrade id")

// Engine is the progression engine. Every exported method takes the
// mutex; the arithmetic inside is not safe under concurrent
// read-modify-write, and this host has HTTP handlers, the tick loop
// and websocket writers all calling in.
type Engine struct {
	mu     sync.Mutex
	logger *slog.Logger
	clock  Clock
	store  save.Store
	ach    *achievements.Tracker

	state tycoon.Snapshot

	speedBoostUntil time.Time
	rushHourUntil   time.Time
	sessionStart    time.Time
	lastTick        time.Time

	offlineSeconds  int64
	offlineEarnings float64
	offlineClaimed  bool
}

// New loads the snapshot from the store (defaulting a missing or
// corrupt save field by field), restores the achievement set, and
// computes the offline catch-up pair from the loaded state before
// touching the sync timestamp. A store read failure degrades to a
// fresh save rather than halting.
func New(ctx context.Context, logger *slog.Logger, clock Clock, store save.Store) *Engine {
	now := clock.Now()

	snap, found, err := store.Load(ctx)
	if err != nil {
		logger.Warn("loading save failed, starting fresh", "error", err)
		found = false
	}
	if !found {
		snap = tycoon.DefaultSnapshot(now.Unix())
	}
	snap = snap.Sanitize(now.Unix())

	ach := achievements.NewTracker()
	ach.Restore(snap.UnlockedAchievementIDs)

	e := &Engine{
		logger:       logger,
		clock:        clock,
		store:        store,
		ach:          ach,
		state:        snap,
		sessionStart: now,
		lastTick:     now,
	}

	// Offline catch-up uses the reconnect-time multiplier state, as
	// the original game does: whatever effects are active now apply
	// to the whole offline span.
	if found {
		e.offlineSeconds = max(0, now.Unix()-snap.LastSyncedUnixTime)
		e.offlineEarnings = math.Floor(e.idleIncomePerSecond(now) * float64(e.offlineSeconds))
	}

	e.state.LastSyncedUnixTime = now.Unix()
	e.persist(ctx)
	return e
}

// --- price curve ---

// UpgradePriceAt is the unit price for buying at the given level:
// floor(basePrice * 1.15^level).
func (e *Engine) UpgradePriceAt(id string, level int) (float64, error) {
	cfg, ok := tycoon.Upgrades[id]
	if !ok {
		return 0, ErrUnknownUpgrade
	}
	return priceAt(cfg, level), nil
}

// UpgradePrice is the unit price at the upgrade's current level.
func (e *Engine) UpgradePrice(id string) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	cfg, ok := tycoon.Upgrades[id]
	if !ok {
		return 0, ErrUnknownUpgrade
	}
	return priceAt(cfg, e.state.UpgradeLevels[id]), nil
}

func priceAt(cfg tycoon.Upgrade, level int) float64 {
	return math.Floor(cfg.BasePrice * math.Pow(tycoon.PriceGrowth, float64(level)))
}

// BatchCostAt sums count sequential unit prices starting at level.
// Computed iteratively, not via the closed-form geometric series: the
// closed form floors once at the end and diverges from the sum of
// individually floored unit prices, and the partial-purchase path has
// to walk unit by unit anyway.
func (e *Engine) BatchCostAt(id string, level, count int) (float64, error) {
	cfg, ok := tycoon.Upgrades[id]
	if !ok {
		return 0, ErrUnknownUpgrade
	}
	total := 0.0
	for k := 0; k < count; k++ {
		total += priceAt(cfg, level+k)
	}
	return total, nil
}

// BatchCost sums count sequential unit prices from the current level.
func (e *Engine) BatchCost(id string, count int) (float64, error) {
	e.mu.Lock()
	level := e.state.UpgradeLevels[id]
	e.mu.Unlock()
	return e.BatchCostAt(id, level, count)
}

// --- derived quantities ---

// multiplier is prestige * (1 + 0.10*goldenLicenses + sum of
// multiplierPercent effects). Recomputed on demand over the ~20-entry
// catalog; no caching.
func (e *Engine) multiplier() float64 {
	mult := 1 + float64(e.state.GoldenLicenses)*tycoon.GoldenLicenseBonus
	for _, id := range tycoon.ShopUpgradeIDs {
		cfg := tycoon.Upgrades[id]
		if cfg.MultiplierPercent != 0 {
			mult += float64(e.state.UpgradeLevels[id]) * cfg.MultiplierPercent
		}
	}
	return e.state.PrestigeMultiplier * mult
}

func (e *Engine) speedFactor(now time.Time) float64 {
	if now.Before(e.speedBoostUntil) {
		return 2
	}
	return 1
}

func (e *Engine) rushFactor(now time.Time) float64 {
	if now.Before(e.rushHourUntil) {
		return 5
	}
	return 1
}

func (e *Engine) clickValue(now time.Time) float64 {
	bonus := 0.0
	for _, id := range tycoon.ShopUpgradeIDs {
		cfg := tycoon.Upgrades[id]
		if cfg.PerClickBonus != 0 {
			bonus += float64(e.state.UpgradeLevels[id]) * cfg.PerClickBonus
		}
	}
	return (1 + bonus) * e.multiplier() * e.speedFactor(now) *
		e.ach.BonusMultiplier() * e.rushFactor(now)
}

func (e *Engine) idleIncomePerSecond(now time.Time) float64 {
	total := 0.0
	for _, id := range tycoon.ShopUpgradeIDs {
		cfg := tycoon.Upgrades[id]
		if cfg.AMDPerSecond != 0 {
			total += float64(e.state.UpgradeLevels[id]) * cfg.AMDPerSecond
		}
	}
	return total * e.multiplier() * e.speedFactor(now) * e.rushFactor(now) *
		e.ach.BonusMultiplier()
}

func (e *Engine) Multiplier() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.multiplier()
}

func (e *Engine) ClickValue() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.clickValue(e.clock.Now())
}

func (e *Engine) IdleIncomePerSecond() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.idleIncomePerSecond(e.clock.Now())
}

// --- transactions ---

// Credit adds a positive amount to balance and totalEarnings.
// Negative amounts clamp to zero, so totalEarnings never decreases
// through this path. Returns the credited amount.
func (e *Engine) Credit(ctx context.Context, amount float64) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.credit(ctx, amount)
}

func (e *Engine) credit(ctx context.Context, amount float64) float64 {
	amt := math.Max(0, amount)
	e.state.Balance += amt
	if amt > 0 {
		e.state.TotalEarnings += amt
	}
	e.state.LastSyncedUnixTime = e.clock.Now().Unix()
	e.persist(ctx)
	return amt
}

// ClickResult reports one click: the amount credited and any
// achievement it newly unlocked.
type ClickResult struct {
	Credited    float64
	TotalClicks int64
	Unlocked    *tycoon.Achievement
}

// Click applies one taxi click: records it in the rate window, bumps
// the lifetime counter, credits the click value and re-checks
// achievements once.
func (e *Engine) Click(ctx context.Context) ClickResult {
	e.mu.Lock()
	defer e.mu.Unlock()

	now := e.clock.Now()
	e.ach.TrackClick(now)
	e.state.TotalClicks++

	res := ClickResult{
		Credited:    e.credit(ctx, e.clickValue(now)),
		TotalClicks: e.state.TotalClicks,
	}
	if a, ok := e.checkAchievements(ctx, now); ok {
		res.Unlocked = &a
	}
	return res
}

// PurchaseResult is a partial-success record: a batch stops at the
// first unaffordable unit and reports what it bought.
type PurchaseResult struct {
	Bought     int
	TotalSpent float64
	Level      int
	NextPrice  float64
}

// Purchase buys one level. Bought == 0 means the balance did not
// cover the price; the call is then a no-op, never an error.
func (e *Engine) Purchase(ctx context.Context, id string) (PurchaseResult, error) {
	return e.PurchaseBatch(ctx, id, 1)
}

// PurchaseBatch buys up to count levels at sequential unit prices,
// deducting from balance only (spending never touches totalEarnings).
func (e *Engine) PurchaseBatch(ctx context.Context, id string, count int) (PurchaseResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cfg, ok := tycoon.Upgrades[id]
	if !ok {
		return PurchaseResult{}, ErrUnknownUpgrade
	}

	var res PurchaseResult
	for i := 0; i < count; i++ {
		price := priceAt(cfg, e.state.UpgradeLevels[id])
		if e.state.Balance < price {
			break
		}
		e.state.Balance -= price
		e.state.UpgradeLevels[id]++
		res.Bought++
		res.TotalSpent += price
	}

	res.Level = e.state.UpgradeLevels[id]
	res.NextPrice = priceAt(cfg, res.Level)

	if res.Bought > 0 {
		e.state.LastSyncedUnixTime = e.clock.Now().Unix()
		e.persist(ctx)
	}
	return res, nil
}

// --- persistence ---

// persist flushes the snapshot. Storage failures degrade to running
// with unsaved state: logged, never propagated.
func (e *Engine) persist(ctx context.Context) {
	snap := e.state.Clone()
	snap.UnlockedAchievementIDs = e.ach.UnlockedIDs()
	if err := e.store.Save(ctx, snap); err != nil {
		e.logger.Warn("saving game state failed", "error", err)
	}
}

// SaveNow forces a flush; the autosave ticker calls this every 20 s.
func (e *Engine) SaveNow(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.persist(ctx)
}

// Snapshot returns a deep copy of the current persisted shape.
func (e *Engine) Snapshot() tycoon.Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	snap := e.state.Clone()
	snap.UnlockedAchievementIDs = e.ach.UnlockedIDs()
	return snap
}

// Reset wipes all progress back to the default save (dev tool).
func (e *Engine) Reset(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	now := e.clock.Now()
	e.state = tycoon.DefaultSnapshot(now.Unix())
	e.ach.Restore(nil)
	e.speedBoostUntil = time.Time{}
	e.rushHourUntil = time.Time{}
	e.persist(ctx)
}
