package engine

import "time"

// ActivateSpeedBoost arms the 2x boost until now + duration. A new
// grant overwrites the expiry; boosts do not stack or extend.
func (e *Engine) ActivateSpeedBoost(duration time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.speedBoostUntil = e.clock.Now().Add(duration)
}

// ActivateRushHour arms the independent 5x boost until now + duration.
func (e *Engine) ActivateRushHour(duration time.Duration) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.rushHourUntil = e.clock.Now().Add(duration)
}

// SpeedBoostRemaining is the time left on the 2x boost, clamped to
// zero once expired.
func (e *Engine) SpeedBoostRemaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return remaining(e.clock.Now(), e.speedBoostUntil)
}

// RushHourRemaining is the time left on the 5x boost.
func (e *Engine) RushHourRemaining() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return remaining(e.clock.Now(), e.rushHourUntil)
}

func remaining(now, until time.Time) time.Duration {
	if !now.Before(until) {
		return 0
	}
	return until.Sub(now)
}
