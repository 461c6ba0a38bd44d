package engine

import "context"

// OfflineReport is the catch-up pair computed once at startup:
// earnings accrued while the process was down, and the span they
// cover.
type OfflineReport struct {
	Earnings float64
	Seconds  int64
	Claimed  bool
}

// OfflineReport returns the pending catch-up without applying it.
func (e *Engine) OfflineReport() OfflineReport {
	e.mu.Lock()
	defer e.mu.Unlock()
	return OfflineReport{
		Earnings: e.offlineEarnings,
		Seconds:  e.offlineSeconds,
		Claimed:  e.offlineClaimed,
	}
}

// ClaimOffline credits the catch-up earnings exactly once. Later
// calls report Claimed with zero earnings.
func (e *Engine) ClaimOffline(ctx context.Context) OfflineReport {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.offlineClaimed || e.offlineEarnings <= 0 {
		e.offlineClaimed = true
		return OfflineReport{Claimed: true}
	}

	rep := OfflineReport{
		Earnings: e.offlineEarnings,
		Seconds:  e.offlineSeconds,
		Claimed:  true,
	}
	e.offlineClaimed = true
	e.credit(ctx, e.offlineEarnings)
	return rep
}
