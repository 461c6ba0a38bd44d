package engine

import (
	"context"

	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// MilestoneIndex is the current pointer into the threshold list,
// clamped to the last index.
func (e *Engine) MilestoneIndex() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.milestoneIndex()
}

func (e *Engine) milestoneIndex() int {
	return min(e.state.MilestoneIndex, len(tycoon.Milestones)-1)
}

// NextMilestoneTarget is the totalEarnings threshold of the current
// milestone.
func (e *Engine) NextMilestoneTarget() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.nextMilestoneTarget()
}

func (e *Engine) nextMilestoneTarget() float64 {
	return tycoon.Milestones[e.milestoneIndex()]
}

// PrevMilestoneTarget is the previous threshold, zero before the
// first milestone. Together with the next target it defines the
// progress bar range.
func (e *Engine) PrevMilestoneTarget() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prevMilestoneTarget()
}

func (e *Engine) prevMilestoneTarget() float64 {
	idx := e.milestoneIndex()
	if idx <= 0 {
		return 0
	}
	return tycoon.Milestones[idx-1]
}

// MilestoneProgress is (totalEarnings - prev) / (next - prev),
// clamped to [0, 1].
func (e *Engine) MilestoneProgress() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.milestoneProgress()
}

func (e *Engine) milestoneProgress() float64 {
	prev := e.prevMilestoneTarget()
	next := e.nextMilestoneTarget()
	if next <= prev {
		return 1
	}
	p := (e.state.TotalEarnings - prev) / (next - prev)
	return min(max(p, 0), 1)
}

// AdvanceMilestone moves the pointer forward one step, stopping at
// the last index. The engine does not auto-detect threshold
// crossings: the caller decides when to advance and calls repeatedly
// if a tick crossed several thresholds at once.
func (e *Engine) AdvanceMilestone(ctx context.Context) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.advanceMilestone(ctx)
}

func (e *Engine) advanceMilestone(ctx context.Context) bool {
	idx := e.milestoneIndex()
	if idx >= len(tycoon.Milestones)-1 {
		return false
	}
	e.state.MilestoneIndex = idx + 1
	e.persist(ctx)
	return true
}
