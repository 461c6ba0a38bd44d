package save

import (
	"context"
	"sync"

	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// MemoryStore is an in-process Store for tests and ephemeral runs.
type MemoryStore struct {
	mu    sync.Mutex
	snap  tycoon.Snapshot
	found bool

	// FailSaves makes every Save return an error, to exercise the
	// engine's running-with-unsaved-state degradation.
	FailSaves error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (tycoon.Snapshot, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.found {
		return tycoon.Snapshot{}, false, nil
	}
	return m.snap.Clone(), true, nil
}

func (m *MemoryStore) Save(ctx context.Context, snap tycoon.Snapshot) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.snap = snap.Clone()
	m.found = true
	return nil
}

// Seed preloads a snapshot, as if a previous session had saved it.
func (m *MemoryStore) Seed(snap tycoon.Snapshot) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.snap = snap.Clone()
	m.found = true
}
