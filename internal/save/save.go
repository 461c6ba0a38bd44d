// Package save persists the game snapshot behind a small storage
// port, so the engine is testable without a real backend.
package save

import (
	"context"

	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// Store is the durable storage port. Load reports found=false for a
// missing save; a corrupt save is recovered as the default snapshot,
// never surfaced as an error. Save failures are returned so the
// caller can log them, but the engine treats every attempt as
// independent and keeps running on failure.
type Store interface {
	Load(ctx context.Context) (snap tycoon.Snapshot, found bool, err error)
	Save(ctx context.Context, snap tycoon.Snapshot) error
}
