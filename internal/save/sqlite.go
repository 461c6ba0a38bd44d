package save

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/yerevantaxi/tycoon/internal/tycoon"
)

// profileKey is the single save slot. The service owns one player
// profile per process.
const profileKey = "player"

// SQLiteStore keeps the snapshot as one JSON blob row.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates the saves table if needed.
func NewSQLiteStore(ctx context.Context, db *sql.DB) (*SQLiteStore, error) {
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS saves (
			profile TEXT PRIMARY KEY,
			data TEXT NOT NULL,
			updated_at TEXT NOT NULL
		)
	`)
	if err != nil {
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (tycoon.Snapshot, bool, error) {
	var raw string
	err := s.db.QueryRowContext(ctx, `
		SELECT data FROM saves WHERE profile = ?
	`, profileKey).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return tycoon.Snapshot{}, false, nil
	}
	if err != nil {
		return tycoon.Snapshot{}, false, err
	}

	var snap tycoon.Snapshot
	if err := json.Unmarshal([]byte(raw), &snap); err != nil {
		// Corrupt blob: recover with a fresh save rather than fail.
		return tycoon.Snapshot{}, false, nil
	}
	return snap, true, nil
}

func (s *SQLiteStore) Save(ctx context.Context, snap tycoon.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO saves (profile, data, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT (profile) DO UPDATE SET
			data = excluded.data,
			updated_at = excluded.updated_at
	`, profileKey, string(data), time.Now().UTC().Format(time.RFC3339Nano))
	return err
}

// Ping reports storage health for the health endpoint.
func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}
