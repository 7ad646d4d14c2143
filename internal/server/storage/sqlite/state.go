package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/server/storage"
)

const keyServerClock = "server_clock"

// GetServerClock returns the current server clock
// Returns ErrClockNotFound before the first save
func (s *Storage) GetServerClock(ctx context.Context) (models.VectorClock, error) {
	query := `SELECT value FROM server_metadata WHERE key = ?`

	var clockJSON string
	err := s.db.QueryRowContext(ctx, query, keyServerClock).Scan(&clockJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VectorClock{}, storage.ErrClockNotFound
		}
		return models.VectorClock{}, fmt.Errorf("failed to get server clock: %w", err)
	}

	var clock models.VectorClock
	if err := json.Unmarshal([]byte(clockJSON), &clock); err != nil {
		return models.VectorClock{}, fmt.Errorf("failed to unmarshal server clock: %w", err)
	}
	return clock, nil
}

// SaveServerClock persists the server clock
func (s *Storage) SaveServerClock(ctx context.Context, clock models.VectorClock) error {
	clockJSON, err := json.Marshal(clock)
	if err != nil {
		return fmt.Errorf("failed to marshal server clock: %w", err)
	}

	query := `
		INSERT INTO server_metadata (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`

	if _, err := s.db.ExecContext(ctx, query, keyServerClock, string(clockJSON)); err != nil {
		return fmt.Errorf("failed to save server clock: %w", err)
	}
	return nil
}
