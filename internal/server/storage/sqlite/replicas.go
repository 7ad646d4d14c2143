package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/server/storage"
)

// RegisterReplica registers a new replica
// Returns ErrReplicaAlreadyExists if node id is taken
func (s *Storage) RegisterReplica(ctx context.Context, replica *models.Replica) error {
	clockJSON, err := json.Marshal(replica.Clock)
	if err != nil {
		return fmt.Errorf("failed to marshal replica clock: %w", err)
	}

	query := `
		INSERT INTO replicas (node_id, device_type, user_id, clock, created_at, last_sync_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		replica.NodeID,
		replica.DeviceType,
		replica.UserID,
		string(clockJSON),
		replica.CreatedAt.Unix(),
		replica.LastSyncAt.Unix(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return storage.ErrReplicaAlreadyExists
		}
		return fmt.Errorf("failed to register replica: %w", err)
	}
	return nil
}

// GetReplica retrieves replica by node id
// Returns ErrReplicaNotFound if replica was never registered
func (s *Storage) GetReplica(ctx context.Context, nodeID string) (*models.Replica, error) {
	query := `
		SELECT node_id, device_type, user_id, clock, created_at, last_sync_at
		FROM replicas
		WHERE node_id = ?
	`

	replica := &models.Replica{}
	var clockJSON string
	var createdAt, lastSyncAt int64

	err := s.db.QueryRowContext(ctx, query, nodeID).Scan(
		&replica.NodeID,
		&replica.DeviceType,
		&replica.UserID,
		&clockJSON,
		&createdAt,
		&lastSyncAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrReplicaNotFound
		}
		return nil, fmt.Errorf("failed to get replica: %w", err)
	}

	if err := json.Unmarshal([]byte(clockJSON), &replica.Clock); err != nil {
		return nil, fmt.Errorf("failed to unmarshal replica clock: %w", err)
	}
	replica.CreatedAt = time.Unix(createdAt, 0)
	replica.LastSyncAt = time.Unix(lastSyncAt, 0)
	return replica, nil
}

// SaveReplicaClock updates the last clock the replica presented
func (s *Storage) SaveReplicaClock(ctx context.Context, nodeID string, clock models.VectorClock) error {
	clockJSON, err := json.Marshal(clock)
	if err != nil {
		return fmt.Errorf("failed to marshal replica clock: %w", err)
	}

	query := `UPDATE replicas SET clock = ?, last_sync_at = ? WHERE node_id = ?`

	result, err := s.db.ExecContext(ctx, query, string(clockJSON), time.Now().Unix(), nodeID)
	if err != nil {
		return fmt.Errorf("failed to save replica clock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrReplicaNotFound
	}
	return nil
}

// RecordBatch remembers an applied batch with its acked sequence numbers
func (s *Storage) RecordBatch(ctx context.Context, nodeID, batchID string, ackedSeqs []uint64) error {
	seqsJSON, err := json.Marshal(ackedSeqs)
	if err != nil {
		return fmt.Errorf("failed to marshal acked seqs: %w", err)
	}

	query := `
		INSERT INTO sync_batches (node_id, batch_id, acked_seqs, created_at)
		VALUES (?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query, nodeID, batchID, string(seqsJSON), time.Now().Unix())
	if err != nil {
		return fmt.Errorf("failed to record batch: %w", err)
	}
	return nil
}

// GetBatch returns acked sequence numbers of a previously applied batch
// Returns ErrBatchNotFound if the batch was never applied
func (s *Storage) GetBatch(ctx context.Context, nodeID, batchID string) ([]uint64, error) {
	query := `SELECT acked_seqs FROM sync_batches WHERE node_id = ? AND batch_id = ?`

	var seqsJSON string
	err := s.db.QueryRowContext(ctx, query, nodeID, batchID).Scan(&seqsJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrBatchNotFound
		}
		return nil, fmt.Errorf("failed to get batch: %w", err)
	}

	var seqs []uint64
	if err := json.Unmarshal([]byte(seqsJSON), &seqs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal acked seqs: %w", err)
	}
	return seqs, nil
}

// isUniqueViolation распознает нарушение первичного ключа без привязки к
// коду ошибки конкретного драйвера
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "UNIQUE constraint failed")
}
