package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
)

const (
	keyNodeID       = "node_id"
	keyReplicaClock = "replica_clock"
)

// SaveNodeID stores the replica identifier
func (s *Storage) SaveNodeID(ctx context.Context, nodeID string) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyNodeID), []byte(nodeID)); err != nil {
			return fmt.Errorf("failed to save node id: %w", err)
		}

		return nil
	})
}

// GetNodeID retrieves the replica identifier
// Returns ErrMetadataNotFound before the replica is initialized
func (s *Storage) GetNodeID(ctx context.Context) (string, error) {
	if s.db == nil {
		return "", storage.ErrStorageClosed
	}

	var nodeID string

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return storage.ErrMetadataNotFound
		}

		data := bucket.Get([]byte(keyNodeID))
		if data == nil {
			return storage.ErrMetadataNotFound
		}

		nodeID = string(data)
		return nil
	})

	if err != nil {
		return "", err
	}

	return nodeID, nil
}

// SaveReplicaClock stores the replica vector clock
func (s *Storage) SaveReplicaClock(ctx context.Context, clock models.VectorClock) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	data, err := json.Marshal(clock)
	if err != nil {
		return fmt.Errorf("failed to marshal replica clock: %w", err)
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		if err := bucket.Put([]byte(keyReplicaClock), data); err != nil {
			return fmt.Errorf("failed to save replica clock: %w", err)
		}

		return nil
	})
}

// GetReplicaClock retrieves the replica vector clock
// Returns ErrMetadataNotFound before the replica is initialized
func (s *Storage) GetReplicaClock(ctx context.Context) (models.VectorClock, error) {
	if s.db == nil {
		return models.VectorClock{}, storage.ErrStorageClosed
	}

	var clock models.VectorClock

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return storage.ErrMetadataNotFound
		}

		data := bucket.Get([]byte(keyReplicaClock))
		if data == nil {
			return storage.ErrMetadataNotFound
		}

		if err := json.Unmarshal(data, &clock); err != nil {
			return fmt.Errorf("failed to unmarshal replica clock: %w", err)
		}

		return nil
	})

	if err != nil {
		return models.VectorClock{}, err
	}

	return clock, nil
}
