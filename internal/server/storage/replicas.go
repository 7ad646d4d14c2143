package storage

import (
	"context"

	"github.com/iudanet/tasksync/internal/models"
)

// ReplicaStorage defines interface for known replica registry persistence.
// Часы реплики в реестре двигаются только вперед: по ним сервер считает
// дельту изменений, отставшие часы означали бы повторную отправку всего.
type ReplicaStorage interface {
	// RegisterReplica registers a new replica
	// Returns ErrReplicaAlreadyExists if node id is taken
	RegisterReplica(ctx context.Context, replica *models.Replica) error

	// GetReplica retrieves replica by node id
	// Returns ErrReplicaNotFound if replica was never registered
	GetReplica(ctx context.Context, nodeID string) (*models.Replica, error)

	// SaveReplicaClock updates the last clock the replica presented
	SaveReplicaClock(ctx context.Context, nodeID string, clock models.VectorClock) error

	// RecordBatch remembers an applied batch with its acked sequence numbers.
	// Нужен для идемпотентности: повтор батча не применяется второй раз
	RecordBatch(ctx context.Context, nodeID, batchID string, ackedSeqs []uint64) error

	// GetBatch returns acked sequence numbers of a previously applied batch
	// Returns ErrBatchNotFound if the batch was never applied
	GetBatch(ctx context.Context, nodeID, batchID string) ([]uint64, error)
}
