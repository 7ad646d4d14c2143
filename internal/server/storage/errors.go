package storage

import "errors"

// Common storage errors
var (
	// ErrTaskNotFound indicates that task was not found in storage
	ErrTaskNotFound = errors.New("task not found")

	// ErrReplicaNotFound indicates that replica was not registered
	ErrReplicaNotFound = errors.New("replica not found")

	// ErrReplicaAlreadyExists indicates that replica with this node id is already registered
	ErrReplicaAlreadyExists = errors.New("replica already exists")

	// ErrBatchNotFound indicates that batch was not applied before
	ErrBatchNotFound = errors.New("batch not found")

	// ErrClockNotFound indicates that server clock was not persisted yet
	ErrClockNotFound = errors.New("server clock not found")
)
