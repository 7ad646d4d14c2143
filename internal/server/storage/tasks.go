package storage

import (
	"context"

	"github.com/iudanet/tasksync/internal/models"
)

// TaskRecord привязывает задачу к счетчику сервера, на котором она была
// изменена в последний раз. По этому счетчику считается встречная дельта:
// сравнивать счетчики задач разных реплик между собой нельзя, а счетчик
// сервера один на всех.
type TaskRecord struct {
	Task          *models.Task
	ServerVersion int64
}

// TaskStorage defines interface for merged server-side task state persistence.
// Решения о слиянии принимает обработчик через CRDT-ядро, хранилище отвечает
// только за атомарность применения результата.
type TaskStorage interface {
	// GetTask retrieves a single task by ID
	// Returns ErrTaskNotFound if task doesn't exist
	GetTask(ctx context.Context, id string) (*TaskRecord, error)

	// GetAllTasks retrieves all tasks including soft-deleted ones keyed by ID
	GetAllTasks(ctx context.Context) (map[string]*TaskRecord, error)

	// UpsertTasks saves merged tasks in a single transaction, stamping each
	// row with the server counter of the round that produced it
	UpsertTasks(ctx context.Context, tasks []*models.Task, serverVersion int64) error
}

// StateStorage defines interface for the server replica clock persistence
type StateStorage interface {
	// GetServerClock returns the current server clock
	// Returns ErrClockNotFound before the first save
	GetServerClock(ctx context.Context) (models.VectorClock, error)

	// SaveServerClock persists the server clock
	SaveServerClock(ctx context.Context, clock models.VectorClock) error
}
