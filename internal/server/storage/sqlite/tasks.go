package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/server/storage"
)

// GetTask retrieves a single task by ID
// Returns ErrTaskNotFound if task doesn't exist
func (s *Storage) GetTask(ctx context.Context, id string) (*storage.TaskRecord, error) {
	query := `
		SELECT id, title, status, priority, assignee, payload,
		       deleted, clock, server_version, created_at, updated_at
		FROM tasks
		WHERE id = ?
	`

	rec, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrTaskNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return rec, nil
}

// GetAllTasks retrieves all tasks including soft-deleted ones keyed by ID
func (s *Storage) GetAllTasks(ctx context.Context) (map[string]*storage.TaskRecord, error) {
	query := `
		SELECT id, title, status, priority, assignee, payload,
		       deleted, clock, server_version, created_at, updated_at
		FROM tasks
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query tasks: %w", err)
	}
	defer rows.Close()

	tasks := make(map[string]*storage.TaskRecord)
	for rows.Next() {
		rec, err := scanTask(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks[rec.Task.ID] = rec
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tasks: %w", err)
	}

	return tasks, nil
}

// UpsertTasks saves merged tasks in a single transaction, stamping each
// row with the server counter of the round that produced it
func (s *Storage) UpsertTasks(ctx context.Context, tasks []*models.Task, serverVersion int64) error {
	if len(tasks) == 0 {
		return nil
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO tasks (
			id, title, status, priority, assignee, payload,
			deleted, clock, server_version, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			status = excluded.status,
			priority = excluded.priority,
			assignee = excluded.assignee,
			payload = excluded.payload,
			deleted = excluded.deleted,
			clock = excluded.clock,
			server_version = excluded.server_version,
			updated_at = excluded.updated_at
	`

	for _, task := range tasks {
		clockJSON, err := json.Marshal(task.Clock)
		if err != nil {
			return fmt.Errorf("failed to marshal clock for task %s: %w", task.ID, err)
		}

		_, err = tx.ExecContext(ctx, query,
			task.ID,
			task.Title,
			task.Status,
			task.Priority,
			task.Assignee,
			task.Payload,
			boolToInt(task.Deleted),
			string(clockJSON),
			serverVersion,
			task.CreatedAt.Unix(),
			task.UpdatedAt.Unix(),
		)
		if err != nil {
			return fmt.Errorf("failed to upsert task %s: %w", task.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// scanner покрывает sql.Row и sql.Rows
type scanner interface {
	Scan(dest ...any) error
}

func scanTask(row scanner) (*storage.TaskRecord, error) {
	task := &models.Task{}
	var deleted int
	var clockJSON string
	var serverVersion, createdAt, updatedAt int64

	err := row.Scan(
		&task.ID,
		&task.Title,
		&task.Status,
		&task.Priority,
		&task.Assignee,
		&task.Payload,
		&deleted,
		&clockJSON,
		&serverVersion,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(clockJSON), &task.Clock); err != nil {
		return nil, fmt.Errorf("failed to unmarshal clock: %w", err)
	}

	task.Deleted = deleted != 0
	task.CreatedAt = time.Unix(createdAt, 0)
	task.UpdatedAt = time.Unix(updatedAt, 0)
	return &storage.TaskRecord{Task: task, ServerVersion: serverVersion}, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
