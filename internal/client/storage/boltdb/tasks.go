package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/models"
)

// GetTask retrieves a task by ID
func (s *Storage) GetTask(ctx context.Context, id string) (*models.Task, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var task *models.Task

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return storage.ErrTaskNotFound
		}

		data := bucket.Get([]byte(id))
		if data == nil {
			return storage.ErrTaskNotFound
		}

		task = &models.Task{}
		if err := json.Unmarshal(data, task); err != nil {
			return fmt.Errorf("failed to unmarshal task: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return task, nil
}

// GetAllTasks returns all tasks keyed by ID, including deleted ones
func (s *Storage) GetAllTasks(ctx context.Context) (map[string]*models.Task, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	tasks := make(map[string]*models.Task)

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var task models.Task
			if err := json.Unmarshal(v, &task); err != nil {
				return fmt.Errorf("failed to unmarshal task: %w", err)
			}
			tasks[task.ID] = &task
			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get all tasks: %w", err)
	}

	return tasks, nil
}

// GetActiveTasks returns all non-deleted tasks
func (s *Storage) GetActiveTasks(ctx context.Context) ([]*models.Task, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var tasks []*models.Task

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketTasks)
		if bucket == nil {
			return nil
		}

		return bucket.ForEach(func(k, v []byte) error {
			var task models.Task
			if err := json.Unmarshal(v, &task); err != nil {
				return fmt.Errorf("failed to unmarshal task: %w", err)
			}

			// Фильтруем deleted
			if !task.Deleted {
				tasks = append(tasks, &task)
			}

			return nil
		})
	})

	if err != nil {
		return nil, fmt.Errorf("failed to get active tasks: %w", err)
	}

	return tasks, nil
}

// ApplyLocalChange stores the mutated task and appends a pending-log entry
// in a single transaction, keeping fields and clock paired
func (s *Storage) ApplyLocalChange(ctx context.Context, task *models.Task) (uint64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	taskData, err := json.Marshal(task)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal task: %w", err)
	}

	var seq uint64

	err = s.db.Update(func(tx *bbolt.Tx) error {
		tasks := tx.Bucket(bucketTasks)
		pending := tx.Bucket(bucketPending)
		if tasks == nil || pending == nil {
			return fmt.Errorf("storage buckets not initialized")
		}

		if err := tasks.Put([]byte(task.ID), taskData); err != nil {
			return fmt.Errorf("failed to save task: %w", err)
		}

		seq, err = pending.NextSequence()
		if err != nil {
			return fmt.Errorf("failed to allocate sequence: %w", err)
		}

		change := models.PendingChange{
			Seq:    seq,
			TaskID: task.ID,
			Task:   task,
		}
		changeData, err := json.Marshal(&change)
		if err != nil {
			return fmt.Errorf("failed to marshal pending change: %w", err)
		}

		if err := pending.Put(seqKey(seq), changeData); err != nil {
			return fmt.Errorf("failed to append pending change: %w", err)
		}

		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("transaction failed: %w", err)
	}

	return seq, nil
}

// CommitSyncRound persists merged tasks, the new replica clock and removes
// exactly the acknowledged pending entries, all-or-nothing
func (s *Storage) CommitSyncRound(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	err := s.db.Update(func(tx *bbolt.Tx) error {
		taskBucket := tx.Bucket(bucketTasks)
		pending := tx.Bucket(bucketPending)
		metadata := tx.Bucket(bucketMetadata)
		if taskBucket == nil || pending == nil || metadata == nil {
			return fmt.Errorf("storage buckets not initialized")
		}

		for _, task := range tasks {
			data, err := json.Marshal(task)
			if err != nil {
				return fmt.Errorf("failed to marshal task %s: %w", task.ID, err)
			}
			if err := taskBucket.Put([]byte(task.ID), data); err != nil {
				return fmt.Errorf("failed to save task %s: %w", task.ID, err)
			}
		}

		clockData, err := json.Marshal(clock)
		if err != nil {
			return fmt.Errorf("failed to marshal replica clock: %w", err)
		}
		if err := metadata.Put([]byte(keyReplicaClock), clockData); err != nil {
			return fmt.Errorf("failed to save replica clock: %w", err)
		}

		// Удаляем ровно подтвержденные номера; остальные записи остаются
		for _, seq := range ackedSeqs {
			if err := pending.Delete(seqKey(seq)); err != nil {
				return fmt.Errorf("failed to remove acked change %d: %w", seq, err)
			}
		}

		return nil
	})

	if err != nil {
		return fmt.Errorf("commit transaction failed: %w", err)
	}

	return nil
}

// seqKey кодирует номер журнала в big-endian ключ, сохраняющий порядок обхода
func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
