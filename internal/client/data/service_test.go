package data

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/crdt"
	"github.com/iudanet/tasksync/internal/models"
)

const testNodeID = "node-a"

// testEnv собирает сервис поверх мок-хранилища с работающим
// pending-журналом в памяти.
type testEnv struct {
	svc     Service
	tasks   map[string]*models.Task
	applied []*models.Task
	seq     uint64
}

func newTestEnv() *testEnv {
	env := &testEnv{tasks: make(map[string]*models.Task)}

	mockTasks := &storage.TaskStorageMock{
		GetTaskFunc: func(ctx context.Context, id string) (*models.Task, error) {
			if task, ok := env.tasks[id]; ok {
				return task, nil
			}
			return nil, storage.ErrTaskNotFound
		},
		GetActiveTasksFunc: func(ctx context.Context) ([]*models.Task, error) {
			var out []*models.Task
			for _, task := range env.tasks {
				if !task.Deleted {
					out = append(out, task)
				}
			}
			return out, nil
		},
		ApplyLocalChangeFunc: func(ctx context.Context, task *models.Task) (uint64, error) {
			env.tasks[task.ID] = task
			env.applied = append(env.applied, task)
			env.seq++
			return env.seq, nil
		},
	}
	mockMetadata := &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			return testNodeID, nil
		},
	}

	env.svc = NewService(mockTasks, mockMetadata, crdt.NewClocks(crdt.DefaultMaxAge, crdt.DefaultMaxDeps))
	return env
}

func TestCreateTask(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	task, err := env.svc.CreateTask(ctx, "write report", models.PriorityHigh, "alice", []byte(`{"notes":"q3"}`))
	require.NoError(t, err)

	_, err = uuid.Parse(task.ID)
	require.NoError(t, err)
	assert.Equal(t, "write report", task.Title)
	assert.Equal(t, models.StatusPending, task.Status)
	assert.Equal(t, models.PriorityHigh, task.Priority)
	assert.Equal(t, "alice", task.Assignee)

	// Новая задача начинается с часов этой реплики на counter 1
	assert.Equal(t, testNodeID, task.Clock.NodeID)
	assert.Equal(t, int64(1), task.Clock.Counter)

	require.Len(t, env.applied, 1)
}

func TestCreateTask_Validation(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	_, err := env.svc.CreateTask(ctx, "", models.PriorityNormal, "", nil)
	assert.ErrorIs(t, err, ErrEmptyTitle)

	_, err = env.svc.CreateTask(ctx, "ok", "urgent", "", nil)
	assert.ErrorIs(t, err, ErrUnknownPriority)

	// Пустой приоритет получает значение по умолчанию
	task, err := env.svc.CreateTask(ctx, "ok", "", "", nil)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityNormal, task.Priority)
}

func TestUpdateStatus_AdvancesClock(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	task, err := env.svc.CreateTask(ctx, "write report", models.PriorityNormal, "", nil)
	require.NoError(t, err)

	updated, err := env.svc.UpdateStatus(ctx, task.ID, models.StatusInProgress)
	require.NoError(t, err)

	assert.Equal(t, models.StatusInProgress, updated.Status)
	// Мутация и часы продвигаются только парой
	assert.Equal(t, int64(2), updated.Clock.Counter)
	assert.Equal(t, testNodeID, updated.Clock.NodeID)
	// Исходная задача не мутирована
	assert.Equal(t, int64(1), task.Clock.Counter)
}

func TestUpdateStatus_Unknown(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	task, err := env.svc.CreateTask(ctx, "write report", models.PriorityNormal, "", nil)
	require.NoError(t, err)

	_, err = env.svc.UpdateStatus(ctx, task.ID, "paused")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}

func TestMutate_AdoptsForeignClock(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	// Задача пришла с другой реплики
	foreign := &models.Task{
		ID:       "t-foreign",
		Title:    "from node-b",
		Status:   models.StatusPending,
		Priority: models.PriorityNormal,
		Clock: models.VectorClock{
			NodeID:    "node-b",
			Counter:   7,
			Timestamp: time.Now().UnixNano(),
		},
	}
	env.tasks[foreign.ID] = foreign

	updated, err := env.svc.Assign(ctx, foreign.ID, "bob")
	require.NoError(t, err)

	// Часы переподчинены этой реплике и каузально доминируют над прежними
	assert.Equal(t, testNodeID, updated.Clock.NodeID)
	assert.Equal(t, int64(8), updated.Clock.Counter)
	assert.True(t, crdt.HasCausalDependency(updated.Clock, foreign.Clock))
}

func TestSetPriority(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	task, err := env.svc.CreateTask(ctx, "write report", models.PriorityNormal, "", nil)
	require.NoError(t, err)

	updated, err := env.svc.SetPriority(ctx, task.ID, models.PriorityCritical)
	require.NoError(t, err)
	assert.Equal(t, models.PriorityCritical, updated.Priority)

	_, err = env.svc.SetPriority(ctx, task.ID, "asap")
	assert.ErrorIs(t, err, ErrUnknownPriority)
}

func TestUpdateTitle(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	task, err := env.svc.CreateTask(ctx, "old title", models.PriorityNormal, "", nil)
	require.NoError(t, err)

	updated, err := env.svc.UpdateTitle(ctx, task.ID, "new title")
	require.NoError(t, err)
	assert.Equal(t, "new title", updated.Title)

	_, err = env.svc.UpdateTitle(ctx, task.ID, "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestDeleteTask_Soft(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	task, err := env.svc.CreateTask(ctx, "to delete", models.PriorityNormal, "", nil)
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteTask(ctx, task.ID))

	// Запись осталась в хранилище с флагом Deleted и продвинутыми часами
	stored := env.tasks[task.ID]
	require.NotNil(t, stored)
	assert.True(t, stored.Deleted)
	assert.Equal(t, int64(2), stored.Clock.Counter)

	// Для чтения задача более недоступна
	_, err = env.svc.GetTask(ctx, task.ID)
	assert.ErrorIs(t, err, storage.ErrTaskNotFound)

	// Мутации удаленной задачи отклоняются
	_, err = env.svc.UpdateStatus(ctx, task.ID, models.StatusCompleted)
	assert.ErrorIs(t, err, ErrTaskDeleted)

	// Повторное удаление ничего не делает
	require.NoError(t, env.svc.DeleteTask(ctx, task.ID))
	assert.Equal(t, int64(2), env.tasks[task.ID].Clock.Counter)
}

func TestListTasks_ExcludesDeleted(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()

	first, err := env.svc.CreateTask(ctx, "keep", models.PriorityNormal, "", nil)
	require.NoError(t, err)
	second, err := env.svc.CreateTask(ctx, "remove", models.PriorityNormal, "", nil)
	require.NoError(t, err)

	require.NoError(t, env.svc.DeleteTask(ctx, second.ID))

	tasks, err := env.svc.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, first.ID, tasks[0].ID)
}
