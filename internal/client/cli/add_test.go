package cli

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasksync/internal/client/data"
	"github.com/iudanet/tasksync/internal/models"
)

func TestCli_runAdd(t *testing.T) {
	ctx := context.Background()

	var created *models.Task
	mockData := &data.ServiceMock{
		CreateTaskFunc: func(ctx context.Context, title, priority, assignee string, payload []byte) (*models.Task, error) {
			created = &models.Task{
				ID:       "task-1",
				Title:    title,
				Status:   models.StatusPending,
				Priority: priority,
				Assignee: assignee,
				Payload:  payload,
			}
			return created, nil
		},
	}

	var out strings.Builder
	mockIO := collectIO(&out)
	answers := []string{"fix flaky test", "high", "alice", "see CI run #42"}
	idx := 0
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		answer := answers[idx]
		idx++
		return answer, nil
	}

	cli := &Cli{io: mockIO, dataService: mockData}

	require.NoError(t, cli.runAdd(ctx))

	require.NotNil(t, created)
	assert.Equal(t, "fix flaky test", created.Title)
	assert.Equal(t, models.PriorityHigh, created.Priority)
	assert.Equal(t, "alice", created.Assignee)
	assert.Equal(t, []byte("see CI run #42"), created.Payload)
	assert.Contains(t, out.String(), "task-1")
	assert.Contains(t, out.String(), "Task created")
}

func TestCli_runAdd_CreateFails(t *testing.T) {
	ctx := context.Background()

	mockData := &data.ServiceMock{
		CreateTaskFunc: func(ctx context.Context, title, priority, assignee string, payload []byte) (*models.Task, error) {
			return nil, data.ErrEmptyTitle
		},
	}

	var out strings.Builder
	mockIO := collectIO(&out)
	mockIO.ReadInputFunc = func(prompt string) (string, error) {
		return "", nil
	}

	cli := &Cli{io: mockIO, dataService: mockData}

	err := cli.runAdd(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, data.ErrEmptyTitle)
}
