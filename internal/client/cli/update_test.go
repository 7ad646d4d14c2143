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

func TestCli_runDone(t *testing.T) {
	ctx := context.Background()

	mockData := &data.ServiceMock{
		UpdateStatusFunc: func(ctx context.Context, id, status string) (*models.Task, error) {
			return &models.Task{ID: id, Status: status}, nil
		},
	}

	var out strings.Builder
	cli := &Cli{io: collectIO(&out), dataService: mockData}

	require.NoError(t, cli.runDone(ctx, []string{"task-5"}))

	calls := mockData.UpdateStatusCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "task-5", calls[0].ID)
	assert.Equal(t, models.StatusCompleted, calls[0].Status)
	assert.Contains(t, out.String(), "completed")
}

func TestCli_runMove_MissingArgs(t *testing.T) {
	ctx := context.Background()

	var out strings.Builder
	cli := &Cli{io: collectIO(&out), dataService: &data.ServiceMock{}}

	err := cli.runMove(ctx, []string{"task-5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "usage")
}

func TestCli_runRename_JoinsTitleWords(t *testing.T) {
	ctx := context.Background()

	mockData := &data.ServiceMock{
		UpdateTitleFunc: func(ctx context.Context, id, title string) (*models.Task, error) {
			return &models.Task{ID: id, Title: title}, nil
		},
	}

	var out strings.Builder
	cli := &Cli{io: collectIO(&out), dataService: mockData}

	require.NoError(t, cli.runRename(ctx, []string{"task-5", "ship", "the", "release"}))

	calls := mockData.UpdateTitleCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "ship the release", calls[0].Title)
}

func TestCli_runPriority(t *testing.T) {
	ctx := context.Background()

	mockData := &data.ServiceMock{
		SetPriorityFunc: func(ctx context.Context, id, priority string) (*models.Task, error) {
			return &models.Task{ID: id, Priority: priority}, nil
		},
	}

	var out strings.Builder
	cli := &Cli{io: collectIO(&out), dataService: mockData}

	require.NoError(t, cli.runPriority(ctx, []string{"task-5", models.PriorityCritical}))
	assert.Contains(t, out.String(), "priority set to critical")
}
