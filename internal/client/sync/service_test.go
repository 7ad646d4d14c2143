package sync

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	transportapi "github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/crdt"
	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/resilience"
	"github.com/iudanet/tasksync/pkg/api"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, nil))
}

func testService(
	transport Transport,
	tasks storage.TaskStorage,
	pending storage.PendingLog,
	metadata storage.MetadataStorage,
) Service {
	logger := testLogger()
	clocks := crdt.NewClocks(crdt.DefaultMaxAge, crdt.DefaultMaxDeps)
	resolver := crdt.NewResolver(clocks, crdt.NewPriorityPolicy())
	breaker := resilience.NewBreaker(resilience.DefaultBreakerConfig(), logger)
	retrier := resilience.NewRetrier(resilience.RetryConfig{
		MaxAttempts: 2,
		BaseDelay:   time.Millisecond,
		MaxDelay:    2 * time.Millisecond,
		CallTimeout: time.Second,
	}, transportapi.IsTransient, logger)

	return NewService(transport, tasks, pending, metadata,
		clocks, resolver, breaker, retrier, DefaultConfig(), logger)
}

func pendingChange(taskID string, seq uint64, clock models.VectorClock) *models.PendingChange {
	return &models.PendingChange{
		TaskID: taskID,
		Seq:    seq,
		Task: &models.Task{
			ID:        taskID,
			Title:     "task " + taskID,
			Status:    models.StatusPending,
			Priority:  models.PriorityNormal,
			Clock:     clock,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
	}
}

func replicaClock(nodeID string, counter int64) models.VectorClock {
	return models.VectorClock{
		NodeID:    nodeID,
		Counter:   counter,
		Timestamp: time.Now().UnixNano(),
		Deps:      map[string]int64{},
	}
}

func metadataMock(nodeID string, clock models.VectorClock) *storage.MetadataStorageMock {
	return &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			return nodeID, nil
		},
		GetReplicaClockFunc: func(ctx context.Context) (models.VectorClock, error) {
			return clock, nil
		},
	}
}

func TestSync_FullRound(t *testing.T) {
	clock := replicaClock("node-a", 5)

	// Две pending-записи одной задачи схлопываются в один wire change
	pending := []*models.PendingChange{
		pendingChange("t1", 1, replicaClock("node-a", 3)),
		pendingChange("t1", 2, replicaClock("node-a", 4)),
		pendingChange("t2", 3, replicaClock("node-a", 5)),
	}

	serverTask := api.TaskEntry{
		ID:       "t3",
		Title:    "from server",
		Status:   models.StatusPending,
		Priority: models.PriorityHigh,
		Clock: api.VectorClock{
			NodeID:    "node-b",
			Counter:   2,
			Timestamp: time.Now().UnixNano(),
		},
	}

	var gotReq api.SyncRequest
	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			gotReq = req
			return &api.SyncResponse{
				Changes:   map[string]api.TaskEntry{"t3": serverTask},
				AckedSeqs: []uint64{2, 3},
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   10,
					Timestamp: time.Now().UnixNano(),
				},
				Conflicts: 1,
			}, nil
		},
	}

	var committedTasks []*models.Task
	var committedClock models.VectorClock
	var committedAcks []uint64
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			committedTasks = tasks
			committedClock = clock
			committedAcks = ackedSeqs
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return pending, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)

	// Батч сгруппирован по задачам, у t1 ушел последний снимок
	require.Len(t, gotReq.Changes, 2)
	assert.Equal(t, uint64(2), gotReq.Changes["t1"].Seq)
	assert.Equal(t, uint64(3), gotReq.Changes["t2"].Seq)
	assert.Equal(t, "node-a", gotReq.NodeID)
	assert.NotEmpty(t, gotReq.BatchID)

	// Ack схлопнутого Seq 2 покрывает обе записи t1
	sort.Slice(committedAcks, func(i, j int) bool { return committedAcks[i] < committedAcks[j] })
	assert.Equal(t, []uint64{1, 2, 3}, committedAcks)

	// Серверная задача принята, часы слиты с серверными и продвинуты
	require.Len(t, committedTasks, 1)
	assert.Equal(t, "t3", committedTasks[0].ID)
	assert.Equal(t, "node-a", committedClock.NodeID)
	assert.Equal(t, int64(11), committedClock.Counter)

	assert.Equal(t, 2, result.PushedChanges)
	assert.Equal(t, 1, result.PulledChanges)
	assert.Equal(t, 1, result.MergedTasks)
	assert.Equal(t, 0, result.SkippedTasks)
	assert.Equal(t, 3, result.AckedChanges)
	assert.Equal(t, 1, result.Conflicts)
	assert.Equal(t, StateIdle, svc.State())
}

func TestSync_MergesWithLocalState(t *testing.T) {
	clock := replicaClock("node-a", 5)

	local := &models.Task{
		ID:       "t1",
		Title:    "local title",
		Status:   models.StatusInProgress,
		Priority: models.PriorityNormal,
		Clock:    replicaClock("node-a", 5),
	}

	// Серверная версия каузально покрывает локальную и должна победить
	remoteClock := api.VectorClock{
		NodeID:             "node-b",
		Counter:            7,
		Timestamp:          time.Now().UnixNano(),
		CausalDependencies: map[string]int64{"node-a": 5},
	}

	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				Changes: map[string]api.TaskEntry{
					"t1": {
						ID:       "t1",
						Title:    "server title",
						Status:   models.StatusCompleted,
						Priority: models.PriorityNormal,
						Clock:    remoteClock,
					},
				},
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   7,
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}

	var committed []*models.Task
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{"t1": local}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			committed = tasks
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return nil, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)

	require.Len(t, committed, 1)
	assert.Equal(t, "server title", committed[0].Title)
	assert.Equal(t, models.StatusCompleted, committed[0].Status)
	assert.Equal(t, 1, result.MergedTasks)
}

func TestSync_SkipsCorruptRemoteClock(t *testing.T) {
	clock := replicaClock("node-a", 1)

	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				Changes: map[string]api.TaskEntry{
					// Пустой NodeID в часах: запись испорчена
					"bad": {
						ID:    "bad",
						Title: "corrupt",
						Clock: api.VectorClock{Counter: 1, Timestamp: time.Now().UnixNano()},
					},
					"good": {
						ID:    "good",
						Title: "healthy",
						Clock: api.VectorClock{
							NodeID:    "node-b",
							Counter:   1,
							Timestamp: time.Now().UnixNano(),
						},
					},
				},
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   3,
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}

	var committed []*models.Task
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			committed = tasks
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return nil, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)

	// Испорченная запись изолирована, здоровая применена
	require.Len(t, committed, 1)
	assert.Equal(t, "good", committed[0].ID)
	assert.Equal(t, 1, result.MergedTasks)
	assert.Equal(t, 1, result.SkippedTasks)
}

func TestSync_SkippedTaskRedeliveredNextRound(t *testing.T) {
	current := replicaClock("node-a", 1)

	corrupt := api.TaskEntry{
		ID:    "t1",
		Title: "first try",
		Clock: api.VectorClock{Counter: 1, Timestamp: time.Now().UnixNano()},
	}
	healthy := corrupt
	healthy.Title = "second try"
	healthy.Clock.NodeID = "node-b"

	round := 0
	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			round++
			entry := corrupt
			if round > 1 {
				entry = healthy
			}
			return &api.SyncResponse{
				Changes: map[string]api.TaskEntry{"t1": entry},
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   int64(round + 2),
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}

	var committed []*models.Task
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			committed = tasks
			current = clock
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return nil, nil
		},
	}
	metadata := &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			return "node-a", nil
		},
		GetReplicaClockFunc: func(ctx context.Context) (models.VectorClock, error) {
			return current, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadata)

	// Первый раунд: запись испорчена и пропущена. Часы сервера в коммит
	// не вливаются, по старым Deps сервер пришлет запись снова
	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, result.SkippedTasks)
	assert.Empty(t, committed)
	assert.NotContains(t, current.Deps, "server")

	// Второй раунд: сервер повторил запись, теперь она применяется
	// и часы сервера наконец вливаются
	result, err = svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.SkippedTasks)
	require.Len(t, committed, 1)
	assert.Equal(t, "second try", committed[0].Title)
	assert.Equal(t, int64(4), current.Deps["server"])
}

func TestSync_EmptyRoundAdvancesClock(t *testing.T) {
	clock := replicaClock("node-a", 4)

	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   4,
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}

	var committedClock models.VectorClock
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			committedClock = clock
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return nil, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	_, err := svc.Sync(context.Background())
	require.NoError(t, err)

	// Завершенный раунд продвигает счетчик даже без изменений
	assert.Equal(t, int64(5), committedClock.Counter)
}

func TestSync_TransportFailureLeavesStateUntouched(t *testing.T) {
	clock := replicaClock("node-a", 1)

	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return nil, transportapi.ErrNetworkUnavailable
		},
	}
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return []*models.PendingChange{
				pendingChange("t1", 1, replicaClock("node-a", 1)),
			}, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	_, err := svc.Sync(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, transportapi.ErrNetworkUnavailable)

	// Ни коммита, ни мутации журнала: повтор раунда безопасен
	assert.Empty(t, mockTasks.CommitSyncRoundCalls())
	// Сетевые попытки исчерпали бюджет повторов
	assert.Len(t, mockTransport.SynchronizeCalls(), 2)
}

func TestSync_NotInitialized(t *testing.T) {
	mockMetadata := &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			return "", storage.ErrMetadataNotFound
		},
	}
	svc := testService(&TransportMock{}, &storage.TaskStorageMock{}, &storage.PendingLogMock{}, mockMetadata)

	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestSync_ConcurrentTriggerCoalesced(t *testing.T) {
	clock := replicaClock("node-a", 1)

	entered := make(chan struct{})
	release := make(chan struct{})
	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			close(entered)
			<-release
			return &api.SyncResponse{
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   1,
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return nil, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	done := make(chan error, 1)
	go func() {
		_, err := svc.Sync(context.Background())
		done <- err
	}()

	<-entered
	_, err := svc.Sync(context.Background())
	assert.ErrorIs(t, err, ErrSyncInProgress)

	close(release)
	require.NoError(t, <-done)

	// Раунд выполнился ровно один раз
	assert.Len(t, mockTransport.SynchronizeCalls(), 1)
}

func TestSync_IgnoresUnknownAcks(t *testing.T) {
	clock := replicaClock("node-a", 2)

	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				// Seq 99 в этом батче не уходил
				AckedSeqs: []uint64{99},
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   2,
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}

	var committedAcks []uint64
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			committedAcks = ackedSeqs
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return []*models.PendingChange{
				pendingChange("t1", 1, replicaClock("node-a", 2)),
			}, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	result, err := svc.Sync(context.Background())
	require.NoError(t, err)
	assert.Empty(t, committedAcks)
	assert.Equal(t, 0, result.AckedChanges)
}

func TestInitialize(t *testing.T) {
	serverState := map[string]api.TaskEntry{
		"t1": {
			ID:    "t1",
			Title: "existing",
			Clock: api.VectorClock{
				NodeID:    "node-b",
				Counter:   3,
				Timestamp: time.Now().UnixNano(),
			},
		},
	}

	mockTransport := &TransportMock{
		InitializeFunc: func(ctx context.Context, req api.InitializeRequest) (*api.InitializeResponse, error) {
			return &api.InitializeResponse{
				State: serverState,
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   9,
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}

	var savedNodeID string
	mockMetadata := &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			return "", storage.ErrMetadataNotFound
		},
		SaveNodeIDFunc: func(ctx context.Context, nodeID string) error {
			savedNodeID = nodeID
			return nil
		},
	}

	var committedTasks []*models.Task
	var committedClock models.VectorClock
	mockTasks := &storage.TaskStorageMock{
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			committedTasks = tasks
			committedClock = clock
			return nil
		},
	}

	svc := testService(mockTransport, mockTasks, &storage.PendingLogMock{}, mockMetadata)

	err := svc.Initialize(context.Background(), "cli", "user-1")
	require.NoError(t, err)

	// NodeID реплики уникален и валиден как UUID
	_, err = uuid.Parse(savedNodeID)
	require.NoError(t, err)

	require.Len(t, committedTasks, 1)
	assert.Equal(t, "t1", committedTasks[0].ID)
	assert.Equal(t, savedNodeID, committedClock.NodeID)
	assert.Equal(t, int64(9), committedClock.Counter)

	calls := mockTransport.InitializeCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "cli", calls[0].Req.DeviceType)
	assert.Equal(t, "user-1", calls[0].Req.UserID)
}

func TestInitialize_AlreadyInitialized(t *testing.T) {
	mockMetadata := &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			return "existing-node", nil
		},
	}
	mockTransport := &TransportMock{}

	svc := testService(mockTransport, &storage.TaskStorageMock{}, &storage.PendingLogMock{}, mockMetadata)

	err := svc.Initialize(context.Background(), "cli", "user-1")
	require.NoError(t, err)
	assert.Empty(t, mockTransport.InitializeCalls())
}

func TestPendingCount(t *testing.T) {
	mockPending := &storage.PendingLogMock{
		PendingCountFunc: func(ctx context.Context) (int, error) {
			return 7, nil
		},
	}
	svc := testService(&TransportMock{}, &storage.TaskStorageMock{}, mockPending, &storage.MetadataStorageMock{})

	count, err := svc.PendingCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, count)
}

func TestServerState(t *testing.T) {
	mockTransport := &TransportMock{
		GetStateFunc: func(ctx context.Context, nodeID string) (*api.StateResponse, error) {
			return &api.StateResponse{
				NodeID: nodeID,
				Tasks: map[string]api.TaskEntry{
					"t1": {ID: "t1", Title: "remote"},
				},
				ServerClock: api.VectorClock{NodeID: "server", Counter: 9},
			}, nil
		},
	}
	metadata := metadataMock("node-a", replicaClock("node-a", 1))
	svc := testService(mockTransport, &storage.TaskStorageMock{}, &storage.PendingLogMock{}, metadata)

	resp, err := svc.ServerState(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "node-a", resp.NodeID)
	assert.Contains(t, resp.Tasks, "t1")
	assert.Equal(t, int64(9), resp.ServerClock.Counter)

	// Снимок запрошен от имени зарегистрированной реплики
	calls := mockTransport.GetStateCalls()
	require.Len(t, calls, 1)
	assert.Equal(t, "node-a", calls[0].NodeID)
}

func TestServerState_NotInitialized(t *testing.T) {
	mockMetadata := &storage.MetadataStorageMock{
		GetNodeIDFunc: func(ctx context.Context) (string, error) {
			return "", storage.ErrMetadataNotFound
		},
	}
	svc := testService(&TransportMock{}, &storage.TaskStorageMock{}, &storage.PendingLogMock{}, mockMetadata)

	_, err := svc.ServerState(context.Background())
	assert.ErrorIs(t, err, ErrNotInitialized)
}

func TestRunLoop_StopsOnCancel(t *testing.T) {
	clock := replicaClock("node-a", 1)

	mockTransport := &TransportMock{
		SynchronizeFunc: func(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
			return &api.SyncResponse{
				ServerClock: api.VectorClock{
					NodeID:    "server",
					Counter:   1,
					Timestamp: time.Now().UnixNano(),
				},
			}, nil
		},
	}
	mockTasks := &storage.TaskStorageMock{
		GetAllTasksFunc: func(ctx context.Context) (map[string]*models.Task, error) {
			return map[string]*models.Task{}, nil
		},
		CommitSyncRoundFunc: func(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error {
			return nil
		},
	}
	mockPending := &storage.PendingLogMock{
		ListPendingFunc: func(ctx context.Context, limit int) ([]*models.PendingChange, error) {
			return nil, nil
		},
	}

	svc := testService(mockTransport, mockTasks, mockPending, metadataMock("node-a", clock))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.RunLoop(ctx, 5*time.Millisecond)
		close(done)
	}()

	// Даем циклу выполнить хотя бы один раунд
	require.Eventually(t, func() bool {
		return len(mockTransport.SynchronizeCalls()) >= 1
	}, time.Second, time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("RunLoop did not stop after context cancellation")
	}
}
