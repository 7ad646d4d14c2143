package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/tasksync/pkg/api"
)

func testSyncRequest(changes int) api.SyncRequest {
	req := api.SyncRequest{
		NodeID:    "node-a",
		Operation: api.OperationFullSync,
		BatchID:   "batch-1",
		Changes:   make(map[string]api.Change, changes),
		VectorClock: api.VectorClock{
			NodeID:    "node-a",
			Counter:   1,
			Timestamp: time.Now().UnixNano(),
		},
	}
	for i := 0; i < changes; i++ {
		id := fmt.Sprintf("task-%d", i)
		req.Changes[id] = api.Change{
			Seq:  uint64(i + 1),
			Task: api.TaskEntry{ID: id, Status: "pending", Priority: "normal"},
		}
	}
	return req
}

func TestSynchronize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/sync/synchronize", r.URL.Path)
		assert.Equal(t, "node-a", r.Header.Get("X-Node-ID"))

		var req api.SyncRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "node-a", req.NodeID)

		resp := api.SyncResponse{
			Changes:   map[string]api.TaskEntry{},
			AckedSeqs: []uint64{1, 2},
			ServerClock: api.VectorClock{
				NodeID:  "server",
				Counter: 10,
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100)

	resp, err := client.Synchronize(context.Background(), testSyncRequest(2))
	require.NoError(t, err)
	assert.Equal(t, []uint64{1, 2}, resp.AckedSeqs)
	assert.Equal(t, int64(10), resp.ServerClock.Counter)
}

// Батч больше лимита отклоняется локально: сервер не должен увидеть запрос.
func TestSynchronize_BatchTooLarge(t *testing.T) {
	var calls atomic.Int64
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, 1000)

	_, err := client.Synchronize(context.Background(), testSyncRequest(1001))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrBatchTooLarge)
	assert.Equal(t, int64(0), calls.Load(), "no network call must be made")
}

func TestSynchronize_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"database unavailable"}`))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100)

	_, err := client.Synchronize(context.Background(), testSyncRequest(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrServerError)
	assert.True(t, IsTransient(err))
}

func TestSynchronize_NetworkUnavailable(t *testing.T) {
	// Закрытый сервер: соединение откажет
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client := NewClient(server.URL, 100)

	_, err := client.Synchronize(context.Background(), testSyncRequest(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNetworkUnavailable)
	assert.True(t, IsTransient(err))
}

func TestSynchronize_Timeout(t *testing.T) {
	started := make(chan struct{}, 1)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started <- struct{}{}
		// Тело нужно вычитать: иначе net/http не запускает фоновое чтение
		// соединения и не замечает отключение клиента, r.Context() не
		// отменяется и handler (а с ним server.Close) виснет навсегда.
		_, _ = io.Copy(io.Discard, r.Body)
		<-r.Context().Done()
	}))
	defer server.Close()

	client := NewClient(server.URL, 100)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Synchronize(ctx, testSyncRequest(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTimeout)
	<-started
}

func TestInitialize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/sync/initialize", r.URL.Path)

		var req api.InitializeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "node-a", req.NodeID)

		resp := api.InitializeResponse{
			State: map[string]api.TaskEntry{
				"task-1": {ID: "task-1", Status: "pending", Priority: "high"},
			},
			ServerClock: api.VectorClock{NodeID: "server", Counter: 3},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100)

	resp, err := client.Initialize(context.Background(), api.InitializeRequest{
		NodeID:     "node-a",
		DeviceType: "tablet",
		UserID:     "user-1",
	})
	require.NoError(t, err)
	require.Contains(t, resp.State, "task-1")
	assert.Equal(t, int64(3), resp.ServerClock.Counter)
}

func TestGetState(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/api/v1/sync/state/node-a", r.URL.Path)

		resp := api.StateResponse{
			NodeID:      "node-a",
			Tasks:       map[string]api.TaskEntry{"task-1": {ID: "task-1"}},
			ServerClock: api.VectorClock{NodeID: "server", Counter: 8},
		}
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}))
	defer server.Close()

	client := NewClient(server.URL, 100)

	resp, err := client.GetState(context.Background(), "node-a")
	require.NoError(t, err)
	assert.Equal(t, "node-a", resp.NodeID)
	require.Contains(t, resp.Tasks, "task-1")
}

// Sync-батч, сериализованный и разобранный обратно, совпадает пополево,
// включая 64-битную точность timestamp.
func TestSyncRequest_RoundTrip(t *testing.T) {
	req := testSyncRequest(3)
	req.VectorClock.Timestamp = 1735689600123456789 // не теряет наносекунды
	req.VectorClock.CausalDependencies = map[string]int64{"server": 9007199254740993}

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var decoded api.SyncRequest
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, req, decoded)
}
