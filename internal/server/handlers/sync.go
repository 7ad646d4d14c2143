package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	stdsync "sync"
	"time"

	"github.com/iudanet/tasksync/internal/crdt"
	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/server/storage"
	"github.com/iudanet/tasksync/internal/validation"
	"github.com/iudanet/tasksync/pkg/api"
)

// serverNodeID идентификатор серверного узла в векторных часах
const serverNodeID = "server"

// SyncHandler handles replica synchronization requests
type SyncHandler struct {
	logger   *slog.Logger
	tasks    storage.TaskStorage
	replicas storage.ReplicaStorage
	state    storage.StateStorage
	clocks   *crdt.Clocks
	resolver *crdt.Resolver

	// mu сериализует применение батчей: sqlite все равно однописательный,
	// а так слияние и часы сервера меняются атомарно относительно друг друга
	mu stdsync.Mutex
}

// NewSyncHandler creates a new sync handler
func NewSyncHandler(
	logger *slog.Logger,
	tasks storage.TaskStorage,
	replicas storage.ReplicaStorage,
	state storage.StateStorage,
	clocks *crdt.Clocks,
	resolver *crdt.Resolver,
) *SyncHandler {
	return &SyncHandler{
		logger:   logger,
		tasks:    tasks,
		replicas: replicas,
		state:    state,
		clocks:   clocks,
		resolver: resolver,
	}
}

// HandleInitialize обрабатывает POST /api/v1/sync/initialize
// Регистрирует новую реплику и возвращает полное слитое состояние.
// Повторная регистрация того же node_id идемпотентна.
func (h *SyncHandler) HandleInitialize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.InitializeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode initialize request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	if err := validation.ValidateNodeID(req.NodeID); err != nil {
		h.logger.Warn("Invalid node id", "node_id", req.NodeID, "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "invalid_node_id", err.Error())
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	now := time.Now()
	replica := &models.Replica{
		NodeID:     req.NodeID,
		DeviceType: req.DeviceType,
		UserID:     req.UserID,
		Clock: models.VectorClock{
			NodeID:    req.NodeID,
			Counter:   0,
			Timestamp: now.UnixNano(),
		},
		CreatedAt:  now,
		LastSyncAt: now,
	}

	if err := h.replicas.RegisterReplica(ctx, replica); err != nil {
		if !errors.Is(err, storage.ErrReplicaAlreadyExists) {
			h.logger.Error("Failed to register replica", "error", err, "node_id", req.NodeID)
			writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
		h.logger.Info("Replica re-initialized", "node_id", req.NodeID)
	}

	serverClock, err := h.advanceServerClock(ctx, nil)
	if err != nil {
		h.logger.Error("Failed to advance server clock", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	// Стартовое состояние реплики (если есть) сливается как обычный батч
	if len(req.InitialState) > 0 {
		if _, _, err := h.mergeChanges(ctx, req.NodeID, entriesToChanges(req.InitialState), serverClock.Counter); err != nil {
			h.logger.Error("Failed to merge initial state", "error", err, "node_id", req.NodeID)
			writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
	}

	all, err := h.tasks.GetAllTasks(ctx)
	if err != nil {
		h.logger.Error("Failed to load tasks", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	state := make(map[string]api.TaskEntry, len(all))
	for id, rec := range all {
		state[id] = taskToEntry(rec.Task)
	}

	writeJSON(w, h.logger, http.StatusOK, api.InitializeResponse{
		State:       state,
		ServerClock: clockToWire(serverClock),
	})

	h.logger.Info("Replica initialized",
		"node_id", req.NodeID,
		"device_type", req.DeviceType,
		"tasks", len(state))
}

// HandleSynchronize обрабатывает POST /api/v1/sync/synchronize
// Применяет батч изменений реплики и возвращает встречную дельту.
func (h *SyncHandler) HandleSynchronize(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.SyncRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("Failed to decode sync request", "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	if err := validation.ValidateNodeID(req.NodeID); err != nil {
		h.logger.Warn("Invalid node id", "node_id", req.NodeID, "error", err)
		writeError(w, h.logger, http.StatusBadRequest, "invalid_node_id", err.Error())
		return
	}

	if len(req.Changes) > api.MaxBatchSize {
		h.logger.Warn("Batch over the size cap",
			"node_id", req.NodeID, "batch", len(req.Changes))
		writeError(w, h.logger, http.StatusRequestEntityTooLarge, "batch_too_large", "batch exceeds maximum size")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	if _, err := h.replicas.GetReplica(ctx, req.NodeID); err != nil {
		if errors.Is(err, storage.ErrReplicaNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "unknown_replica", "replica is not registered")
			return
		}
		h.logger.Error("Failed to get replica", "error", err, "node_id", req.NodeID)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	// Идемпотентность: повтор батча не применяется второй раз, реплика
	// получает прежние ack и свежую дельту
	if req.BatchID != "" {
		seqs, err := h.replicas.GetBatch(ctx, req.NodeID, req.BatchID)
		if err == nil {
			h.respondWithDelta(w, r, req, seqs, 0, true)
			h.logger.Info("Duplicate batch ignored", "node_id", req.NodeID, "batch_id", req.BatchID)
			return
		}
		if !errors.Is(err, storage.ErrBatchNotFound) {
			h.logger.Error("Failed to check batch", "error", err, "batch_id", req.BatchID)
			writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
	}

	serverClock, err := h.advanceServerClock(ctx, &req.VectorClock)
	if err != nil {
		h.logger.Error("Failed to advance server clock", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	ackedSeqs, conflicts, err := h.mergeChanges(ctx, req.NodeID, req.Changes, serverClock.Counter)
	if err != nil {
		h.logger.Error("Failed to merge batch", "error", err, "node_id", req.NodeID)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if err := h.replicas.SaveReplicaClock(ctx, req.NodeID, clockFromWire(req.VectorClock)); err != nil {
		h.logger.Error("Failed to save replica clock", "error", err, "node_id", req.NodeID)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	if req.BatchID != "" {
		if err := h.replicas.RecordBatch(ctx, req.NodeID, req.BatchID, ackedSeqs); err != nil {
			h.logger.Error("Failed to record batch", "error", err, "batch_id", req.BatchID)
			writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
			return
		}
	}

	h.respondWithDelta(w, r, req, ackedSeqs, conflicts, false)

	h.logger.Info("Sync batch applied",
		"node_id", req.NodeID,
		"batch_id", req.BatchID,
		"received", len(req.Changes),
		"acked", len(ackedSeqs),
		"conflicts", conflicts)
}

// HandleGetState обрабатывает GET /api/v1/sync/state/{nodeId}
// Диагностический снимок: полное слитое состояние и часы сервера.
func (h *SyncHandler) HandleGetState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	nodeID := r.PathValue("nodeId")
	if err := validation.ValidateNodeID(nodeID); err != nil {
		writeError(w, h.logger, http.StatusBadRequest, "invalid_node_id", err.Error())
		return
	}

	if _, err := h.replicas.GetReplica(ctx, nodeID); err != nil {
		if errors.Is(err, storage.ErrReplicaNotFound) {
			writeError(w, h.logger, http.StatusNotFound, "unknown_replica", "replica is not registered")
			return
		}
		h.logger.Error("Failed to get replica", "error", err, "node_id", nodeID)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	all, err := h.tasks.GetAllTasks(ctx)
	if err != nil {
		h.logger.Error("Failed to load tasks", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	serverClock, err := h.currentServerClock(ctx)
	if err != nil {
		h.logger.Error("Failed to get server clock", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	tasks := make(map[string]api.TaskEntry, len(all))
	for id, rec := range all {
		tasks[id] = taskToEntry(rec.Task)
	}

	writeJSON(w, h.logger, http.StatusOK, api.StateResponse{
		Tasks:       tasks,
		NodeID:      nodeID,
		ServerClock: clockToWire(serverClock),
	})
}

// mergeChanges сливает батч изменений с текущим состоянием сервера.
// Возвращает подтвержденные Seq и количество конкурентных конфликтов.
// Запись с испорченными часами пропускается без ack: остальной батч
// она не срывает, а реплика отправит ее повторно.
func (h *SyncHandler) mergeChanges(ctx context.Context, nodeID string, changes map[string]api.Change, serverVersion int64) ([]uint64, int, error) {
	if len(changes) == 0 {
		return nil, 0, nil
	}

	local, err := h.tasks.GetAllTasks(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load tasks: %w", err)
	}

	merged := make([]*models.Task, 0, len(changes))
	ackedSeqs := make([]uint64, 0, len(changes))
	conflicts := 0

	for id, change := range changes {
		remote := entryToTask(change.Task)
		if remote.ID == "" {
			remote.ID = id
		}

		if err := h.clocks.Validate(remote.Clock); err != nil {
			h.logger.Warn("Skipping change with corrupt clock",
				"task_id", id, "node_id", nodeID, "error", err)
			continue
		}

		localRec, ok := local[id]
		if !ok {
			merged = append(merged, remote)
			ackedSeqs = append(ackedSeqs, change.Seq)
			continue
		}

		ordering, err := h.clocks.Compare(localRec.Task.Clock, remote.Clock)
		if err != nil {
			h.logger.Warn("Skipping change with incomparable clock",
				"task_id", id, "node_id", nodeID, "error", err)
			continue
		}
		if ordering == crdt.OrderingConcurrent {
			conflicts++
		}

		resolved, err := h.resolver.Resolve(localRec.Task, remote)
		if err != nil {
			h.logger.Warn("Failed to merge change",
				"task_id", id, "node_id", nodeID, "error", err)
			continue
		}

		merged = append(merged, resolved)
		ackedSeqs = append(ackedSeqs, change.Seq)
	}

	if err := h.tasks.UpsertTasks(ctx, merged, serverVersion); err != nil {
		return nil, 0, fmt.Errorf("failed to upsert merged tasks: %w", err)
	}

	return ackedSeqs, conflicts, nil
}

// respondWithDelta отправляет реплике встречную дельту: задачи, которые
// сервер изменил позже раунда, до которого реплика дошла по своим часам.
// Сравнение идет по счетчику сервера: это единственный счетчик, общий для
// всех реплик, счетчики задач чужих узлов между собой несравнимы.
func (h *SyncHandler) respondWithDelta(w http.ResponseWriter, r *http.Request, req api.SyncRequest, ackedSeqs []uint64, conflicts int, duplicate bool) {
	ctx := r.Context()

	all, err := h.tasks.GetAllTasks(ctx)
	if err != nil {
		h.logger.Error("Failed to load tasks for delta", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	serverClock, err := h.currentServerClock(ctx)
	if err != nil {
		h.logger.Error("Failed to get server clock", "error", err)
		writeError(w, h.logger, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	// Реплика вливает часы сервера в свои при каждом закоммиченном раунде,
	// поэтому Deps[server] это счетчик последнего раунда, который она
	// действительно сохранила. Упавший на реплике коммит часы не двигает,
	// и дельта придет повторно.
	seen := req.VectorClock.CausalDependencies[serverNodeID]

	delta := make(map[string]api.TaskEntry)
	for id, rec := range all {
		// Последняя мутация задачи сделана самой репликой: она ее уже знает
		if rec.Task.Clock.NodeID == req.NodeID {
			continue
		}
		if rec.ServerVersion <= seen {
			continue
		}
		delta[id] = taskToEntry(rec.Task)
	}

	writeJSON(w, h.logger, http.StatusOK, api.SyncResponse{
		Changes:     delta,
		AckedSeqs:   ackedSeqs,
		ServerClock: clockToWire(serverClock),
		Conflicts:   conflicts,
		Duplicate:   duplicate,
	})
}

// advanceServerClock сливает часы сервера с часами клиента (если есть) и
// продвигает счетчик: каждый обработанный раунд это событие сервера.
func (h *SyncHandler) advanceServerClock(ctx context.Context, clientClock *api.VectorClock) (models.VectorClock, error) {
	clock, err := h.currentServerClock(ctx)
	if err != nil {
		return models.VectorClock{}, err
	}

	if clientClock != nil {
		clock, err = h.clocks.Merge(clock, clockFromWire(*clientClock))
		if err != nil {
			return models.VectorClock{}, fmt.Errorf("failed to merge client clock: %w", err)
		}
	}

	clock, err = h.clocks.Increment(clock)
	if err != nil {
		return models.VectorClock{}, fmt.Errorf("failed to increment server clock: %w", err)
	}

	if err := h.state.SaveServerClock(ctx, clock); err != nil {
		return models.VectorClock{}, fmt.Errorf("failed to save server clock: %w", err)
	}
	return clock, nil
}

// currentServerClock возвращает часы сервера, создавая нулевые при
// первом обращении.
func (h *SyncHandler) currentServerClock(ctx context.Context) (models.VectorClock, error) {
	clock, err := h.state.GetServerClock(ctx)
	if err == nil {
		return clock, nil
	}
	if !errors.Is(err, storage.ErrClockNotFound) {
		return models.VectorClock{}, fmt.Errorf("failed to get server clock: %w", err)
	}

	clock, err = h.clocks.New(serverNodeID)
	if err != nil {
		return models.VectorClock{}, fmt.Errorf("failed to create server clock: %w", err)
	}
	return clock, nil
}

// entriesToChanges оборачивает снимок состояния в формат батча с нулевыми Seq.
func entriesToChanges(entries map[string]api.TaskEntry) map[string]api.Change {
	changes := make(map[string]api.Change, len(entries))
	for id, entry := range entries {
		changes[id] = api.Change{Task: entry}
	}
	return changes
}
