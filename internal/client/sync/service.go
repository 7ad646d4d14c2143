package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	stdsync "sync"
	"time"

	"github.com/google/uuid"

	transportapi "github.com/iudanet/tasksync/internal/client/api"
	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/crdt"
	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/resilience"
	"github.com/iudanet/tasksync/pkg/api"
)

// ErrSyncInProgress новый триггер пришел, пока раунд уже выполняется.
// Триггеры коалесцируются: вызов игнорируется, а не ставится в очередь.
var ErrSyncInProgress = errors.New("sync round already in progress")

// ErrNotInitialized реплика еще не прошла Initialize
var ErrNotInitialized = errors.New("replica is not initialized")

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс оркестратора синхронизации
type Service interface {
	// Initialize выполняет первичную регистрацию реплики на сервере
	Initialize(ctx context.Context, deviceType, userID string) error

	// Sync выполняет один sync-раунд; повторный триггер во время
	// активного раунда возвращает ErrSyncInProgress
	Sync(ctx context.Context) (*SyncResult, error)

	// RunLoop запускает периодические sync-раунды до отмены контекста
	RunLoop(ctx context.Context, interval time.Duration)

	// PendingCount возвращает количество записей, ожидающих синхронизации
	PendingCount(ctx context.Context) (int, error)

	// ServerState запрашивает у сервера его слитое состояние.
	// Диагностический снимок, в локальное состояние ничего не сливается
	ServerState(ctx context.Context) (*api.StateResponse, error)

	// State возвращает текущее состояние машины раунда
	State() RoundState
}

// Config конфигурация оркестратора
type Config struct {
	// MaxBatchSize максимум записей в одном батче
	MaxBatchSize int
	// RoundTimeout таймаут всего sync-раунда
	RoundTimeout time.Duration
}

// DefaultConfig возвращает конфигурацию оркестратора по умолчанию.
func DefaultConfig() Config {
	return Config{
		MaxBatchSize: api.MaxBatchSize,
		RoundTimeout: 60 * time.Second,
	}
}

// SyncResult contains sync round results
type SyncResult struct {
	PushedChanges int // количество отправленных на сервер изменений
	PulledChanges int // количество полученных с сервера изменений
	MergedTasks   int // количество успешно слитых задач
	SkippedTasks  int // количество пропущенных задач (испорченные часы)
	AckedChanges  int // количество подтвержденных записей журнала
	Conflicts     int // количество разрешенных сервером конфликтов
}

// service drives synchronization rounds between this replica and the server
type service struct {
	transport Transport
	tasks     storage.TaskStorage
	pending   storage.PendingLog
	metadata  storage.MetadataStorage
	clocks    *crdt.Clocks
	resolver  *crdt.Resolver
	breaker   *resilience.Breaker
	retrier   *resilience.Retrier
	logger    *slog.Logger
	cfg       Config

	// mu сериализует выполнение раундов; state под отдельным мьютексом,
	// чтобы State() не блокировался активным раундом
	mu      stdsync.Mutex
	stateMu stdsync.Mutex
	state   RoundState
}

// NewService creates a new sync orchestrator. Экземпляр создается в
// composition root приложения и передается явно, глобального состояния нет.
func NewService(
	transport Transport,
	tasks storage.TaskStorage,
	pending storage.PendingLog,
	metadata storage.MetadataStorage,
	clocks *crdt.Clocks,
	resolver *crdt.Resolver,
	breaker *resilience.Breaker,
	retrier *resilience.Retrier,
	cfg Config,
	logger *slog.Logger,
) Service {
	def := DefaultConfig()
	if cfg.MaxBatchSize <= 0 {
		cfg.MaxBatchSize = def.MaxBatchSize
	}
	if cfg.RoundTimeout <= 0 {
		cfg.RoundTimeout = def.RoundTimeout
	}

	return &service{
		transport: transport,
		tasks:     tasks,
		pending:   pending,
		metadata:  metadata,
		clocks:    clocks,
		resolver:  resolver,
		breaker:   breaker,
		retrier:   retrier,
		cfg:       cfg,
		logger:    logger,
		state:     StateIdle,
	}
}

// Initialize выполняет первичную регистрацию реплики: генерирует NodeID,
// создает нулевые часы, получает стартовое состояние сервера и атомарно
// сохраняет все локально. Повторный вызов для уже инициализированной
// реплики ничего не делает.
func (s *service) Initialize(ctx context.Context, deviceType, userID string) error {
	if !s.mu.TryLock() {
		return ErrSyncInProgress
	}
	defer s.mu.Unlock()

	if _, err := s.metadata.GetNodeID(ctx); err == nil {
		s.logger.Debug("Replica already initialized")
		return nil
	} else if !errors.Is(err, storage.ErrMetadataNotFound) {
		return fmt.Errorf("failed to check node id: %w", err)
	}

	nodeID := uuid.New().String()
	clock, err := s.clocks.New(nodeID)
	if err != nil {
		return fmt.Errorf("failed to create replica clock: %w", err)
	}

	req := api.InitializeRequest{
		NodeID:     nodeID,
		DeviceType: deviceType,
		UserID:     userID,
	}

	var resp *api.InitializeResponse
	err = s.retrier.Do(ctx, "initialize", func(ctx context.Context) error {
		if err := s.breaker.Allow(); err != nil {
			return err
		}
		r, err := s.transport.Initialize(ctx, req)
		s.breaker.Record(err == nil || !transportapi.IsTransient(err))
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return fmt.Errorf("initialize request failed: %w", err)
	}

	// Принимаем стартовое состояние сервера как есть: локального
	// состояния еще нет, сливать не с чем
	tasks := make([]*models.Task, 0, len(resp.State))
	skipped := 0
	for _, entry := range resp.State {
		task := fromAPITask(entry)
		if err := s.clocks.Validate(task.Clock); err != nil {
			s.logger.Warn("Skipping initial task with corrupt clock",
				"task_id", task.ID, "error", err)
			skipped++
			continue
		}
		tasks = append(tasks, task)
	}

	// Неполный стартовый снимок часы сервера не вливает: по старым Deps
	// первый же sync-раунд дольет пропущенное
	merged := clock
	if skipped == 0 {
		merged, err = s.clocks.Merge(clock, fromAPIClock(resp.ServerClock))
		if err != nil {
			return fmt.Errorf("failed to merge server clock: %w", err)
		}
	}

	if err := s.metadata.SaveNodeID(ctx, nodeID); err != nil {
		return fmt.Errorf("failed to save node id: %w", err)
	}
	if err := s.tasks.CommitSyncRound(ctx, tasks, merged, nil); err != nil {
		return fmt.Errorf("failed to commit initial state: %w", err)
	}

	s.logger.Info("Replica initialized",
		"node_id", nodeID,
		"initial_tasks", len(tasks),
		"server_counter", resp.ServerClock.Counter)
	return nil
}

// Sync performs one synchronization round
// 1. Collects pending changes up to the batch cap
// 2. Exchanges them with the server through breaker and retry policy
// 3. Merges server changes entity by entity
// 4. Commits merged state, advanced clock and acks atomically
func (s *service) Sync(ctx context.Context) (*SyncResult, error) {
	// Только один раунд одновременно: конкурентный триггер коалесцируется
	if !s.mu.TryLock() {
		return nil, ErrSyncInProgress
	}
	defer s.mu.Unlock()
	defer s.setState(StateIdle)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.RoundTimeout)
	defer cancel()

	result := &SyncResult{}

	// Collecting: снимок часов и pending-журнала
	s.setState(StateCollecting)

	nodeID, err := s.metadata.GetNodeID(ctx)
	if err != nil {
		s.setState(StateFailed)
		if errors.Is(err, storage.ErrMetadataNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to get node id: %w", err)
	}

	clock, err := s.metadata.GetReplicaClock(ctx)
	if err != nil {
		s.setState(StateFailed)
		if errors.Is(err, storage.ErrMetadataNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to get replica clock: %w", err)
	}

	pending, err := s.pending.ListPending(ctx, s.cfg.MaxBatchSize)
	if err != nil {
		s.setState(StateFailed)
		return nil, fmt.Errorf("failed to read pending log: %w", err)
	}

	batch := buildBatch(pending)
	result.PushedChanges = len(batch.changes)

	req := api.SyncRequest{
		NodeID:      nodeID,
		Operation:   api.OperationFullSync,
		BatchID:     uuid.New().String(),
		Changes:     batch.wire(),
		VectorClock: toAPIClock(clock),
	}

	s.logger.Info("Starting sync round",
		"node_id", nodeID,
		"batch_id", req.BatchID,
		"pending", len(pending),
		"batch", len(req.Changes))

	// Sending / AwaitingResponse: транспорт под breaker и retry
	s.setState(StateSending)

	var resp *api.SyncResponse
	err = s.retrier.Do(ctx, "synchronize", func(ctx context.Context) error {
		if err := s.breaker.Allow(); err != nil {
			return err
		}
		s.setState(StateAwaitingResponse)
		r, err := s.transport.Synchronize(ctx, req)
		// Breaker считает отказом только транспортные ошибки;
		// локальный BatchTooLarge здоровье эндпоинта не характеризует
		s.breaker.Record(err == nil || !transportapi.IsTransient(err))
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		// Раунд падает без какой-либо мутации локального состояния:
		// журнал нетронут, повтор с нуля безопасен
		s.setState(StateFailed)
		s.logger.Warn("Sync round failed", "batch_id", req.BatchID, "error", err)
		return nil, fmt.Errorf("sync round failed: %w", err)
	}

	result.PulledChanges = len(resp.Changes)
	result.Conflicts = resp.Conflicts

	// Merging: пообъектное слияние ответа сервера
	s.setState(StateMerging)

	local, err := s.tasks.GetAllTasks(ctx)
	if err != nil {
		s.setState(StateFailed)
		return nil, fmt.Errorf("failed to load local tasks: %w", err)
	}

	merged := make([]*models.Task, 0, len(resp.Changes))
	for id, entry := range resp.Changes {
		remoteTask := fromAPITask(entry)

		localTask, ok := local[id]
		if !ok {
			// Задачи нет локально: принимаем серверную после валидации часов
			if err := s.clocks.Validate(remoteTask.Clock); err != nil {
				s.logger.Warn("Skipping remote task with corrupt clock",
					"task_id", id, "error", err)
				result.SkippedTasks++
				continue
			}
			merged = append(merged, remoteTask)
			result.MergedTasks++
			continue
		}

		resolved, err := s.resolver.Resolve(localTask, remoteTask)
		if err != nil {
			// Одна испорченная задача не срывает остальной батч:
			// пропускаем, ее pending-запись уйдет в следующий раунд
			s.logger.Warn("Failed to merge task",
				"task_id", id, "error", err)
			result.SkippedTasks++
			continue
		}
		merged = append(merged, resolved)
		result.MergedTasks++
	}

	// Committing: единственная точка необратимого изменения состояния
	s.setState(StateCommitting)

	// Слитые часы плюс инкремент: завершенный раунд всегда продвигает
	// счетчик реплики минимум на единицу, даже если изменений не было.
	// Раунд с пропущенными задачами часы сервера не вливает: реплика не
	// видела его дельту целиком, и по старым Deps сервер отдаст
	// пропущенное повторно в следующем раунде
	newClock := clock
	if result.SkippedTasks == 0 {
		newClock, err = s.clocks.Merge(clock, fromAPIClock(resp.ServerClock))
		if err != nil {
			s.setState(StateFailed)
			return nil, fmt.Errorf("failed to merge server clock: %w", err)
		}
	}
	newClock, err = s.clocks.Increment(newClock)
	if err != nil {
		s.setState(StateFailed)
		return nil, fmt.Errorf("failed to advance replica clock: %w", err)
	}

	ackedSeqs := batch.expandAcks(resp.AckedSeqs)
	result.AckedChanges = len(ackedSeqs)

	if err := s.tasks.CommitSyncRound(ctx, merged, newClock, ackedSeqs); err != nil {
		s.setState(StateFailed)
		return nil, fmt.Errorf("failed to commit sync round: %w", err)
	}

	s.logger.Info("Sync round completed",
		"batch_id", req.BatchID,
		"pushed", result.PushedChanges,
		"pulled", result.PulledChanges,
		"merged", result.MergedTasks,
		"skipped", result.SkippedTasks,
		"acked", result.AckedChanges,
		"conflicts", result.Conflicts,
		"counter", newClock.Counter)

	return result, nil
}

// RunLoop запускает периодические sync-раунды до отмены контекста.
// Активный раунд на момент тика приводит к коалесцированию триггера.
func (s *service) RunLoop(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Sync loop stopped")
			return
		case <-ticker.C:
			if _, err := s.Sync(ctx); err != nil {
				if errors.Is(err, ErrSyncInProgress) {
					continue
				}
				s.logger.Warn("Periodic sync failed", "error", err)
			}
		}
	}
}

// PendingCount возвращает количество записей, ожидающих синхронизации
func (s *service) PendingCount(ctx context.Context) (int, error) {
	count, err := s.pending.PendingCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to count pending changes: %w", err)
	}
	return count, nil
}

// ServerState запрашивает у сервера его слитое состояние.
// Диагностический снимок, в локальное состояние ничего не сливается
func (s *service) ServerState(ctx context.Context) (*api.StateResponse, error) {
	nodeID, err := s.metadata.GetNodeID(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrMetadataNotFound) {
			return nil, ErrNotInitialized
		}
		return nil, fmt.Errorf("failed to get node id: %w", err)
	}

	var resp *api.StateResponse
	err = s.retrier.Do(ctx, "get state", func(ctx context.Context) error {
		if err := s.breaker.Allow(); err != nil {
			return err
		}
		r, err := s.transport.GetState(ctx, nodeID)
		s.breaker.Record(err == nil || !transportapi.IsTransient(err))
		if err != nil {
			return err
		}
		resp = r
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("state request failed: %w", err)
	}
	return resp, nil
}

// State возвращает текущее состояние машины раунда
func (s *service) State() RoundState {
	s.stateMu.Lock()
	defer s.stateMu.Unlock()
	return s.state
}

func (s *service) setState(state RoundState) {
	s.stateMu.Lock()
	prev := s.state
	s.state = state
	s.stateMu.Unlock()

	if prev != state {
		s.logger.Debug("Sync state transition", "from", prev.String(), "to", state.String())
	}
}
