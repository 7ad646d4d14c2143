package data

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/tasksync/internal/client/storage"
	"github.com/iudanet/tasksync/internal/crdt"
	"github.com/iudanet/tasksync/internal/models"
)

// Ошибки валидации локальных мутаций.
var (
	ErrEmptyTitle      = errors.New("task title is empty")
	ErrUnknownStatus   = errors.New("unknown task status")
	ErrUnknownPriority = errors.New("unknown task priority")
	ErrTaskDeleted     = errors.New("task is deleted")
)

//go:generate moq -out service_mock.go . Service

// Service определяет интерфейс клиентского сервиса мутаций задач.
// Каждая мутация выполняется офлайн: изменение полей и продвижение часов
// задачи сохраняются одной записью вместе с pending-журналом, сервер
// узнает о них в следующем sync-раунде.
type Service interface {
	// CreateTask создает новую задачу
	CreateTask(ctx context.Context, title, priority, assignee string, payload []byte) (*models.Task, error)

	// GetTask возвращает задачу по идентификатору
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// ListTasks возвращает все неудаленные задачи
	ListTasks(ctx context.Context) ([]*models.Task, error)

	// UpdateTitle изменяет заголовок задачи
	UpdateTitle(ctx context.Context, id, title string) (*models.Task, error)

	// UpdateStatus переводит задачу в новый статус
	UpdateStatus(ctx context.Context, id, status string) (*models.Task, error)

	// SetPriority изменяет приоритет задачи
	SetPriority(ctx context.Context, id, priority string) (*models.Task, error)

	// Assign назначает исполнителя задачи
	Assign(ctx context.Context, id, assignee string) (*models.Task, error)

	// DeleteTask помечает задачу удаленной (soft delete)
	DeleteTask(ctx context.Context, id string) error
}

// service handles offline task mutations against local storage
type service struct {
	tasks    storage.TaskStorage
	metadata storage.MetadataStorage
	clocks   *crdt.Clocks
}

// NewService creates a new task mutation service
func NewService(tasks storage.TaskStorage, metadata storage.MetadataStorage, clocks *crdt.Clocks) Service {
	return &service{
		tasks:    tasks,
		metadata: metadata,
		clocks:   clocks,
	}
}

// CreateTask создает новую задачу с часами этой реплики (counter 1).
func (s *service) CreateTask(ctx context.Context, title, priority, assignee string, payload []byte) (*models.Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if priority == "" {
		priority = models.PriorityNormal
	}
	if models.PriorityRank(priority) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPriority, priority)
	}

	nodeID, err := s.metadata.GetNodeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get node id: %w", err)
	}

	clock, err := s.clocks.New(nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to create task clock: %w", err)
	}
	clock, err = s.clocks.Increment(clock)
	if err != nil {
		return nil, fmt.Errorf("failed to advance task clock: %w", err)
	}

	now := time.Now()
	task := &models.Task{
		ID:        uuid.New().String(),
		Title:     title,
		Status:    models.StatusPending,
		Priority:  priority,
		Assignee:  assignee,
		Payload:   payload,
		Clock:     clock,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := s.tasks.ApplyLocalChange(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return task, nil
}

// GetTask возвращает задачу по идентификатору.
func (s *service) GetTask(ctx context.Context, id string) (*models.Task, error) {
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task.Deleted {
		return nil, storage.ErrTaskNotFound
	}
	return task, nil
}

// ListTasks возвращает все неудаленные задачи.
func (s *service) ListTasks(ctx context.Context) ([]*models.Task, error) {
	tasks, err := s.tasks.GetActiveTasks(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTitle изменяет заголовок задачи.
func (s *service) UpdateTitle(ctx context.Context, id, title string) (*models.Task, error) {
	if title == "" {
		return nil, ErrEmptyTitle
	}
	return s.mutate(ctx, id, func(task *models.Task) {
		task.Title = title
	})
}

// UpdateStatus переводит задачу в новый статус из закрытого набора.
func (s *service) UpdateStatus(ctx context.Context, id, status string) (*models.Task, error) {
	switch status {
	case models.StatusPending, models.StatusInProgress, models.StatusCompleted, models.StatusCancelled:
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
	return s.mutate(ctx, id, func(task *models.Task) {
		task.Status = status
	})
}

// SetPriority изменяет приоритет задачи.
func (s *service) SetPriority(ctx context.Context, id, priority string) (*models.Task, error) {
	if models.PriorityRank(priority) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownPriority, priority)
	}
	return s.mutate(ctx, id, func(task *models.Task) {
		task.Priority = priority
	})
}

// Assign назначает исполнителя задачи.
func (s *service) Assign(ctx context.Context, id, assignee string) (*models.Task, error) {
	return s.mutate(ctx, id, func(task *models.Task) {
		task.Assignee = assignee
	})
}

// DeleteTask помечает задачу удаленной. Запись остается в хранилище,
// чтобы удаление реплицировалось как обычная мутация с часами.
func (s *service) DeleteTask(ctx context.Context, id string) error {
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get task: %w", err)
	}
	if task.Deleted {
		return nil
	}

	_, err = s.apply(ctx, task, func(task *models.Task) {
		task.Deleted = true
	})
	return err
}

// mutate загружает живую задачу и применяет к ней мутацию в паре с
// продвижением часов.
func (s *service) mutate(ctx context.Context, id string, change func(*models.Task)) (*models.Task, error) {
	task, err := s.tasks.GetTask(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	if task.Deleted {
		return nil, ErrTaskDeleted
	}
	return s.apply(ctx, task, change)
}

// apply выполняет мутацию над копией задачи: новые часы принадлежат этой
// реплике и каузально доминируют над прежними, затем поля и часы
// сохраняются одной записью.
func (s *service) apply(ctx context.Context, task *models.Task, change func(*models.Task)) (*models.Task, error) {
	nodeID, err := s.metadata.GetNodeID(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get node id: %w", err)
	}

	clock := task.Clock
	if clock.NodeID != nodeID {
		// Чужие часы переподчиняются реплике: слияние с нулевыми часами
		// этого узла сохраняет счетчик и записывает прежнего владельца
		// в зависимости
		own, err := s.clocks.New(nodeID)
		if err != nil {
			return nil, fmt.Errorf("failed to create replica clock: %w", err)
		}
		clock, err = s.clocks.Merge(own, clock)
		if err != nil {
			return nil, fmt.Errorf("failed to adopt task clock: %w", err)
		}
	}
	clock, err = s.clocks.Increment(clock)
	if err != nil {
		return nil, fmt.Errorf("failed to advance task clock: %w", err)
	}

	out := task.Clone()
	change(out)
	out.Clock = clock
	out.UpdatedAt = time.Now()

	if _, err := s.tasks.ApplyLocalChange(ctx, out); err != nil {
		return nil, fmt.Errorf("failed to save task: %w", err)
	}
	return out, nil
}
