package storage

import (
	"context"

	"github.com/iudanet/tasksync/internal/models"
)

//go:generate moq -out tasks_mock.go . TaskStorage

// TaskStorage определяет интерфейс локального хранилища задач реплики.
// Две операции записи объединяют несколько изменений в одну транзакцию:
// это единственный способ удержать инварианты пары "поля + часы" и
// атомарности фазы Committing.
type TaskStorage interface {
	// GetTask возвращает задачу по идентификатору.
	// Возвращает ErrTaskNotFound, если задачи нет.
	GetTask(ctx context.Context, id string) (*models.Task, error)

	// GetAllTasks возвращает все задачи, включая удаленные.
	// Используется фазой Merging sync-раунда.
	GetAllTasks(ctx context.Context) (map[string]*models.Task, error)

	// GetActiveTasks возвращает неудаленные задачи.
	GetActiveTasks(ctx context.Context) ([]*models.Task, error)

	// ApplyLocalChange сохраняет мутированную задачу и добавляет запись в
	// pending-журнал одной транзакцией, возвращая назначенный номер Seq.
	// Поля и часы задачи никогда не обновляются по отдельности.
	ApplyLocalChange(ctx context.Context, task *models.Task) (uint64, error)

	// CommitSyncRound атомарно (все или ничего) сохраняет слитые задачи,
	// новые часы реплики и удаляет из pending-журнала ровно подтвержденные
	// номера. Единственная точка необратимого изменения состояния раунда.
	CommitSyncRound(ctx context.Context, tasks []*models.Task, clock models.VectorClock, ackedSeqs []uint64) error
}
