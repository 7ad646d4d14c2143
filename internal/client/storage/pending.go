package storage

import (
	"context"

	"github.com/iudanet/tasksync/internal/models"
)

//go:generate moq -out pending_mock.go . PendingLog

// PendingLog определяет интерфейс чтения журнала неподтвержденных локальных
// мутаций. Запись в журнал идет только через TaskStorage.ApplyLocalChange,
// удаление только через TaskStorage.CommitSyncRound по ack с сервера;
// спекулятивного удаления нет.
type PendingLog interface {
	// ListPending возвращает записи журнала в порядке возрастания Seq,
	// не более limit штук. limit <= 0 означает без ограничения.
	ListPending(ctx context.Context, limit int) ([]*models.PendingChange, error)

	// PendingCount возвращает количество неподтвержденных записей.
	PendingCount(ctx context.Context) (int, error)
}
