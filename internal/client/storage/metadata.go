package storage

import (
	"context"

	"github.com/iudanet/tasksync/internal/models"
)

//go:generate moq -out metadata_mock.go . MetadataStorage

// MetadataStorage определяет интерфейс хранения метаданных реплики:
// ее идентификатора и векторных часов. Часы реплики принадлежат только ей,
// никакая другая сторона их не мутирует.
type MetadataStorage interface {
	// SaveNodeID сохраняет идентификатор реплики; назначается один раз
	SaveNodeID(ctx context.Context, nodeID string) error

	// GetNodeID возвращает идентификатор реплики.
	// Возвращает ErrMetadataNotFound до первичной инициализации.
	GetNodeID(ctx context.Context) (string, error)

	// SaveReplicaClock сохраняет текущие часы реплики
	SaveReplicaClock(ctx context.Context, clock models.VectorClock) error

	// GetReplicaClock возвращает текущие часы реплики.
	// Возвращает ErrMetadataNotFound до первичной инициализации.
	GetReplicaClock(ctx context.Context) (models.VectorClock, error)
}
