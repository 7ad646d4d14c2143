package sync

import (
	"context"

	"github.com/iudanet/tasksync/pkg/api"
)

//go:generate moq -out transport_mock.go . Transport

// Transport определяет контракт канала запрос/ответ к удаленному
// sync-эндпоинту. За пределами этого контракта транспорт внешний:
// оркестратор не знает, HTTP это или что-то еще.
type Transport interface {
	// Initialize регистрирует новую реплику на сервере
	Initialize(ctx context.Context, req api.InitializeRequest) (*api.InitializeResponse, error)

	// Synchronize выполняет обмен изменениями одного sync-раунда
	Synchronize(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error)

	// GetState возвращает последнее известное серверу слитое состояние
	GetState(ctx context.Context, nodeID string) (*api.StateResponse, error)
}
