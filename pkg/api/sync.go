package api

import "time"

// Операции синхронизации, передаваемые в SyncRequest.
const (
	OperationPush     = "push"
	OperationPull     = "pull"
	OperationFullSync = "full_sync"
)

// MaxBatchSize максимальный размер батча по умолчанию.
// Батч большего размера отклоняется локально до какого-либо сетевого вызова.
const MaxBatchSize = 1000

// VectorClock представляет векторные часы в wire-формате.
// Timestamp передается как int64 unix-nano: точность не должна теряться
// при сериализации.
type VectorClock struct {
	CausalDependencies map[string]int64 `json:"causal_dependencies,omitempty"`
	NodeID             string           `json:"node_id"`
	MergeOperation     string           `json:"merge_operation,omitempty"`
	Counter            int64            `json:"counter"`
	Timestamp          int64            `json:"timestamp"`
}

// TaskEntry представляет одну запись задачи для синхронизации.
type TaskEntry struct {
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
	Clock     VectorClock `json:"clock"`
	ID        string      `json:"id"`
	Title     string      `json:"title"`
	Status    string      `json:"status"`
	Priority  string      `json:"priority"`
	Assignee  string      `json:"assignee"`
	Payload   []byte      `json:"payload,omitempty"`
	Deleted   bool        `json:"deleted"`
}

// Change представляет запись pending-журнала в wire-формате.
// Seq локален для отправителя и возвращается сервером в AckedSeqs.
type Change struct {
	Task TaskEntry `json:"task"`
	Seq  uint64    `json:"seq"`
}

// InitializeRequest представляет запрос регистрации новой реплики.
type InitializeRequest struct {
	InitialState map[string]TaskEntry `json:"initial_state,omitempty"`
	NodeID       string               `json:"node_id"`
	DeviceType   string               `json:"device_type"`
	UserID       string               `json:"user_id"`
}

// InitializeResponse представляет ответ сервера на регистрацию реплики.
type InitializeResponse struct {
	State       map[string]TaskEntry `json:"state"`
	ServerClock VectorClock          `json:"server_clock"`
}

// SyncRequest представляет один sync-раунд от реплики.
type SyncRequest struct {
	Changes     map[string]Change `json:"changes"`
	NodeID      string            `json:"node_id"`
	Operation   string            `json:"operation"`
	BatchID     string            `json:"batch_id,omitempty"`
	VectorClock VectorClock       `json:"vector_clock"`
}

// SyncResponse представляет ответ сервера на sync-раунд.
type SyncResponse struct {
	Changes     map[string]TaskEntry `json:"changes"`              // Changes изменения со стороны сервера
	AckedSeqs   []uint64             `json:"acked_seqs"`           // AckedSeqs подтвержденные номера pending-журнала
	ServerClock VectorClock          `json:"server_clock"`         // ServerClock текущие часы сервера
	Conflicts   int                  `json:"conflicts"`            // Conflicts количество разрешенных конфликтов
	Duplicate   bool                 `json:"duplicate,omitempty"`  // Duplicate батч с таким batch_id уже применялся
}

// StateResponse представляет диагностический снимок состояния сервера.
type StateResponse struct {
	Tasks       map[string]TaskEntry `json:"tasks"`
	NodeID      string               `json:"node_id"`
	ServerClock VectorClock          `json:"server_clock"`
}

// ErrorResponse представляет ошибку API
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
