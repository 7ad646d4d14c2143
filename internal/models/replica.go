package models

import "time"

// Replica представляет известную серверу клиентскую реплику.
// Clock хранит последние часы, которые реплика предъявила серверу:
// по ним считается дельта изменений для следующего раунда.
type Replica struct {
	CreatedAt  time.Time   `json:"created_at"`
	LastSyncAt time.Time   `json:"last_sync_at"`
	Clock      VectorClock `json:"clock"`
	NodeID     string      `json:"node_id"`
	DeviceType string      `json:"device_type"`
	UserID     string      `json:"user_id"`
}
