package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/pkg/api"
)

func clockToWire(clock models.VectorClock) api.VectorClock {
	return api.VectorClock{
		CausalDependencies: models.CloneDeps(clock.Deps),
		NodeID:             clock.NodeID,
		MergeOperation:     clock.MergeOp,
		Counter:            clock.Counter,
		Timestamp:          clock.Timestamp,
	}
}

func clockFromWire(clock api.VectorClock) models.VectorClock {
	deps := make(map[string]int64, len(clock.CausalDependencies))
	for node, counter := range clock.CausalDependencies {
		deps[node] = counter
	}
	return models.VectorClock{
		Deps:      deps,
		NodeID:    clock.NodeID,
		MergeOp:   clock.MergeOperation,
		Counter:   clock.Counter,
		Timestamp: clock.Timestamp,
	}
}

func taskToEntry(task *models.Task) api.TaskEntry {
	return api.TaskEntry{
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
		Clock:     clockToWire(task.Clock),
		ID:        task.ID,
		Title:     task.Title,
		Status:    task.Status,
		Priority:  task.Priority,
		Assignee:  task.Assignee,
		Payload:   task.Payload,
		Deleted:   task.Deleted,
	}
}

func entryToTask(entry api.TaskEntry) *models.Task {
	return &models.Task{
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		Clock:     clockFromWire(entry.Clock),
		ID:        entry.ID,
		Title:     entry.Title,
		Status:    entry.Status,
		Priority:  entry.Priority,
		Assignee:  entry.Assignee,
		Payload:   entry.Payload,
		Deleted:   entry.Deleted,
	}
}

// writeJSON отправляет успешный JSON-ответ
func writeJSON(w http.ResponseWriter, logger *slog.Logger, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Error("Failed to encode response", "error", err)
	}
}

// writeError отправляет ошибку в формате api.ErrorResponse
func writeError(w http.ResponseWriter, logger *slog.Logger, status int, code, message string) {
	writeJSON(w, logger, status, api.ErrorResponse{
		Error:   code,
		Message: message,
	})
}
