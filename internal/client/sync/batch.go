package sync

import (
	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/pkg/api"
)

// batch группирует pending-записи по задаче: на задачу уходит один wire
// Change с последним снимком и максимальным Seq. Ack этого Seq покрывает
// все свернутые в него записи журнала.
type batch struct {
	changes map[string]api.Change // taskID -> wire change
	seqs    map[string][]uint64   // taskID -> все свернутые Seq
	bySeq   map[uint64]string     // отправленный Seq -> taskID
}

func buildBatch(pending []*models.PendingChange) *batch {
	b := &batch{
		changes: make(map[string]api.Change, len(pending)),
		seqs:    make(map[string][]uint64, len(pending)),
		bySeq:   make(map[uint64]string, len(pending)),
	}

	for _, change := range pending {
		b.seqs[change.TaskID] = append(b.seqs[change.TaskID], change.Seq)

		// pending-журнал читается по возрастанию Seq, поэтому последняя
		// запись задачи и есть ее актуальный снимок с максимальным Seq
		cur, ok := b.changes[change.TaskID]
		if ok && cur.Seq >= change.Seq {
			continue
		}
		b.changes[change.TaskID] = api.Change{
			Task: toAPITask(change.Task),
			Seq:  change.Seq,
		}
	}

	for taskID, change := range b.changes {
		b.bySeq[change.Seq] = taskID
	}
	return b
}

// wire возвращает батч в wire-формате запроса.
func (b *batch) wire() map[string]api.Change {
	return b.changes
}

// expandAcks разворачивает подтвержденные сервером Seq в полный список
// записей журнала: ack свернутого Seq покрывает все записи той же задачи.
func (b *batch) expandAcks(acked []uint64) []uint64 {
	out := make([]uint64, 0, len(acked))
	for _, seq := range acked {
		taskID, ok := b.bySeq[seq]
		if !ok {
			// Незнакомый Seq игнорируем: удалять из журнала можно
			// только то, что реально уходило в этом батче
			continue
		}
		out = append(out, b.seqs[taskID]...)
	}
	return out
}

func toAPIClock(clock models.VectorClock) api.VectorClock {
	return api.VectorClock{
		CausalDependencies: models.CloneDeps(clock.Deps),
		NodeID:             clock.NodeID,
		MergeOperation:     clock.MergeOp,
		Counter:            clock.Counter,
		Timestamp:          clock.Timestamp,
	}
}

func fromAPIClock(clock api.VectorClock) models.VectorClock {
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

func toAPITask(task *models.Task) api.TaskEntry {
	return api.TaskEntry{
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
		Clock:     toAPIClock(task.Clock),
		ID:        task.ID,
		Title:     task.Title,
		Status:    task.Status,
		Priority:  task.Priority,
		Assignee:  task.Assignee,
		Payload:   task.Payload,
		Deleted:   task.Deleted,
	}
}

func fromAPITask(entry api.TaskEntry) *models.Task {
	return &models.Task{
		CreatedAt: entry.CreatedAt,
		UpdatedAt: entry.UpdatedAt,
		Clock:     fromAPIClock(entry.Clock),
		ID:        entry.ID,
		Title:     entry.Title,
		Status:    entry.Status,
		Priority:  entry.Priority,
		Assignee:  entry.Assignee,
		Payload:   entry.Payload,
		Deleted:   entry.Deleted,
	}
}
