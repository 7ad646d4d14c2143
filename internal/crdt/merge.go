package crdt

import (
	"fmt"

	"github.com/iudanet/tasksync/internal/models"
)

// Resolver выполняет детерминированное слияние двух версий одной задачи.
// Операция коммутативна и идемпотентна для всех трех исходов сравнения,
// поэтому реплики, применяющие одни и те же пары, сходятся к одному
// состоянию независимо от порядка слияния.
type Resolver struct {
	clocks *Clocks
	policy ConflictPolicy
}

// NewResolver создает движок слияния с заданной политикой конфликтов.
func NewResolver(clocks *Clocks, policy ConflictPolicy) *Resolver {
	return &Resolver{
		clocks: clocks,
		policy: policy,
	}
}

// Resolve сливает локальную и удаленную версии одной задачи в одну.
//   - Before: удаленное состояние полностью вытесняет локальное.
//   - After: локальное состояние сохраняется, удаленное устарело и отбрасывается.
//   - Concurrent: политика выбирает победителя целиком, а часы результата
//     всегда Merge(local, remote), чтобы они отражали полное каузальное знание
//     даже когда сохранены данные только одной стороны.
//
// Возвращает ErrCorruptClock, если какие-либо входные часы не проходят
// валидацию; слияние при этом не применяется даже частично.
func (r *Resolver) Resolve(local, remote *models.Task) (*models.Task, error) {
	if err := r.clocks.Validate(local.Clock); err != nil {
		return nil, fmt.Errorf("%w: local: %v", ErrCorruptClock, err)
	}
	if err := r.clocks.Validate(remote.Clock); err != nil {
		return nil, fmt.Errorf("%w: remote: %v", ErrCorruptClock, err)
	}

	// Идентичные версии сливаются сами в себя без изменений
	if Equal(local.Clock, remote.Clock) && local.FieldsEqual(remote) {
		return local.Clone(), nil
	}

	ordering, err := r.clocks.Compare(local.Clock, remote.Clock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptClock, err)
	}

	switch ordering {
	case OrderingBefore:
		out := remote.Clone()
		out.Clock.MergeOp = models.MergeOpLWW
		return out, nil
	case OrderingAfter:
		out := local.Clone()
		out.Clock.MergeOp = models.MergeOpLWW
		return out, nil
	}

	// Конкурентные часы: победителя выбирает политика, запись целиком
	var out *models.Task
	if r.policy.Choose(local, remote) == SideLocal {
		out = local.Clone()
	} else {
		out = remote.Clone()
	}

	mergedClock, err := r.clocks.Merge(local.Clock, remote.Clock)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptClock, err)
	}
	mergedClock.MergeOp = r.policy.Name()
	out.Clock = mergedClock

	if remote.UpdatedAt.After(out.UpdatedAt) {
		out.UpdatedAt = remote.UpdatedAt
	}
	if local.UpdatedAt.After(out.UpdatedAt) {
		out.UpdatedAt = local.UpdatedAt
	}

	return out, nil
}

// ResolveAll сливает два набора задач по идентификаторам.
// Задачи, присутствующие только с одной стороны, проходят без изменений.
// Ошибка слияния отдельной задачи изолируется: задача пропускается и
// возвращается в failed, остальной набор обрабатывается дальше.
func (r *Resolver) ResolveAll(local, remote map[string]*models.Task) (map[string]*models.Task, map[string]error) {
	merged := make(map[string]*models.Task, len(local)+len(remote))
	failed := make(map[string]error)

	for id, task := range local {
		remoteTask, ok := remote[id]
		if !ok {
			merged[id] = task.Clone()
			continue
		}

		resolved, err := r.Resolve(task, remoteTask)
		if err != nil {
			failed[id] = err
			continue
		}
		merged[id] = resolved
	}

	for id, task := range remote {
		if _, ok := local[id]; ok {
			continue
		}
		merged[id] = task.Clone()
	}

	return merged, failed
}
