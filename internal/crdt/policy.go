package crdt

import "github.com/iudanet/tasksync/internal/models"

// Side обозначает сторону, чьи значения полей побеждают в конфликте.
type Side int

const (
	// SideLocal побеждают локальные значения
	SideLocal Side = iota
	// SideRemote побеждают удаленные значения
	SideRemote
)

// ConflictPolicy выбирает победителя среди двух конкурентных версий задачи.
// Политика обязана быть чистой функцией своих двух аргументов: без скрытого
// состояния и без случайности, иначе независимо реплеящие реплики разойдутся.
// Выбор действует на запись целиком, пополевого слияния нет.
type ConflictPolicy interface {
	// Choose возвращает сторону-победителя для двух конкурентных версий
	Choose(local, remote *models.Task) Side

	// Name возвращает тег политики для аудиторского поля merge_operation
	Name() string
}

// PriorityPolicy политика разрешения конфликтов по умолчанию.
// Более высокий приоритет задачи (critical > high > normal > low) побеждает
// целиком. При равных приоритетах побеждает сторона с более поздним
// timestamp часов. Если и timestamp равны, фиксированно побеждает удаленная
// сторона: направление выбрано произвольно, но применяется единообразно,
// чтобы все реплики, реплеящие одни и те же входы, сошлись к одному результату.
type PriorityPolicy struct{}

// NewPriorityPolicy создает политику приоритетов по умолчанию.
func NewPriorityPolicy() PriorityPolicy {
	return PriorityPolicy{}
}

// Name возвращает тег политики.
func (PriorityPolicy) Name() string {
	return models.MergeOpPriority
}

// Choose выбирает победителя между двумя конкурентными версиями задачи.
func (PriorityPolicy) Choose(local, remote *models.Task) Side {
	localRank := models.PriorityRank(local.Priority)
	remoteRank := models.PriorityRank(remote.Priority)

	switch {
	case localRank > remoteRank:
		return SideLocal
	case remoteRank > localRank:
		return SideRemote
	}

	switch {
	case local.Clock.Timestamp > remote.Clock.Timestamp:
		return SideLocal
	case remote.Clock.Timestamp > local.Clock.Timestamp:
		return SideRemote
	}

	// Полное равенство: фиксированная сторона для детерминизма
	return SideRemote
}
