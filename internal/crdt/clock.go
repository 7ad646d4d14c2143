package crdt

import (
	"fmt"
	"sort"
	"time"

	"github.com/iudanet/tasksync/internal/models"
	"github.com/iudanet/tasksync/internal/validation"
)

// Ordering представляет результат сравнения двух векторных часов.
type Ordering int

const (
	// OrderingBefore первые часы каузально предшествуют вторым
	OrderingBefore Ordering = iota
	// OrderingAfter первые часы каузально следуют за вторыми
	OrderingAfter
	// OrderingConcurrent ни одни часы не доминируют: требуется политика разрешения конфликта
	OrderingConcurrent
)

// String возвращает строковое представление результата сравнения.
func (o Ordering) String() string {
	switch o {
	case OrderingBefore:
		return "before"
	case OrderingAfter:
		return "after"
	case OrderingConcurrent:
		return "concurrent"
	default:
		return "unknown"
	}
}

const (
	// DefaultMaxAge максимальный возраст часов по умолчанию.
	// Часы старше отбрасываются валидацией, а не сливаются молча.
	DefaultMaxAge = 30 * 24 * time.Hour

	// DefaultMaxDeps жесткая граница размера карты каузальных зависимостей.
	// При переполнении вытесняются записи с наименьшим счетчиком.
	DefaultMaxDeps = 64
)

// Clocks реализует операции над векторными часами с заданными границами.
// Экземпляр создается в composition root приложения и передается явно,
// глобального состояния нет. Часы всюду трактуются как value-типы:
// ни одна операция не мутирует вход.
type Clocks struct {
	maxAge  time.Duration
	maxDeps int
	now     func() time.Time
}

// NewClocks создает операции над часами с заданными границами.
// Неположительные значения заменяются дефолтами.
func NewClocks(maxAge time.Duration, maxDeps int) *Clocks {
	if maxAge <= 0 {
		maxAge = DefaultMaxAge
	}
	if maxDeps <= 0 {
		maxDeps = DefaultMaxDeps
	}
	return &Clocks{
		maxAge:  maxAge,
		maxDeps: maxDeps,
		now:     time.Now,
	}
}

// New создает нулевые часы для узла: counter 0, пустые зависимости.
// Возвращает ErrInvalidNodeID, если идентификатор не прошел валидацию формата.
func (c *Clocks) New(nodeID string) (models.VectorClock, error) {
	if err := validation.ValidateNodeID(nodeID); err != nil {
		return models.VectorClock{}, fmt.Errorf("%w: %v", ErrInvalidNodeID, err)
	}

	return models.VectorClock{
		NodeID:    nodeID,
		Counter:   0,
		Timestamp: c.now().UnixNano(),
		MergeOp:   models.MergeOpLocal,
	}, nil
}

// Increment возвращает новые часы с counter+1 и свежим timestamp.
// Карта зависимостей копируется, исходные часы не изменяются.
func (c *Clocks) Increment(clock models.VectorClock) (models.VectorClock, error) {
	if err := c.Validate(clock); err != nil {
		return models.VectorClock{}, err
	}

	out := clock.Clone()
	out.Counter++
	out.Timestamp = c.now().UnixNano()
	out.MergeOp = models.MergeOpLocal
	return out, nil
}

// Compare сравнивает две пары часов и возвращает их каузальный порядок.
// Порядок определения:
//  1. Сырые счетчики: меньший counter означает более раннее событие.
//  2. При равных счетчиках проверяется одностороннее каузальное доминирование
//     через карты зависимостей в обе стороны.
//  3. Если никто не доминирует, сравниваются timestamp.
//  4. При равных timestamp результат OrderingConcurrent: это полноценный
//     исход, требующий политики разрешения, а не ошибка упорядочивания.
func (c *Clocks) Compare(a, b models.VectorClock) (Ordering, error) {
	if err := c.Validate(a); err != nil {
		return OrderingConcurrent, err
	}
	if err := c.Validate(b); err != nil {
		return OrderingConcurrent, err
	}

	switch {
	case a.Counter < b.Counter:
		return OrderingBefore, nil
	case a.Counter > b.Counter:
		return OrderingAfter, nil
	}

	aSeesB := HasCausalDependency(a, b)
	bSeesA := HasCausalDependency(b, a)
	switch {
	case aSeesB && !bSeesA:
		return OrderingAfter, nil
	case bSeesA && !aSeesB:
		return OrderingBefore, nil
	}

	switch {
	case a.Timestamp < b.Timestamp:
		return OrderingBefore, nil
	case a.Timestamp > b.Timestamp:
		return OrderingAfter, nil
	}

	return OrderingConcurrent, nil
}

// Merge сливает несколько часов в одни: максимум счетчиков, самый поздний
// timestamp, по-узловой максимум зависимостей. Собственная пара
// (NodeID, Counter) каждого входа также попадает в зависимости результата,
// чтобы слитые часы отражали полное каузальное знание. NodeID результата
// берется из первых часов: локальная реплика, сливающая удаленные данные,
// сохраняет свою идентичность.
func (c *Clocks) Merge(clocks ...models.VectorClock) (models.VectorClock, error) {
	if len(clocks) == 0 {
		return models.VectorClock{}, ErrEmptyInput
	}

	for _, clock := range clocks {
		if err := c.Validate(clock); err != nil {
			return models.VectorClock{}, err
		}
	}

	out := models.VectorClock{
		NodeID:  clocks[0].NodeID,
		MergeOp: models.MergeOpLWW,
		Deps:    make(map[string]int64),
	}

	for _, clock := range clocks {
		if clock.Counter > out.Counter {
			out.Counter = clock.Counter
		}
		if clock.Timestamp > out.Timestamp {
			out.Timestamp = clock.Timestamp
		}
		if clock.Counter > out.Deps[clock.NodeID] {
			out.Deps[clock.NodeID] = clock.Counter
		}
		for node, counter := range clock.Deps {
			if counter > out.Deps[node] {
				out.Deps[node] = counter
			}
		}
	}

	out.Deps = c.boundDeps(out.Deps)
	return out, nil
}

// Validate проверяет часы: формат NodeID, неотрицательный счетчик,
// корректность карты зависимостей и максимальный возраст. Каждая
// публичная операция над часами вызывает Validate для каждого входа.
func (c *Clocks) Validate(clock models.VectorClock) error {
	if err := validation.ValidateNodeID(clock.NodeID); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidNodeID, err)
	}

	if clock.Counter < 0 {
		return fmt.Errorf("%w: counter %d is negative", ErrInvalidCounter, clock.Counter)
	}

	if len(clock.Deps) > c.maxDeps {
		return fmt.Errorf("%w: %d entries exceed limit %d", ErrInvalidDependencyMap, len(clock.Deps), c.maxDeps)
	}
	for node, counter := range clock.Deps {
		if err := validation.ValidateNodeID(node); err != nil {
			return fmt.Errorf("%w: bad node key %q", ErrInvalidDependencyMap, node)
		}
		if counter < 0 {
			return fmt.Errorf("%w: negative counter %d for node %q", ErrInvalidDependencyMap, counter, node)
		}
	}

	if clock.Timestamp > 0 {
		age := c.now().UnixNano() - clock.Timestamp
		if age > c.maxAge.Nanoseconds() {
			return fmt.Errorf("%w: clock is %s old, limit %s",
				ErrExpiredClock, time.Duration(age), c.maxAge)
		}
	}

	return nil
}

// HasCausalDependency сообщает, наблюдали ли часы a событие часов b:
// зафиксированный в a счетчик для узла b не меньше счетчика b.
func HasCausalDependency(a, b models.VectorClock) bool {
	return a.Deps[b.NodeID] >= b.Counter
}

// Equal сравнивает часы без учета аудиторского тега MergeOp.
func Equal(a, b models.VectorClock) bool {
	if a.NodeID != b.NodeID || a.Counter != b.Counter || a.Timestamp != b.Timestamp {
		return false
	}
	if len(a.Deps) != len(b.Deps) {
		return false
	}
	for node, counter := range a.Deps {
		if b.Deps[node] != counter {
			return false
		}
	}
	return true
}

// boundDeps ограничивает карту зависимостей жесткой границей maxDeps,
// вытесняя записи с наименьшим счетчиком первыми.
func (c *Clocks) boundDeps(deps map[string]int64) map[string]int64 {
	if len(deps) <= c.maxDeps {
		return deps
	}

	type depEntry struct {
		node    string
		counter int64
	}
	entries := make([]depEntry, 0, len(deps))
	for node, counter := range deps {
		entries = append(entries, depEntry{node: node, counter: counter})
	}

	// Наибольшие счетчики в начало; при равенстве порядок фиксируется
	// по имени узла, чтобы вытеснение было детерминированным на всех репликах.
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].counter != entries[j].counter {
			return entries[i].counter > entries[j].counter
		}
		return entries[i].node < entries[j].node
	})

	bounded := make(map[string]int64, c.maxDeps)
	for _, entry := range entries[:c.maxDeps] {
		bounded[entry.node] = entry.counter
	}
	return bounded
}
