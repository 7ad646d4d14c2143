package models

import "time"

// Статусы задачи. Закрытый набор, новые значения добавляются только
// вместе с миграцией серверной схемы.
const (
	StatusPending    = "pending"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

// Приоритеты задачи. Ранжирование используется политикой разрешения
// конфликтов при конкурентных часах.
const (
	PriorityCritical = "critical"
	PriorityHigh     = "high"
	PriorityNormal   = "normal"
	PriorityLow      = "low"
)

// priorityRank задает строгий порядок приоритетов: чем больше ранг, тем важнее приоритет.
// Неизвестный приоритет получает ранг 0 и проигрывает любому известному.
var priorityRank = map[string]int{
	PriorityLow:      1,
	PriorityNormal:   2,
	PriorityHigh:     3,
	PriorityCritical: 4,
}

// PriorityRank возвращает числовой ранг приоритета.
func PriorityRank(priority string) int {
	return priorityRank[priority]
}

// Task представляет синхронизируемую запись задачи.
// Инвариант: любое изменение мутабельных полей выполняется только в паре
// с инкрементом привязанных часов, по отдельности они не обновляются.
type Task struct {
	CreatedAt time.Time   `json:"created_at"` // CreatedAt время создания записи (для информации)
	UpdatedAt time.Time   `json:"updated_at"` // UpdatedAt время последнего изменения (для информации)
	Clock     VectorClock `json:"clock"`      // Clock векторные часы последней мутации записи
	ID        string      `json:"id"`         // ID неизменяемый идентификатор задачи (UUID)
	Title     string      `json:"title"`      // Title заголовок задачи
	Status    string      `json:"status"`     // Status текущий статус из закрытого набора
	Priority  string      `json:"priority"`   // Priority приоритет из закрытого набора
	Assignee  string      `json:"assignee"`   // Assignee исполнитель задачи
	Payload   []byte      `json:"payload"`    // Payload произвольные данные задачи (непрозрачны для sync-ядра)
	Deleted   bool        `json:"deleted"`    // Deleted флаг soft delete
}

// Clone создает глубокую копию задачи вместе с часами.
func (t *Task) Clone() *Task {
	payload := make([]byte, len(t.Payload))
	copy(payload, t.Payload)

	out := *t
	out.Payload = payload
	out.Clock = t.Clock.Clone()
	return &out
}

// FieldsEqual сравнивает мутабельные поля двух задач без учета часов.
// Используется тестами сходимости и коммитом раунда для отсечения no-op записей.
func (t *Task) FieldsEqual(other *Task) bool {
	if t.Title != other.Title || t.Status != other.Status ||
		t.Priority != other.Priority || t.Assignee != other.Assignee ||
		t.Deleted != other.Deleted {
		return false
	}
	return string(t.Payload) == string(other.Payload)
}
