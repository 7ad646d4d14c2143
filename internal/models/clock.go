package models

// MergeOp константы для тега merge_operation векторных часов.
// Тег носит аудиторский характер: показывает, какая политика породила
// значение, привязанное к часам, и никогда не участвует в упорядочивании.
const (
	MergeOpLocal    = "local_write"
	MergeOpLWW      = "last_write_wins"
	MergeOpPriority = "priority_resolution"
)

// VectorClock представляет векторные часы реплики: монотонный счетчик
// узла плюс карта каузальных зависимостей от других узлов.
// Часы имеют value-семантику: все операции над ними возвращают копию,
// исходный экземпляр никогда не мутируется.
type VectorClock struct {
	Deps      map[string]int64 `json:"causal_dependencies,omitempty"` // Deps максимальный наблюдавшийся counter по каждому чужому узлу
	NodeID    string           `json:"node_id"`                       // NodeID стабильный идентификатор реплики-владельца
	MergeOp   string           `json:"merge_operation,omitempty"`     // MergeOp политика, породившая привязанное значение (для аудита)
	Counter   int64            `json:"counter"`                       // Counter монотонно неубывающий счетчик локальных мутаций
	Timestamp int64            `json:"timestamp"`                     // Timestamp unix-nano последнего обновления, только для tie-break
}

// Clone создает глубокую копию часов.
func (c VectorClock) Clone() VectorClock {
	out := c
	out.Deps = CloneDeps(c.Deps)
	return out
}

// CloneDeps копирует карту каузальных зависимостей.
// Для nil входа возвращает nil, чтобы пустые часы оставались пустыми.
func CloneDeps(deps map[string]int64) map[string]int64 {
	if deps == nil {
		return nil
	}
	out := make(map[string]int64, len(deps))
	for node, counter := range deps {
		out[node] = counter
	}
	return out
}
