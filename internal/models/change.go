package models

// PendingChange представляет одну локальную мутацию, еще не подтвержденную
// удаленным пиром. Seq назначается журналом при append и задает порядок
// воспроизведения; запись удаляется из журнала только по ack с этим Seq.
type PendingChange struct {
	Task   *Task  `json:"task"`    // Task полный снимок задачи на момент мутации (включая часы)
	TaskID string `json:"task_id"` // TaskID идентификатор задачи
	Seq    uint64 `json:"seq"`     // Seq монотонный локальный номер записи в журнале
}
