package sync

// RoundState состояние машины sync-раунда.
// Idle -> Collecting -> Sending -> AwaitingResponse -> Merging -> Committing -> Idle,
// с переходом в Failed и обратно в Idle при невосстановимой ошибке.
type RoundState int

const (
	// StateIdle раунд не выполняется
	StateIdle RoundState = iota
	// StateCollecting читается pending-журнал и снимается снимок часов
	StateCollecting
	// StateSending батч отправляется через Circuit Breaker и Retry Policy
	StateSending
	// StateAwaitingResponse ожидается ответ удаленного пира
	StateAwaitingResponse
	// StateMerging изменения сервера проходят через Merge Engine
	StateMerging
	// StateCommitting слитое состояние и ack фиксируются атомарно
	StateCommitting
	// StateFailed раунд завершился ошибкой без частичного коммита
	StateFailed
)

// String возвращает строковое представление состояния раунда.
func (s RoundState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateCollecting:
		return "collecting"
	case StateSending:
		return "sending"
	case StateAwaitingResponse:
		return "awaiting_response"
	case StateMerging:
		return "merging"
	case StateCommitting:
		return "committing"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}
