package api

import "errors"

// Транспортные ошибки sync-эндпоинта. Временные ошибки подлежат ретраю
// по Retry Policy, локальные (BatchTooLarge) не повторяются.
var (
	// ErrNetworkUnavailable сетевое соединение не удалось установить
	ErrNetworkUnavailable = errors.New("network unavailable")

	// ErrTimeout вызов не уложился в таймаут
	ErrTimeout = errors.New("request timed out")

	// ErrServerError сервер ответил 5xx
	ErrServerError = errors.New("server error")

	// ErrBatchTooLarge батч превышает максимальный размер;
	// отклоняется локально до какого-либо сетевого вызова
	ErrBatchTooLarge = errors.New("sync batch too large")
)

// IsTransient сообщает, является ли ошибка временной и подлежит ли ретраю.
func IsTransient(err error) bool {
	return errors.Is(err, ErrNetworkUnavailable) ||
		errors.Is(err, ErrTimeout) ||
		errors.Is(err, ErrServerError)
}
