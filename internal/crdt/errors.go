package crdt

import "errors"

// Ошибки валидации часов и слияния. Все ошибки локальны для реплики
// и никогда не передаются по сети.
var (
	// ErrInvalidNodeID идентификатор узла не прошел валидацию формата
	ErrInvalidNodeID = errors.New("invalid node id")

	// ErrInvalidCounter счетчик часов отрицательный
	ErrInvalidCounter = errors.New("invalid counter")

	// ErrInvalidDependencyMap карта каузальных зависимостей некорректна
	ErrInvalidDependencyMap = errors.New("invalid dependency map")

	// ErrExpiredClock часы старше максимально допустимого возраста
	ErrExpiredClock = errors.New("clock expired")

	// ErrEmptyInput merge вызван без входных часов
	ErrEmptyInput = errors.New("no clocks to merge")

	// ErrCorruptClock слияние запрошено с уже невалидными часами
	ErrCorruptClock = errors.New("corrupt clock")
)
