package storage

import "errors"

// Общие ошибки клиентского хранилища
var (
	// ErrTaskNotFound задача не найдена в локальном хранилище
	ErrTaskNotFound = errors.New("task not found")

	// ErrMetadataNotFound запрошенные метаданные реплики отсутствуют
	ErrMetadataNotFound = errors.New("replica metadata not found")

	// ErrStorageClosed хранилище закрыто
	ErrStorageClosed = errors.New("storage is closed")
)
