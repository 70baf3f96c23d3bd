package lock

import "errors"

var (
	// ErrLockTimeout возвращается, если блокировку не удалось взять за отведенное время
	ErrLockTimeout = errors.New("lock: timed out waiting for lock")

	// ErrLockBackend возвращается при ошибке хранилища блокировок
	ErrLockBackend = errors.New("lock: backend failure")
)
