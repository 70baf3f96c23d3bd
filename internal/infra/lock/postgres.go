package lock

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

const (
	advisoryLockQuery   = "SELECT pg_advisory_lock(hashtext($1))"
	advisoryUnlockQuery = "SELECT pg_advisory_unlock(hashtext($1))"
)

// ConnProvider источник выделенных соединений (*sql.DB, *dbmetrics.DB)
type ConnProvider interface {
	Conn(ctx context.Context) (*sql.Conn, error)
}

// PostgresLocker сериализует критические секции через advisory-блокировки PostgreSQL.
// Блокировки живут в сессии выделенного соединения и снимаются после fn.
// Соединение закреплено за контекстом fn, поэтому транзакция внутри fn идет на нем же
// и критическая секция занимает из пула одно соединение.
type PostgresLocker struct {
	db   ConnProvider
	opts Options
}

// NewPostgresLocker создает блокировщик на advisory-локах
func NewPostgresLocker(db ConnProvider, opts Options) *PostgresLocker {
	return &PostgresLocker{db: db, opts: opts.withDefaults()}
}

// WithLock берет блокировки по всем ключам, выполняет fn и снимает их
func (l *PostgresLocker) WithLock(ctx context.Context, keys []string, fn func(ctx context.Context) error) error {
	keys = normalizeKeys(keys)
	if len(keys) == 0 {
		return fn(ctx)
	}

	conn, err := l.db.Conn(ctx)
	if err != nil {
		return fmt.Errorf("%w: acquire connection: %w", ErrLockBackend, err)
	}
	defer conn.Close()

	lockCtx, cancel := context.WithTimeout(ctx, l.opts.Wait)
	defer cancel()

	// снимаем даже при отмененном контексте запроса, иначе соединение вернется в пул с локами
	releaseCtx := context.WithoutCancel(ctx)

	locked := make([]string, 0, len(keys))
	defer func() {
		for i := len(locked) - 1; i >= 0; i-- {
			_, _ = conn.ExecContext(releaseCtx, advisoryUnlockQuery, locked[i])
		}
	}()

	for _, key := range keys {
		if _, err := conn.ExecContext(lockCtx, advisoryLockQuery, key); err != nil {
			if ctx.Err() == nil && errors.Is(lockCtx.Err(), context.DeadlineExceeded) {
				return fmt.Errorf("%w: %s", ErrLockTimeout, key)
			}
			return fmt.Errorf("%w: lock %s: %w", ErrLockBackend, key, err)
		}
		locked = append(locked, key)
	}

	return fn(dbmetrics.WithConn(ctx, conn))
}
