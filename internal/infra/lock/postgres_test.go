package lock

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

func newTestPostgresLocker(t *testing.T, opts Options) (*PostgresLocker, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewPostgresLocker(db, opts), mock
}

func TestPostgresLocker_WithLock(t *testing.T) {
	locker, mock := newTestPostgresLocker(t, Options{Wait: time.Second})

	mock.ExpectExec(advisoryLockQuery).WithArgs("day:a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(advisoryLockQuery).WithArgs("day:b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(advisoryUnlockQuery).WithArgs("day:b").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(advisoryUnlockQuery).WithArgs("day:a").WillReturnResult(sqlmock.NewResult(0, 0))

	called := false
	err := locker.WithLock(context.Background(), []string{"day:b", "day:a"}, func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLocker_Timeout(t *testing.T) {
	locker, mock := newTestPostgresLocker(t, Options{Wait: 20 * time.Millisecond})

	mock.ExpectExec(advisoryLockQuery).WithArgs("day:a").
		WillDelayFor(time.Second).
		WillReturnResult(sqlmock.NewResult(0, 0))

	called := false
	err := locker.WithLock(context.Background(), []string{"day:a"}, func(ctx context.Context) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.False(t, called)
}

func TestPostgresLocker_ReleasesOnCallbackError(t *testing.T) {
	locker, mock := newTestPostgresLocker(t, Options{Wait: time.Second})
	fnErr := errors.New("slot taken")

	mock.ExpectExec(advisoryLockQuery).WithArgs("day:a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(advisoryUnlockQuery).WithArgs("day:a").WillReturnResult(sqlmock.NewResult(0, 0))

	err := locker.WithLock(context.Background(), []string{"day:a"}, func(ctx context.Context) error { return fnErr })

	assert.ErrorIs(t, err, fnErr)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLocker_NoKeys(t *testing.T) {
	locker, mock := newTestPostgresLocker(t, Options{})

	err := locker.WithLock(context.Background(), nil, func(ctx context.Context) error { return nil })

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresLocker_TransactionUsesLockedConnection(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// одно соединение в пуле: вторая попытка взять соединение повисла бы до дедлайна
	db.SetMaxOpenConns(1)
	wrapped := dbmetrics.Wrap(db, nil)
	locker := NewPostgresLocker(wrapped, Options{Wait: time.Second})
	txMgr := txmanager.NewTransactionManager(wrapped)

	const insert = "INSERT INTO reservations (id) VALUES ($1)"
	mock.ExpectExec(advisoryLockQuery).WithArgs("day:a").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectBegin()
	mock.ExpectExec(insert).WithArgs("r1").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectExec(advisoryUnlockQuery).WithArgs("day:a").WillReturnResult(sqlmock.NewResult(0, 0))

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = locker.WithLock(ctx, []string{"day:a"}, func(lockCtx context.Context) error {
		return txMgr.DoSerializable(lockCtx, func(txCtx context.Context) error {
			_, err := dbmetrics.GetExecutor(txCtx, wrapped).ExecContext(txCtx, insert, "r1")
			return err
		})
	})

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
