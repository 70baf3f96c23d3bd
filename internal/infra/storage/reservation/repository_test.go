package reservation

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
)

const reservationID = "0b7e6a2c-52f4-4c1e-9d55-2f3f4b8a9e01"

func setupRepository(t *testing.T) (*Repository, *sql.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), db, mock
}

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "start_at", "end_at", "contact", "created_at", "updated_at"})
}

func TestRepository_Create(t *testing.T) {
	repo, _, mock := setupRepository(t)
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`INSERT INTO reservations \(id,start_at,end_at,contact\) VALUES \(\$1,\$2,\$3,\$4\) RETURNING created_at, updated_at`).
		WithArgs(reservationID, start, start.Add(time.Hour), "alice@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	created, err := repo.Create(context.Background(), &domain.Reservation{
		ID:      reservationID,
		Start:   start,
		End:     start.Add(time.Hour),
		Contact: "alice@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, now, created.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_ExecError(t *testing.T) {
	repo, _, mock := setupRepository(t)
	dbErr := errors.New("connection reset")

	mock.ExpectQuery(`INSERT INTO reservations`).WillReturnError(dbErr)

	_, err := repo.Create(context.Background(), &domain.Reservation{ID: reservationID})
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, dbErr)
}

func TestRepository_GetByID(t *testing.T) {
	repo, _, mock := setupRepository(t)
	start := time.Date(2025, 10, 13, 10, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`SELECT id, start_at, end_at, contact, created_at, updated_at FROM reservations WHERE id = \$1`).
		WithArgs(reservationID).
		WillReturnRows(reservationRows().AddRow(reservationID, start, start.Add(time.Hour), "bob", start, start))

	got, err := repo.GetByID(context.Background(), reservationID)
	require.NoError(t, err)
	assert.Equal(t, reservationID, got.ID)
	assert.Equal(t, time.Hour, got.Duration())
	assert.Equal(t, "bob", got.Contact)
}

func TestRepository_GetByID_NotFound(t *testing.T) {
	repo, _, mock := setupRepository(t)

	mock.ExpectQuery(`FROM reservations WHERE id = \$1`).
		WithArgs(reservationID).
		WillReturnRows(reservationRows())

	_, err := repo.GetByID(context.Background(), reservationID)
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_ListOverlapping(t *testing.T) {
	repo, _, mock := setupRepository(t)
	from := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)
	to := time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM reservations WHERE start_at <= \$1 AND end_at >= \$2 ORDER BY start_at ASC, id ASC$`).
		WithArgs(to, from).
		WillReturnRows(reservationRows().
			AddRow("a", from, from.Add(time.Hour), "", from, from).
			AddRow("b", from.Add(time.Hour), to, "", from, from))

	got, err := repo.ListOverlapping(context.Background(), from, to, "")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "a", got[0].ID)
	assert.Equal(t, "b", got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_ListOverlapping_InTransactionExcludingOne(t *testing.T) {
	repo, db, mock := setupRepository(t)
	from := time.Date(2025, 10, 13, 9, 0, 0, 0, time.UTC)
	to := time.Date(2025, 10, 13, 12, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(`WHERE start_at <= \$1 AND end_at >= \$2 AND id <> \$3 ORDER BY start_at ASC, id ASC FOR UPDATE`).
		WithArgs(to, from, reservationID).
		WillReturnRows(reservationRows())
	mock.ExpectCommit()

	tx, err := dbmetrics.Wrap(db, nil).BeginTx(context.Background(), nil)
	require.NoError(t, err)
	ctx := dbmetrics.WithTx(context.Background(), tx)

	got, err := repo.ListOverlapping(ctx, from, to, reservationID)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	require.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, _, mock := setupRepository(t)
	start := time.Date(2025, 10, 14, 15, 0, 0, 0, time.UTC)
	now := time.Now()

	mock.ExpectQuery(`UPDATE reservations SET start_at = \$1, end_at = \$2, contact = \$3, updated_at = NOW\(\) WHERE id = \$4 RETURNING created_at, updated_at`).
		WithArgs(start, start.Add(30*time.Minute), "carol", reservationID).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	got, err := repo.Update(context.Background(), &domain.Reservation{
		ID:      reservationID,
		Start:   start,
		End:     start.Add(30 * time.Minute),
		Contact: "carol",
	})
	require.NoError(t, err)
	assert.Equal(t, now, got.UpdatedAt)
}

func TestRepository_Update_NotFound(t *testing.T) {
	repo, _, mock := setupRepository(t)

	mock.ExpectQuery(`UPDATE reservations`).
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}))

	_, err := repo.Update(context.Background(), &domain.Reservation{ID: reservationID})
	assert.ErrorIs(t, err, ErrReservationNotFound)
}

func TestRepository_Delete(t *testing.T) {
	tests := []struct {
		name     string
		affected int64
		wantErr  error
	}{
		{name: "deleted", affected: 1},
		{name: "missing", affected: 0, wantErr: ErrReservationNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := setupRepository(t)

			mock.ExpectExec(`DELETE FROM reservations WHERE id = \$1`).
				WithArgs(reservationID).
				WillReturnResult(sqlmock.NewResult(0, tt.affected))

			err := repo.Delete(context.Background(), reservationID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}
