package template

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

func setupRepository(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func templateRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "day_of_week", "start_time", "end_time", "capacity"})
}

func TestRepository_List(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectQuery(`SELECT id, day_of_week, start_time, end_time, capacity FROM capacity_templates ORDER BY id ASC`).
		WillReturnRows(templateRows().
			AddRow(1, 1, "09:00:00", "12:00:00", 2).
			AddRow(2, 6, "22:00:00", "24:00:00", 1))

	got, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)

	assert.Equal(t, time.Monday, got[0].DayOfWeek)
	assert.Equal(t, "09:00", got[0].Start.String())
	assert.Equal(t, 2, got[0].Capacity)
	assert.Equal(t, time.Saturday, got[1].DayOfWeek)
	assert.Equal(t, types.MinutesPerDay, got[1].End.Minutes())
}

func TestRepository_List_QueryError(t *testing.T) {
	repo, mock := setupRepository(t)
	dbErr := errors.New("relation does not exist")

	mock.ExpectQuery(`FROM capacity_templates`).WillReturnError(dbErr)

	_, err := repo.List(context.Background())
	assert.ErrorIs(t, err, ErrExecQuery)
	assert.ErrorIs(t, err, dbErr)
}

func TestRepository_Replace(t *testing.T) {
	repo, mock := setupRepository(t)
	templates := []domain.CapacityTemplate{
		{DayOfWeek: time.Monday, Start: types.MustTimeString("09:00"), End: types.MustTimeString("12:00"), Capacity: 1},
		{DayOfWeek: time.Tuesday, Start: types.MustTimeString("10:00"), End: types.MustTimeString("24:00"), Capacity: 3},
	}

	mock.ExpectQuery(`WITH inserted AS \(INSERT INTO capacity_templates \(day_of_week,start_time,end_time,capacity\) VALUES \(\$1,\$2,\$3,\$4\),\(\$5,\$6,\$7,\$8\) RETURNING .*\), removed AS \(DELETE FROM capacity_templates WHERE id NOT IN \(SELECT id FROM inserted\)\) SELECT .* FROM inserted ORDER BY id ASC`).
		WithArgs(1, "09:00:00", "12:00:00", 1, 2, "10:00:00", "24:00:00", 3).
		WillReturnRows(templateRows().
			AddRow(10, 1, "09:00:00", "12:00:00", 1).
			AddRow(11, 2, "10:00:00", "24:00:00", 3))

	got, err := repo.Replace(context.Background(), templates)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, int64(11), got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Replace_Empty(t *testing.T) {
	repo, mock := setupRepository(t)

	mock.ExpectExec(`DELETE FROM capacity_templates`).
		WillReturnResult(sqlmock.NewResult(0, 4))

	got, err := repo.Replace(context.Background(), nil)
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
