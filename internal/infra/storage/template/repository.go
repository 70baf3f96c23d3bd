package template

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ReservationService/pkg/psqlbuilder"
)

const table = "capacity_templates"

var columns = []string{
	"id",
	"day_of_week",
	"start_time",
	"end_time",
	"capacity",
}

// Repository репозиторий еженедельных шаблонов вместимости
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория шаблонов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List возвращает все шаблоны в порядке сохранения (по ID).
// Порядок важен: при пересечении шаблонов побеждает последний.
func (r *Repository) List(ctx context.Context) ([]domain.CapacityTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(columns...).
		From(table).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %w", ErrBuildQuery, err)
	}

	return r.query(ctx, executor, "List", query, args)
}

// Replace атомарно заменяет весь набор шаблонов одним запросом:
// вставляет новые строки и удаляет все, что не было вставлено этим же запросом.
// Возвращает сохраненные шаблоны с присвоенными ID.
func (r *Repository) Replace(ctx context.Context, templates []domain.CapacityTemplate) ([]domain.CapacityTemplate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	if len(templates) == 0 {
		query, args, err := psqlbuilder.Delete(table).ToSql()
		if err != nil {
			return nil, fmt.Errorf("%w: Replace - build delete query: %w", ErrBuildQuery, err)
		}
		if _, err := executor.ExecContext(ctx, query, args...); err != nil {
			return nil, fmt.Errorf("%w: Replace - execute delete: %w", ErrExecQuery, err)
		}
		return []domain.CapacityTemplate{}, nil
	}

	insertBuilder := psqlbuilder.Insert(table).
		Columns("day_of_week", "start_time", "end_time", "capacity")
	for _, t := range templates {
		insertBuilder = insertBuilder.Values(int(t.DayOfWeek), t.Start, t.End, t.Capacity)
	}

	insertQuery, args, err := insertBuilder.
		Suffix("RETURNING id, day_of_week, start_time, end_time, capacity").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Replace - build insert query: %w", ErrBuildQuery, err)
	}

	// DELETE в CTE видит снимок до вставки, поэтому новые строки не затрагивает
	query := fmt.Sprintf(
		"WITH inserted AS (%s), removed AS (DELETE FROM %s WHERE id NOT IN (SELECT id FROM inserted)) "+
			"SELECT id, day_of_week, start_time, end_time, capacity FROM inserted ORDER BY id ASC",
		insertQuery, table,
	)

	return r.query(ctx, executor, "Replace", query, args)
}

func (r *Repository) query(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) ([]domain.CapacityTemplate, error) {
	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: %s - execute query: %w", ErrExecQuery, op, err)
	}
	defer rows.Close()

	templates := make([]domain.CapacityTemplate, 0)
	for rows.Next() {
		var t domain.CapacityTemplate
		var day int

		if err := rows.Scan(&t.ID, &day, &t.Start, &t.End, &t.Capacity); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %w", ErrScanRow, op, err)
		}

		t.DayOfWeek = time.Weekday(day)
		templates = append(templates, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %w", ErrScanRow, op, err)
	}

	return templates, nil
}
