package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// Runner применяет встроенные в бинарник миграции схемы
type Runner struct {
	m      *migrate.Migrate
	logger Logger
}

// NewRunner создает runner поверх открытого соединения с PostgreSQL
func NewRunner(db *sql.DB, logger Logger) (*Runner, error) {
	source, err := iofs.New(files, "sql")
	if err != nil {
		return nil, fmt.Errorf("migrations: failed to open embedded source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return nil, fmt.Errorf("migrations: failed to create postgres driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return nil, fmt.Errorf("migrations: failed to create migrate instance: %w", err)
	}

	return &Runner{m: m, logger: logger}, nil
}

// Up применяет все новые миграции
func (r *Runner) Up() error {
	if err := r.m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			r.logger.Info("Migrations: schema is up to date")
			return nil
		}
		return fmt.Errorf("migrations: up failed: %w", err)
	}
	r.logger.Info("Migrations: applied all pending migrations")
	return nil
}

// Down откатывает steps последних миграций
func (r *Runner) Down(steps int) error {
	if steps <= 0 {
		return fmt.Errorf("migrations: steps must be positive, got %d", steps)
	}
	if err := r.m.Steps(-steps); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			return nil
		}
		return fmt.Errorf("migrations: down failed: %w", err)
	}
	r.logger.Info("Migrations: rolled back %d migrations", steps)
	return nil
}

// Version текущая версия схемы; dirty - последняя миграция упала посередине
func (r *Runner) Version() (uint, bool, error) {
	version, dirty, err := r.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("migrations: failed to read version: %w", err)
	}
	return version, dirty, nil
}

// Close освобождает source; соединение с БД закрывает вызывающий
func (r *Runner) Close() error {
	srcErr, _ := r.m.Close()
	return srcErr
}
