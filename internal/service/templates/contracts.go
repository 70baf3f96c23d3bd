package templates

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов вместимости
type TemplateRepository interface {
	List(ctx context.Context) ([]domain.CapacityTemplate, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
