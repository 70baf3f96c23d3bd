package replace_templates

import (
	"context"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// TemplateRepository интерфейс репозитория шаблонов вместимости
type TemplateRepository interface {
	Replace(ctx context.Context, templates []domain.CapacityTemplate) ([]domain.CapacityTemplate, error)
}

// Metrics метрики замены шаблонов
type Metrics interface {
	RecordTemplateReplace(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
