package get_availability

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationRepository интерфейс репозитория бронирований
type ReservationRepository interface {
	ListOverlapping(ctx context.Context, start, end time.Time, excludeID string) ([]domain.Reservation, error)
}

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
