package get_offer_slots

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

// Metrics метрики предложенных слотов
type Metrics interface {
	ObserveOfferSlots(count int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
