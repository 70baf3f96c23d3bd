package get_availability

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
)

// UseCase use case для расчета элементарных диапазонов доступности
type UseCase struct {
	reservationRepo ReservationRepository
	templateRepo    TemplateRepository
	engine          *availability.Engine
	maxRange        time.Duration
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
// maxRangeDays ограничивает длину запрашиваемого окна (0 - без ограничения)
func NewUseCase(
	reservationRepo ReservationRepository,
	templateRepo TemplateRepository,
	engine *availability.Engine,
	maxRangeDays int,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		templateRepo:    templateRepo,
		engine:          engine,
		maxRange:        time.Duration(maxRangeDays) * 24 * time.Hour,
		logger:          logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: range=[%s, %s)",
		req.RangeStart.Format(time.RFC3339), req.RangeEnd.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxRange); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем шаблоны вместимости
	templates, err := uc.templateRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list templates: %v", err)
		return nil, fmt.Errorf("%w: failed to list templates: %w", ErrUpstreamUnavailable, err)
	}

	// 3. Получаем бронирования, касающиеся диапазона
	reservations, err := uc.reservationRepo.ListOverlapping(ctx, req.RangeStart, req.RangeEnd, "")
	if err != nil {
		uc.logger.Error("GetAvailability: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %w", ErrUpstreamUnavailable, err)
	}

	// 4. Считаем элементарные диапазоны
	ranges, err := uc.engine.ComputeAvailability(req.RangeStart, req.RangeEnd, availability.Snapshot{
		Reservations: reservations,
		Templates:    templates,
	})
	if err != nil {
		uc.logger.Warn("GetAvailability: compute failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailability: %d ranges from %d templates and %d reservations",
		len(ranges), len(templates), len(reservations))

	response := &Response{
		RangeStart: req.RangeStart.In(uc.engine.Location()),
		RangeEnd:   req.RangeEnd.In(uc.engine.Location()),
		Ranges:     make([]Range, 0, len(ranges)),
	}
	for _, r := range ranges {
		response.Ranges = append(response.Ranges, Range{
			Start:     r.Start,
			End:       r.End,
			Allowed:   r.Allowed,
			Reserved:  r.Reserved,
			Available: r.Available,
		})
	}

	return response, nil
}
