package get_offer_slots

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// UseCase use case для нарезки слотов заданной длительности
type UseCase struct {
	reservationRepo ReservationRepository
	templateRepo    TemplateRepository
	engine          *availability.Engine
	defaultStep     time.Duration
	maxRange        time.Duration
	metrics         Metrics
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	templateRepo TemplateRepository,
	engine *availability.Engine,
	defaultStep time.Duration,
	maxRangeDays int,
	metrics Metrics,
	logger Logger,
) *UseCase {
	if defaultStep <= 0 {
		defaultStep = domain.DefaultSlotStep
	}
	return &UseCase{
		reservationRepo: reservationRepo,
		templateRepo:    templateRepo,
		engine:          engine,
		defaultStep:     defaultStep,
		maxRange:        time.Duration(maxRangeDays) * 24 * time.Hour,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute выполняет use case получения слотов
// При некорректной длительности возвращает ErrInvalidDuration: это "неверный запрос", а не "мест нет"
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetOfferSlots: range=[%s, %s), duration=%s, step=%s",
		req.RangeStart.Format(time.RFC3339), req.RangeEnd.Format(time.RFC3339), req.Duration, req.Step)

	// 1. Валидация входных данных
	if err := validateRequest(req, uc.maxRange); err != nil {
		uc.logger.Warn("GetOfferSlots: validation failed: %v", err)
		return nil, err
	}

	step := req.Step
	if step == 0 {
		step = uc.defaultStep
	}

	// 2. Нижняя граница: явная или текущее время, округленное вниз до шага
	var from time.Time
	if req.From != nil {
		from = *req.From
	} else {
		from = availability.FloorToStep(uc.timeProvider.Now().In(uc.engine.Location()), step)
	}

	// 3. Получаем шаблоны вместимости
	templates, err := uc.templateRepo.List(ctx)
	if err != nil {
		uc.logger.Error("GetOfferSlots: failed to list templates: %v", err)
		return nil, fmt.Errorf("%w: failed to list templates: %w", ErrUpstreamUnavailable, err)
	}

	// 4. Получаем бронирования, касающиеся диапазона
	reservations, err := uc.reservationRepo.ListOverlapping(ctx, req.RangeStart, req.RangeEnd, "")
	if err != nil {
		uc.logger.Error("GetOfferSlots: failed to list reservations: %v", err)
		return nil, fmt.Errorf("%w: failed to list reservations: %w", ErrUpstreamUnavailable, err)
	}

	// 5. Считаем слоты
	slots, err := uc.engine.ComputeOfferSlots(availability.SlotQuery{
		RangeStart: req.RangeStart,
		RangeEnd:   req.RangeEnd,
		Duration:   req.Duration,
		Step:       step,
		From:       from,
	}, availability.Snapshot{
		Reservations: reservations,
		Templates:    templates,
	})
	if err != nil {
		uc.logger.Warn("GetOfferSlots: compute failed: %v", err)
		return nil, err
	}

	uc.metrics.ObserveOfferSlots(len(slots))
	uc.logger.Info("GetOfferSlots: %d slots from %d templates and %d reservations",
		len(slots), len(templates), len(reservations))

	// 6. Группируем по дням магазина
	response := &Response{
		Duration: req.Duration,
		Step:     step,
		From:     from.In(uc.engine.Location()),
		Slots:    toSlots(slots),
		Days:     make([]Day, 0),
	}
	for _, day := range availability.GroupByDay(slots, uc.engine.Location()) {
		response.Days = append(response.Days, Day{Date: day.Date, Slots: toSlots(day.Slots)})
	}

	return response, nil
}

func toSlots(slots []domain.OfferSlot) []Slot {
	result := make([]Slot, 0, len(slots))
	for _, s := range slots {
		result = append(result, Slot{Start: s.Start, End: s.End})
	}
	return result
}
