package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/lock"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const operation = "create"

// UseCase use case для создания бронирования
type UseCase struct {
	reservationRepo ReservationRepository
	templateRepo    TemplateRepository
	txManager       TransactionManager
	locker          Locker
	engine          *availability.Engine
	metrics         Metrics
	timeProvider    TimeProvider
	newID           func() string
	logger          Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	reservationRepo ReservationRepository,
	templateRepo TemplateRepository,
	txManager TransactionManager,
	locker Locker,
	engine *availability.Engine,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		reservationRepo: reservationRepo,
		templateRepo:    templateRepo,
		txManager:       txManager,
		locker:          locker,
		engine:          engine,
		metrics:         metrics,
		timeProvider:    &RealTimeProvider{},
		newID:           uuid.NewString,
		logger:          logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка мест и вставка выполняются под блокировкой дней интервала в сериализуемой транзакции,
// поэтому два конкурентных запроса не могут занять одно и то же место
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: start=%s, end=%s",
		req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		uc.metrics.RecordReservation(operation, "invalid")
		return nil, err
	}

	// 2. Бронировать прошедшее время нельзя
	if err := validateNotInPast(req.Start, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("CreateReservation: %v", err)
		uc.metrics.RecordReservation(operation, "invalid")
		return nil, err
	}

	reservation := &domain.Reservation{
		ID:      uc.newID(),
		Start:   req.Start,
		End:     req.End,
		Contact: req.Contact,
	}

	// 3. Берем блокировки по всем дням интервала и проверяем места в транзакции
	keys := lockKeys(req.Start, req.End, uc.engine.Location())
	err := uc.locker.WithLock(ctx, keys, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 3.1. Получаем шаблоны вместимости
			templates, err := uc.templateRepo.List(txCtx)
			if err != nil {
				uc.logger.Error("CreateReservation: failed to list templates: %v", err)
				return fmt.Errorf("%w: failed to list templates: %w", ErrUpstreamUnavailable, err)
			}

			// 3.2. Получаем бронирования интервала с блокировкой строк
			reservations, err := uc.reservationRepo.ListOverlapping(txCtx, req.Start, req.End, "")
			if err != nil {
				uc.logger.Error("CreateReservation: failed to list reservations: %v", err)
				return fmt.Errorf("%w: failed to list reservations: %w", ErrUpstreamUnavailable, err)
			}

			// 3.3. Пересчитываем доступность и проверяем каждый диапазон интервала
			ranges, err := uc.engine.ComputeAvailability(req.Start, req.End, availability.Snapshot{
				Reservations: reservations,
				Templates:    templates,
			})
			if err != nil {
				return err
			}
			if !availability.Covers(ranges, req.Start, req.End) {
				uc.logger.Warn("CreateReservation: no capacity left, %d reservations overlap", len(reservations))
				return ErrSlotNotAvailable
			}

			// 3.4. Сохраняем бронирование
			if _, err := uc.reservationRepo.Create(txCtx, reservation); err != nil {
				uc.logger.Error("CreateReservation: failed to create reservation: %v", err)
				return fmt.Errorf("%w: failed to create reservation: %w", ErrUpstreamUnavailable, err)
			}

			return nil
		})
	})

	if err != nil {
		err = mapGuardError(err)
		uc.metrics.RecordReservation(operation, resultLabel(err))
		if errors.Is(err, ErrUpstreamUnavailable) {
			uc.logger.Error("CreateReservation: %v", err)
		}
		return nil, err
	}

	uc.metrics.RecordReservation(operation, "ok")
	uc.logger.Info("CreateReservation: successfully created reservation id=%s", reservation.ID)

	return &Response{
		ID:        reservation.ID,
		Start:     reservation.Start,
		End:       reservation.End,
		Contact:   reservation.Contact,
		CreatedAt: reservation.CreatedAt,
		UpdatedAt: reservation.UpdatedAt,
	}, nil
}

// lockKeys ключи блокировок по всем дням магазина, которые задевает интервал
func lockKeys(start, end time.Time, loc *time.Location) []string {
	days := availability.TouchedDays(start, end, loc)
	keys := make([]string, 0, len(days))
	for _, day := range days {
		keys = append(keys, domain.ReservationLockKey(day))
	}
	return keys
}

// mapGuardError приводит ошибки блокировок и транзакций к ошибкам use case
func mapGuardError(err error) error {
	switch {
	case errors.Is(err, txmanager.ErrSerializationFailure):
		// конкурентная транзакция успела занять место
		return fmt.Errorf("%w: concurrent reservation: %w", ErrSlotNotAvailable, err)
	case errors.Is(err, ErrSlotNotAvailable),
		errors.Is(err, ErrUpstreamUnavailable),
		errors.Is(err, ErrInvalidInput),
		errors.Is(err, ErrInvalidRange):
		return err
	case errors.Is(err, lock.ErrLockTimeout):
		return fmt.Errorf("%w: too many concurrent bookings: %w", ErrUpstreamUnavailable, err)
	default:
		return fmt.Errorf("%w: %w", ErrUpstreamUnavailable, err)
	}
}

func resultLabel(err error) string {
	switch {
	case errors.Is(err, ErrSlotNotAvailable):
		return "unavailable"
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRange):
		return "invalid"
	default:
		return "error"
	}
}
