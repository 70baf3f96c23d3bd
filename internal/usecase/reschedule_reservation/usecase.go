package reschedule_reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/internal/infra/lock"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
)

const operation = "reschedule"

// UseCase use case для переноса бронирования на другой интервал
type UseCase struct {
	reservationRepo ReservationRepository
	templateRepo    TemplateRepository
	txManager       TransactionManager
	locker          Locker
	engine          *availability.Engine
	metrics         Metrics
	timeProvider    TimeProvider
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
		logger:          logger,
	}
}

// Execute выполняет use case переноса бронирования
// Собственное бронирование не учитывается при проверке нового интервала
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("RescheduleReservation: id=%s, start=%s, end=%s",
		req.ID, req.Start.Format(time.RFC3339), req.End.Format(time.RFC3339))

	// 1. Некорректный ID не может существовать
	if !isValidID(req.ID) {
		uc.logger.Warn("RescheduleReservation: malformed id=%s", req.ID)
		uc.metrics.RecordReservation(operation, "not_found")
		return nil, ErrReservationNotFound
	}

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RescheduleReservation: validation failed: %v", err)
		uc.metrics.RecordReservation(operation, "invalid")
		return nil, err
	}

	if req.Start.Before(uc.timeProvider.Now()) {
		uc.logger.Warn("RescheduleReservation: new interval starts in the past")
		uc.metrics.RecordReservation(operation, "invalid")
		return nil, fmt.Errorf("%w: reservation starts in the past", ErrInvalidInput)
	}

	var updated *domain.Reservation

	// 3. Блокируем дни нового интервала: освобождение старого мест не отнимает
	keys := lockKeys(req.Start, req.End, uc.engine.Location())
	err := uc.locker.WithLock(ctx, keys, func(lockCtx context.Context) error {
		return uc.txManager.DoSerializable(lockCtx, func(txCtx context.Context) error {
			// 3.1. Получаем текущее бронирование
			current, err := uc.reservationRepo.GetByID(txCtx, req.ID)
			if err != nil {
				if errors.Is(err, reservationRepo.ErrReservationNotFound) {
					return ErrReservationNotFound
				}
				uc.logger.Error("RescheduleReservation: failed to get reservation: %v", err)
				return fmt.Errorf("%w: failed to get reservation: %w", ErrUpstreamUnavailable, err)
			}

			// 3.2. Шаблоны и остальные бронирования нового интервала
			templates, err := uc.templateRepo.List(txCtx)
			if err != nil {
				uc.logger.Error("RescheduleReservation: failed to list templates: %v", err)
				return fmt.Errorf("%w: failed to list templates: %w", ErrUpstreamUnavailable, err)
			}

			reservations, err := uc.reservationRepo.ListOverlapping(txCtx, req.Start, req.End, req.ID)
			if err != nil {
				uc.logger.Error("RescheduleReservation: failed to list reservations: %v", err)
				return fmt.Errorf("%w: failed to list reservations: %w", ErrUpstreamUnavailable, err)
			}

			// 3.3. Проверяем места на новом интервале
			ranges, err := uc.engine.ComputeAvailability(req.Start, req.End, availability.Snapshot{
				Reservations: reservations,
				Templates:    templates,
			})
			if err != nil {
				return err
			}
			if !availability.Covers(ranges, req.Start, req.End) {
				uc.logger.Warn("RescheduleReservation: no capacity left, %d reservations overlap", len(reservations))
				return ErrSlotNotAvailable
			}

			// 3.4. Сохраняем новый интервал
			current.Start = req.Start
			current.End = req.End
			if req.Contact != nil {
				current.Contact = *req.Contact
			}

			updated, err = uc.reservationRepo.Update(txCtx, current)
			if err != nil {
				if errors.Is(err, reservationRepo.ErrReservationNotFound) {
					return ErrReservationNotFound
				}
				uc.logger.Error("RescheduleReservation: failed to update reservation: %v", err)
				return fmt.Errorf("%w: failed to update reservation: %w", ErrUpstreamUnavailable, err)
			}

			return nil
		})
	})

	if err != nil {
		err = mapGuardError(err)
		uc.metrics.RecordReservation(operation, resultLabel(err))
		if errors.Is(err, ErrUpstreamUnavailable) {
			uc.logger.Error("RescheduleReservation: %v", err)
		}
		return nil, err
	}

	uc.metrics.RecordReservation(operation, "ok")
	uc.logger.Info("RescheduleReservation: successfully rescheduled reservation id=%s", updated.ID)

	return &Response{
		ID:        updated.ID,
		Start:     updated.Start,
		End:       updated.End,
		Contact:   updated.Contact,
		CreatedAt: updated.CreatedAt,
		UpdatedAt: updated.UpdatedAt,
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
		return fmt.Errorf("%w: concurrent reservation: %w", ErrSlotNotAvailable, err)
	case errors.Is(err, ErrSlotNotAvailable),
		errors.Is(err, ErrReservationNotFound),
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
	case errors.Is(err, ErrReservationNotFound):
		return "not_found"
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrInvalidRange):
		return "invalid"
	default:
		return "error"
	}
}
