package reservations

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations/models"
)

// Service сервис для чтения и удаления бронирований
// Создание и перенос проверяют доступность и живут в usecase
type Service struct {
	reservationRepo ReservationRepository
	loc             *time.Location
	maxRange        time.Duration
	logger          Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(reservationRepo ReservationRepository, loc *time.Location, maxRangeDays int, logger Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		reservationRepo: reservationRepo,
		loc:             loc,
		maxRange:        time.Duration(maxRangeDays) * 24 * time.Hour,
		logger:          logger,
	}
}

// GetByID получает бронирование по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ReservationResponse, error) {
	s.logger.Info("GetByID: fetching reservation id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("GetByID: malformed id=%s", id)
		return nil, ErrReservationNotFound
	}

	reservation, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("GetByID: reservation id=%s not found", id)
			return nil, ErrReservationNotFound
		}
		s.logger.Error("GetByID: repository error for reservation id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetByID: successfully fetched reservation id=%s", id)
	return models.FromDomainReservation(reservation, s.loc), nil
}

// ListInRange возвращает бронирования, касающиеся окна [start, end]
func (s *Service) ListInRange(ctx context.Context, start, end time.Time) (*models.ReservationListResponse, error) {
	s.logger.Info("ListInRange: fetching reservations for [%s, %s)",
		start.Format(time.RFC3339), end.Format(time.RFC3339))

	if start.IsZero() || end.IsZero() || !start.Before(end) {
		s.logger.Warn("ListInRange: invalid window")
		return nil, fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}
	if s.maxRange > 0 && end.Sub(start) > s.maxRange {
		s.logger.Warn("ListInRange: window is longer than %s", s.maxRange)
		return nil, fmt.Errorf("%w: window is longer than %s", ErrInvalidRange, s.maxRange)
	}

	reservations, err := s.reservationRepo.ListOverlapping(ctx, start, end, "")
	if err != nil {
		s.logger.Error("ListInRange: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListInRange - repository error: %v", ErrInternal, err)
	}

	response := &models.ReservationListResponse{
		Start:        start.In(s.loc),
		End:          end.In(s.loc),
		Reservations: make([]models.ReservationResponse, 0, len(reservations)),
	}
	for i := range reservations {
		response.Reservations = append(response.Reservations, *models.FromDomainReservation(&reservations[i], s.loc))
	}

	s.logger.Info("ListInRange: found %d reservations", len(reservations))
	return response, nil
}

// Delete удаляет бронирование, освобождая место
func (s *Service) Delete(ctx context.Context, id string) error {
	s.logger.Info("Delete: removing reservation id=%s", id)

	if _, err := uuid.Parse(id); err != nil {
		s.logger.Warn("Delete: malformed id=%s", id)
		return ErrReservationNotFound
	}

	if err := s.reservationRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, reservationRepo.ErrReservationNotFound) {
			s.logger.Warn("Delete: reservation id=%s not found", id)
			return ErrReservationNotFound
		}
		s.logger.Error("Delete: repository error for reservation id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully removed reservation id=%s", id)
	return nil
}
