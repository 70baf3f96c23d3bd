package reschedule_reservation

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.Start.IsZero() || req.End.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.Start.Before(req.End) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}

	duration := req.End.Sub(req.Start)
	if duration < domain.MinDurationMinutes*time.Minute || duration > domain.MaxDurationMinutes*time.Minute {
		return fmt.Errorf("%w: duration must be between %d and %d minutes",
			ErrInvalidInput, domain.MinDurationMinutes, domain.MaxDurationMinutes)
	}

	if req.Contact != nil && len(*req.Contact) > domain.MaxContactLength {
		return fmt.Errorf("%w: contact is longer than %d bytes", ErrInvalidInput, domain.MaxContactLength)
	}

	return nil
}

// isValidID ID бронирований - UUID, все остальное заведомо не найдется
func isValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
