package create_reservation

import (
	"fmt"
	"time"

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

	if len(req.Contact) > domain.MaxContactLength {
		return fmt.Errorf("%w: contact is longer than %d bytes", ErrInvalidInput, domain.MaxContactLength)
	}

	return nil
}

// validateNotInPast проверяет, что бронирование не начинается в прошлом
func validateNotInPast(start, now time.Time) error {
	if start.Before(now) {
		return fmt.Errorf("%w: reservation starts in the past", ErrInvalidInput)
	}
	return nil
}
