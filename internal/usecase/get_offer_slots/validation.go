package get_offer_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxRange time.Duration) error {
	if req.RangeStart.IsZero() || req.RangeEnd.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.RangeStart.Before(req.RangeEnd) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}

	if maxRange > 0 && req.RangeEnd.Sub(req.RangeStart) > maxRange {
		return fmt.Errorf("%w: range is longer than %s", ErrInvalidRange, maxRange)
	}

	// Проверяем до обращения к хранилищу: такой запрос не может дать ни одного слота
	if req.Duration <= 0 || req.Duration > req.RangeEnd.Sub(req.RangeStart) ||
		req.Duration > domain.MaxDurationMinutes*time.Minute {
		return fmt.Errorf("%w: %s", ErrInvalidDuration, req.Duration)
	}

	// 0 - шаг по умолчанию
	if req.Step != 0 && (req.Step < domain.MinSlotStep || req.Step > domain.MaxSlotStep) {
		return fmt.Errorf("%w: step must be between %s and %s", ErrInvalidInput, domain.MinSlotStep, domain.MaxSlotStep)
	}

	if req.From != nil && req.From.IsZero() {
		return fmt.Errorf("%w: from is empty", ErrInvalidInput)
	}

	return nil
}
