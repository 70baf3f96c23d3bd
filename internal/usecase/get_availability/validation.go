package get_availability

import (
	"fmt"
	"time"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request, maxRange time.Duration) error {
	if req.RangeStart.IsZero() || req.RangeEnd.IsZero() {
		return fmt.Errorf("%w: start and end are required", ErrInvalidInput)
	}

	if !req.RangeStart.Before(req.RangeEnd) {
		return fmt.Errorf("%w: start must be before end", ErrInvalidRange)
	}

	// Ограничиваем окно, чтобы не разворачивать шаблоны на годы вперед
	if maxRange > 0 && req.RangeEnd.Sub(req.RangeStart) > maxRange {
		return fmt.Errorf("%w: range is longer than %s", ErrInvalidRange, maxRange)
	}

	return nil
}
