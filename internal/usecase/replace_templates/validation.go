package replace_templates

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// toDomain разбирает времена шаблонов и проверяет набор целиком
func toDomain(templates []Template) ([]domain.CapacityTemplate, error) {
	result := make([]domain.CapacityTemplate, 0, len(templates))
	for i, t := range templates {
		start, err := types.NewTimeStringFromString(t.Start)
		if err != nil {
			return nil, fmt.Errorf("%w: template %d: start: %v", ErrInvalidInput, i, err)
		}
		end, err := types.NewTimeStringFromString(t.End)
		if err != nil {
			return nil, fmt.Errorf("%w: template %d: end: %v", ErrInvalidInput, i, err)
		}
		result = append(result, domain.CapacityTemplate{
			DayOfWeek: time.Weekday(t.DayOfWeek),
			Start:     start,
			End:       end,
			Capacity:  t.Capacity,
		})
	}

	if err := availability.ValidateTemplates(result); err != nil {
		return nil, err
	}

	return result, nil
}
