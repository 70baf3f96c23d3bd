package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Discretize нарезает свободные отрезки на слоты длительностью duration с шагом step.
//
// Начало отрезка прижимается к from (нулевой from означает "без нижней границы").
// Отрезки короче duration пропускаются. Слоты одного отрезка начинаются в
// start, start+step, ... и целиком помещаются в отрезок: count = 1 + (end-duration-start)/step.
// Слоты соседних отрезков не склеиваются, поэтому ни один слот не пересекает занятое время.
func Discretize(spans []domain.AvailableSpan, duration, step time.Duration, from time.Time) []domain.OfferSlot {
	slots := make([]domain.OfferSlot, 0)
	if duration <= 0 || step <= 0 {
		return slots
	}

	for i := range spans {
		start, end := spans[i].Start, spans[i].End
		if !from.IsZero() && start.Before(from) {
			start = from.In(start.Location())
		}
		if !start.Before(end) {
			continue
		}

		length := end.Sub(start)
		if length < duration {
			continue
		}

		count := 1 + int((length-duration)/step)
		for k := 0; k < count; k++ {
			slotStart := start.Add(time.Duration(k) * step)
			slots = append(slots, domain.OfferSlot{
				Start: slotStart,
				End:   slotStart.Add(duration),
			})
		}
	}

	return slots
}

// FloorToStep округляет t вниз до сетки step, отсчитываемой от полуночи дня t
func FloorToStep(t time.Time, step time.Duration) time.Time {
	if step <= 0 {
		return t
	}
	midnight := startOfDay(t)
	elapsed := t.Sub(midnight)
	return midnight.Add(elapsed / step * step)
}
