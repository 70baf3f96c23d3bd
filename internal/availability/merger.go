package availability

import (
	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Merge склеивает соседние элементарные диапазоны со свободными местами в максимальные отрезки.
// Диапазоны без мест отбрасываются и обрывают текущий отрезок, склеиваются только
// диапазоны, где начало следующего совпадает с концом текущего отрезка.
// Ожидается, что ranges отсортированы по началу, как их выдает Aggregate.
func Merge(ranges []domain.ElementaryRange) []domain.AvailableSpan {
	spans := make([]domain.AvailableSpan, 0, len(ranges))
	open := false

	for i := range ranges {
		r := &ranges[i]
		if !r.HasRoom() {
			open = false
			continue
		}

		if open && spans[len(spans)-1].End.Equal(r.Start) {
			spans[len(spans)-1].End = r.End
			continue
		}

		spans = append(spans, domain.AvailableSpan{Start: r.Start, End: r.End})
		open = true
	}

	return spans
}
