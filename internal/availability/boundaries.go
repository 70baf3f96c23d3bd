package availability

import (
	"iter"
	"slices"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Boundaries собирает все моменты, в которые может измениться занятость или вместимость:
// начала и концы бронирований и окон вместимости, прижатые к [from, to].
// Результат отсортирован по возрастанию и без повторов, время приведено к поясу from.
//
// Между соседними границами набор пересекающихся бронирований и применимое окно постоянны.
func Boundaries(from, to time.Time, reservations []domain.Reservation, windows iter.Seq[domain.CapacityWindow]) []time.Time {
	loc := from.Location()
	points := make([]time.Time, 0, 2*len(reservations)+8)

	add := func(t time.Time) {
		points = append(points, clamp(t.In(loc), from, to))
	}

	for i := range reservations {
		add(reservations[i].Start)
		add(reservations[i].End)
	}
	for w := range windows {
		add(w.Start)
		add(w.End)
	}

	slices.SortFunc(points, func(a, b time.Time) int { return a.Compare(b) })
	return slices.CompactFunc(points, func(a, b time.Time) bool { return a.Equal(b) })
}

func clamp(t, from, to time.Time) time.Time {
	if t.Before(from) {
		return from
	}
	if t.After(to) {
		return to
	}
	return t
}
