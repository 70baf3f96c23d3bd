package availability

import (
	"slices"
	"sort"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

const oneDay = 24 * time.Hour

// Aggregate строит элементарные диапазоны между соседними границами и считает для каждого
// число бронирований, допустимую вместимость и остаток мест.
//
// Бронирование учитывается в [s, e), если покрывает s (начало включительно) или e
// (конец включительно). Шаблон выбирается по дню недели s в поясе границ; если подходит
// несколько шаблонов, побеждает последний в порядке списка. Без шаблона вместимость 0.
func Aggregate(boundaries []time.Time, reservations []domain.Reservation, templates []domain.CapacityTemplate) []domain.ElementaryRange {
	if len(boundaries) < 2 {
		return []domain.ElementaryRange{}
	}

	sorted := slices.Clone(reservations)
	slices.SortStableFunc(sorted, func(a, b domain.Reservation) int { return a.Start.Compare(b.Start) })

	byWeekday := groupByWeekday(templates)

	ranges := make([]domain.ElementaryRange, 0, len(boundaries)-1)
	for i := 0; i+1 < len(boundaries); i++ {
		s, e := boundaries[i], boundaries[i+1]
		if !s.Before(e) {
			continue
		}

		reserved := countReserved(sorted, s, e)
		allowed := allowedCapacity(byWeekday[s.Weekday()], s, e)

		ranges = append(ranges, domain.ElementaryRange{
			Start:     s,
			End:       e,
			Allowed:   allowed,
			Reserved:  reserved,
			Available: max(allowed-reserved, 0),
		})
	}

	return ranges
}

// countReserved считает бронирования, отсортированные по началу, учитываемые в [s, e)
func countReserved(sorted []domain.Reservation, s, e time.Time) int {
	// бронирования с началом >= e в диапазон не попадают
	n := sort.Search(len(sorted), func(i int) bool { return !sorted[i].Start.Before(e) })

	count := 0
	for i := 0; i < n; i++ {
		if sorted[i].CountsAgainst(s, e) {
			count++
		}
	}
	return count
}

// allowedCapacity вместимость последнего шаблона дня, покрывающего [s, e).
// Смещения считаются от полуночи дня s, поэтому конец в полночь следующего дня равен 24:00.
func allowedCapacity(templates []domain.CapacityTemplate, s, e time.Time) int {
	startOffset := timeOfDay(s)
	endOffset := timeOfDay(e) + time.Duration(civilDaysBetween(s, e))*oneDay

	allowed := 0
	for i := range templates {
		if templates[i].Covers(startOffset, endOffset) {
			allowed = templates[i].Capacity
		}
	}
	return allowed
}

func groupByWeekday(templates []domain.CapacityTemplate) map[time.Weekday][]domain.CapacityTemplate {
	grouped := make(map[time.Weekday][]domain.CapacityTemplate, 7)
	for _, t := range templates {
		grouped[t.DayOfWeek] = append(grouped[t.DayOfWeek], t)
	}
	return grouped
}

// timeOfDay показание стенных часов t в виде смещения от полуночи
func timeOfDay(t time.Time) time.Duration {
	h, m, s := t.Clock()
	return time.Duration(h)*time.Hour +
		time.Duration(m)*time.Minute +
		time.Duration(s)*time.Second +
		time.Duration(t.Nanosecond())
}

// civilDaysBetween разница календарных дат a и b (b в поясе a)
func civilDaysBetween(a, b time.Time) int {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	da := time.Date(ay, am, ad, 0, 0, 0, 0, time.UTC)
	db := time.Date(by, bm, bd, 0, 0, 0, 0, time.UTC)
	return int(db.Sub(da) / oneDay)
}
