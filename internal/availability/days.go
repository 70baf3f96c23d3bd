package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// GroupByDay раскладывает слоты по календарным дням начала в поясе loc, сохраняя порядок
func GroupByDay(slots []domain.OfferSlot, loc *time.Location) []domain.DaySlots {
	days := make([]domain.DaySlots, 0)
	for _, slot := range slots {
		date := startOfDay(slot.Start.In(loc))
		if n := len(days); n > 0 && days[n-1].Date.Equal(date) {
			days[n-1].Slots = append(days[n-1].Slots, slot)
			continue
		}
		days = append(days, domain.DaySlots{Date: date, Slots: []domain.OfferSlot{slot}})
	}
	return days
}

// TouchedDays полуночи всех календарных дней в поясе loc, которые задевает [start, end)
func TouchedDays(start, end time.Time, loc *time.Location) []time.Time {
	if !start.Before(end) {
		return nil
	}
	first := startOfDay(start.In(loc))
	last := startOfDay(end.Add(-time.Nanosecond).In(loc))

	days := make([]time.Time, 0, 1)
	for d := first; !d.After(last); d = nextDay(d) {
		days = append(days, d)
	}
	return days
}

// Covers проверяет, что диапазоны без разрывов покрывают [start, end) и в каждом есть место
func Covers(ranges []domain.ElementaryRange, start, end time.Time) bool {
	if !start.Before(end) {
		return false
	}
	cursor := start
	for i := range ranges {
		r := &ranges[i]
		if !r.End.After(cursor) {
			continue
		}
		if r.Start.After(cursor) || !r.HasRoom() {
			return false
		}
		cursor = r.End
		if !cursor.Before(end) {
			return true
		}
	}
	return false
}
