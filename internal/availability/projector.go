package availability

import (
	"iter"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// Project разворачивает еженедельные шаблоны в конкретные окна вместимости.
// Перебираются все календарные дни от полуночи дня from до полуночи дня, содержащего to
// (или следующего, если to не ровно полночь), включительно. Время суток from и to на выбор
// дней не влияет: окна за пределами [from, to) тоже выдаются, их отсекает набор границ.
//
// Последовательность ленивая, конечная и может перебираться повторно.
// Часовой пояс берется из from.
func Project(from, to time.Time, templates []domain.CapacityTemplate) iter.Seq[domain.CapacityWindow] {
	return func(yield func(domain.CapacityWindow) bool) {
		first := startOfDay(from)
		last := ceilDay(to.In(from.Location()))

		for day := first; !day.After(last); day = nextDay(day) {
			weekday := day.Weekday()
			for i := range templates {
				tmpl := &templates[i]
				if tmpl.DayOfWeek != weekday {
					continue
				}
				window := domain.CapacityWindow{
					Start:    atTimeOfDay(day, tmpl.Start),
					End:      atTimeOfDay(day, tmpl.End),
					Capacity: tmpl.Capacity,
				}
				if !yield(window) {
					return
				}
			}
		}
	}
}

// startOfDay полночь календарного дня t в его часовом поясе
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// ceilDay t, если это полночь, иначе полночь следующего дня
func ceilDay(t time.Time) time.Time {
	day := startOfDay(t)
	if day.Equal(t) {
		return day
	}
	return nextDay(day)
}

// nextDay полночь следующего календарного дня (корректно при переходе на летнее время)
func nextDay(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d+1, 0, 0, 0, 0, day.Location())
}

// atTimeOfDay момент на стенных часах дня day; 24:00 нормализуется в полночь следующего дня
func atTimeOfDay(day time.Time, ts types.TimeString) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, 0, ts.Minutes(), 0, 0, day.Location())
}
