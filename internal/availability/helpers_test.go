package availability

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// 13 октября 2025 года - понедельник
var monday = time.Date(2025, 10, 13, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return monday.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func tmpl(day time.Weekday, start, end string, capacity int) domain.CapacityTemplate {
	return domain.CapacityTemplate{
		DayOfWeek: day,
		Start:     types.MustTimeString(start),
		End:       types.MustTimeString(end),
		Capacity:  capacity,
	}
}

func res(id string, start, end time.Time) domain.Reservation {
	return domain.Reservation{ID: id, Start: start, End: end}
}

func clock(t time.Time) string {
	return t.Format("Mon 15:04")
}

func slotStarts(slots []domain.OfferSlot) []string {
	out := make([]string, 0, len(slots))
	for _, s := range slots {
		out = append(out, clock(s.Start))
	}
	return out
}

type rangeView struct {
	Span      string
	Allowed   int
	Reserved  int
	Available int
}

func viewRanges(ranges []domain.ElementaryRange) []rangeView {
	out := make([]rangeView, 0, len(ranges))
	for _, r := range ranges {
		out = append(out, rangeView{
			Span:      clock(r.Start) + "-" + clock(r.End),
			Allowed:   r.Allowed,
			Reserved:  r.Reserved,
			Available: r.Available,
		})
	}
	return out
}
