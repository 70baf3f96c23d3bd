package domain

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/pkg/types"
)

// CapacityTemplate represents a recurring weekly capacity window
// DayOfWeek follows time.Weekday (0 = Sunday), the same numbering as PostgreSQL DOW
type CapacityTemplate struct {
	ID        int64
	DayOfWeek time.Weekday
	Start     types.TimeString
	End       types.TimeString
	Capacity  int
}

// IsValidDay reports whether DayOfWeek is within 0..6
func (t *CapacityTemplate) IsValidDay() bool {
	return t.DayOfWeek >= time.Sunday && t.DayOfWeek <= time.Saturday
}

// Covers reports whether the template's time-of-day window applies to a range whose start and
// end are given as offsets from midnight of the range's start day.
// Same edge rule as reservations: start-inclusive on the range start, end-inclusive on its end.
func (t *CapacityTemplate) Covers(startOffset, endOffset time.Duration) bool {
	from, to := t.Start.Offset(), t.End.Offset()
	coversStart := from <= startOffset && to > startOffset
	coversEnd := from < endOffset && to >= endOffset
	return coversStart || coversEnd
}

// Overlaps reports whether two templates share a weekday and a non-empty stretch of time.
// Touching windows (09:00-12:00 and 12:00-15:00) do not overlap.
func (t *CapacityTemplate) Overlaps(other *CapacityTemplate) bool {
	if t.DayOfWeek != other.DayOfWeek {
		return false
	}
	return t.Start.IsBefore(other.End) && other.Start.IsBefore(t.End)
}

// CapacityWindow is a template projected onto a concrete calendar day
type CapacityWindow struct {
	Start    time.Time
	End      time.Time
	Capacity int
}
