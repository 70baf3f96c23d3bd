package domain

import "time"

// Reservation represents one committed booking consuming one unit of capacity
type Reservation struct {
	ID      string
	Start   time.Time
	End     time.Time
	Contact string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Duration returns the length of the reservation
func (r *Reservation) Duration() time.Duration {
	return r.End.Sub(r.Start)
}

// IsValid reports whether the reservation interval is non-empty
func (r *Reservation) IsValid() bool {
	return r.Start.Before(r.End)
}

// CountsAgainst reports whether the reservation consumes capacity of the range [start, end).
// A reservation covering the range start (start-inclusive) or its end (end-inclusive) counts:
// one ending exactly at end is counted, one starting exactly at end is not.
func (r *Reservation) CountsAgainst(start, end time.Time) bool {
	coversStart := !r.Start.After(start) && r.End.After(start)
	coversEnd := r.Start.Before(end) && !r.End.Before(end)
	return coversStart || coversEnd
}

// ReservationLockKey returns the lock key serializing bookings on a local calendar day
func ReservationLockKey(day time.Time) string {
	return ReservationLockPrefix + day.Format(DateFormat)
}
