package domain

import "time"

// ElementaryRange is a sub-interval over which both the reserved count and the applicable
// capacity are constant
type ElementaryRange struct {
	Start     time.Time
	End       time.Time
	Allowed   int
	Reserved  int
	Available int
}

// HasRoom returns true if at least one more reservation fits into the range
func (r *ElementaryRange) HasRoom() bool {
	return r.Available > 0
}

// IsOverbooked returns true if more reservations overlap the range than capacity allows
func (r *ElementaryRange) IsOverbooked() bool {
	return r.Reserved > r.Allowed
}

// AvailableSpan is a maximal merge of adjacent elementary ranges with room left
type AvailableSpan struct {
	Start time.Time
	End   time.Time
}

// Length returns the span length
func (s *AvailableSpan) Length() time.Duration {
	return s.End.Sub(s.Start)
}

// OfferSlot is a fixed-duration candidate booking window presented to a customer
type OfferSlot struct {
	Start time.Time
	End   time.Time
}

// DaySlots groups offer slots starting on the same local calendar day
type DaySlots struct {
	Date  time.Time // midnight of the day in the shop location
	Slots []OfferSlot
}
