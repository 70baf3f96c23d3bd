package availability

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Snapshot согласованный срез данных, по которому считается доступность
type Snapshot struct {
	Reservations []domain.Reservation
	Templates    []domain.CapacityTemplate
}

// SlotQuery параметры нарезки слотов
type SlotQuery struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Duration   time.Duration
	// Step шаг сетки слотов; 0 означает domain.DefaultSlotStep
	Step time.Duration
	// From нижняя граница начала слотов; нулевое значение означает "без ограничения"
	From time.Time
}

// Engine считает доступность в часовом поясе магазина.
// Не хранит состояния между вызовами и безопасен для конкурентного использования.
type Engine struct {
	loc *time.Location
}

// NewEngine создает движок для заданного пояса; nil означает UTC
func NewEngine(loc *time.Location) *Engine {
	if loc == nil {
		loc = time.UTC
	}
	return &Engine{loc: loc}
}

// Location часовой пояс магазина
func (e *Engine) Location() *time.Location {
	return e.loc
}

// ComputeAvailability возвращает элементарные диапазоны на [rangeStart, rangeEnd]
func (e *Engine) ComputeAvailability(rangeStart, rangeEnd time.Time, snap Snapshot) ([]domain.ElementaryRange, error) {
	if err := validateRange(rangeStart, rangeEnd); err != nil {
		return nil, err
	}
	if err := validateSnapshot(snap); err != nil {
		return nil, err
	}

	from, to := rangeStart.In(e.loc), rangeEnd.In(e.loc)

	windows := Project(from, to, snap.Templates)
	boundaries := Boundaries(from, to, snap.Reservations, windows)

	return Aggregate(boundaries, snap.Reservations, snap.Templates), nil
}

// ComputeOfferSlots возвращает слоты длительностью q.Duration, которые можно забронировать.
// При некорректной длительности возвращает пустой (не nil) список и ErrInvalidDuration.
func (e *Engine) ComputeOfferSlots(q SlotQuery, snap Snapshot) ([]domain.OfferSlot, error) {
	if err := validateRange(q.RangeStart, q.RangeEnd); err != nil {
		return nil, err
	}
	if !q.From.IsZero() {
		if err := validateTimestamp(q.From, "from"); err != nil {
			return nil, err
		}
	}

	step := q.Step
	if step == 0 {
		step = domain.DefaultSlotStep
	}
	if step < domain.MinSlotStep || step > domain.MaxSlotStep {
		return nil, fmt.Errorf("%w: step must be between %s and %s, got %s",
			ErrInvalidInput, domain.MinSlotStep, domain.MaxSlotStep, q.Step)
	}

	if q.Duration <= 0 || q.Duration > q.RangeEnd.Sub(q.RangeStart) {
		return []domain.OfferSlot{}, fmt.Errorf("%w: %s for range of %s", ErrInvalidDuration, q.Duration, q.RangeEnd.Sub(q.RangeStart))
	}

	ranges, err := e.ComputeAvailability(q.RangeStart, q.RangeEnd, snap)
	if err != nil {
		return nil, err
	}

	var from time.Time
	if !q.From.IsZero() {
		from = q.From.In(e.loc)
	}

	return Discretize(Merge(ranges), q.Duration, step, from), nil
}

func validateRange(start, end time.Time) error {
	if err := validateTimestamp(start, "range start"); err != nil {
		return err
	}
	if err := validateTimestamp(end, "range end"); err != nil {
		return err
	}
	if !start.Before(end) {
		return fmt.Errorf("%w: start %s is not before end %s", ErrInvalidRange, start.Format(time.RFC3339), end.Format(time.RFC3339))
	}
	return nil
}

var epoch = time.Unix(0, 0)

func validateTimestamp(t time.Time, name string) error {
	if t.IsZero() {
		return fmt.Errorf("%w: %s is required", ErrInvalidInput, name)
	}
	if t.Before(epoch) {
		return fmt.Errorf("%w: %s is negative", ErrInvalidInput, name)
	}
	return nil
}

func validateSnapshot(snap Snapshot) error {
	for i := range snap.Reservations {
		r := &snap.Reservations[i]
		if r.Start.IsZero() || r.End.IsZero() || !r.IsValid() {
			return fmt.Errorf("%w: reservation %q has an empty interval", ErrInvalidInput, r.ID)
		}
	}
	for i := range snap.Templates {
		if err := validateTemplate(&snap.Templates[i]); err != nil {
			return err
		}
	}
	return nil
}
