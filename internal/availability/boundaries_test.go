package availability

import (
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestBoundaries(t *testing.T) {
	reservations := []domain.Reservation{
		res("before", at(7, 0), at(9, 30)),
		res("inside", at(10, 0), at(11, 0)),
		res("duplicate", at(10, 0), at(11, 0)),
		res("after", at(11, 30), at(14, 0)),
	}
	windows := slices.Values([]domain.CapacityWindow{
		{Start: at(9, 0), End: at(12, 0), Capacity: 1},
	})

	got := Boundaries(at(8, 0), at(13, 0), reservations, windows)

	var clocks []string
	for _, b := range got {
		clocks = append(clocks, clock(b))
	}
	assert.Equal(t, []string{
		"Mon 08:00", "Mon 09:00", "Mon 09:30", "Mon 10:00",
		"Mon 11:00", "Mon 11:30", "Mon 12:00", "Mon 13:00",
	}, clocks)
}

func TestBoundaries_ConvertsToRangeLocation(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	from, to := at(6, 0).In(msk), at(9, 0).In(msk)

	got := Boundaries(from, to, []domain.Reservation{res("r1", at(7, 0), at(8, 0))}, slices.Values([]domain.CapacityWindow{}))

	for _, b := range got {
		assert.Equal(t, msk, b.Location())
	}
	assert.Len(t, got, 2)
}
