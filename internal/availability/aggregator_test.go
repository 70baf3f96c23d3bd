package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestAggregate_ReservationEdges(t *testing.T) {
	templates := []domain.CapacityTemplate{tmpl(time.Monday, "08:00", "13:00", 5)}
	boundaries := []time.Time{at(10, 0), at(11, 0)}

	tests := []struct {
		name    string
		r       domain.Reservation
		counted bool
	}{
		{name: "covers range start", r: res("r", at(9, 0), at(11, 0)), counted: true},
		{name: "ends exactly at range end", r: res("r", at(10, 30), at(11, 0)), counted: true},
		{name: "same as range", r: res("r", at(10, 0), at(11, 0)), counted: true},
		{name: "covers whole range", r: res("r", at(9, 0), at(12, 0)), counted: true},
		{name: "starts exactly at range end", r: res("r", at(11, 0), at(12, 0)), counted: false},
		{name: "ends exactly at range start", r: res("r", at(9, 0), at(10, 0)), counted: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranges := Aggregate(boundaries, []domain.Reservation{tt.r}, templates)
			assert.Len(t, ranges, 1)

			want := 0
			if tt.counted {
				want = 1
			}
			assert.Equal(t, want, ranges[0].Reserved)
		})
	}
}

func TestAggregate_TemplateEdges(t *testing.T) {
	templates := []domain.CapacityTemplate{
		tmpl(time.Monday, "09:00", "12:00", 1),
		tmpl(time.Monday, "12:00", "15:00", 2),
	}
	boundaries := []time.Time{at(8, 0), at(9, 0), at(12, 0), at(15, 0), at(16, 0)}

	ranges := Aggregate(boundaries, nil, templates)

	assert.Equal(t, []rangeView{
		{Span: "Mon 08:00-Mon 09:00", Allowed: 0, Available: 0},
		{Span: "Mon 09:00-Mon 12:00", Allowed: 1, Available: 1},
		{Span: "Mon 12:00-Mon 15:00", Allowed: 2, Available: 2},
		{Span: "Mon 15:00-Mon 16:00", Allowed: 0, Available: 0},
	}, viewRanges(ranges))
}

func TestAggregate_LastMatchingTemplateWins(t *testing.T) {
	templates := []domain.CapacityTemplate{
		tmpl(time.Monday, "09:00", "12:00", 1),
		tmpl(time.Monday, "09:00", "12:00", 3),
		tmpl(time.Tuesday, "09:00", "12:00", 7),
	}

	ranges := Aggregate([]time.Time{at(9, 0), at(12, 0)}, nil, templates)

	assert.Len(t, ranges, 1)
	assert.Equal(t, 3, ranges[0].Allowed)
}

func TestAggregate_Overbooked(t *testing.T) {
	templates := []domain.CapacityTemplate{tmpl(time.Monday, "09:00", "12:00", 1)}
	reservations := []domain.Reservation{
		res("r1", at(9, 0), at(12, 0)),
		res("r2", at(9, 0), at(12, 0)),
		res("r3", at(9, 0), at(12, 0)),
	}

	ranges := Aggregate([]time.Time{at(9, 0), at(12, 0)}, reservations, templates)

	assert.Len(t, ranges, 1)
	assert.Equal(t, 3, ranges[0].Reserved)
	assert.Equal(t, 0, ranges[0].Available)
	assert.True(t, ranges[0].IsOverbooked())
}

func TestAggregate_TooFewBoundaries(t *testing.T) {
	assert.Empty(t, Aggregate(nil, nil, nil))
	assert.Empty(t, Aggregate([]time.Time{at(9, 0)}, nil, nil))
}
