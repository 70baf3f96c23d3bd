package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

func TestProject(t *testing.T) {
	templates := []domain.CapacityTemplate{
		tmpl(time.Monday, "09:00", "12:00", 1),
		tmpl(time.Wednesday, "10:00", "24:00", 2),
		tmpl(time.Friday, "09:00", "10:00", 3),
	}

	var got []string
	for w := range Project(at(10, 0), at(48+10, 0), templates) {
		got = append(got, clock(w.Start)+"-"+clock(w.End))
	}

	assert.Equal(t, []string{"Mon 09:00-Mon 12:00", "Wed 10:00-Thu 00:00"}, got)
}

func TestProject_EndAtMidnightIncludesThatDay(t *testing.T) {
	templates := []domain.CapacityTemplate{tmpl(time.Tuesday, "09:00", "10:00", 1)}

	count := 0
	for range Project(at(0, 0), at(24, 0), templates) {
		count++
	}
	assert.Equal(t, 1, count)
}

func TestProject_StopsEarly(t *testing.T) {
	templates := []domain.CapacityTemplate{
		tmpl(time.Monday, "09:00", "10:00", 1),
		tmpl(time.Monday, "11:00", "12:00", 1),
	}

	seq := Project(at(0, 0), at(24*14, 0), templates)

	count := 0
	for range seq {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)

	// последовательность можно перебирать повторно
	total := 0
	for range seq {
		total++
	}
	assert.Equal(t, 6, total)
}
