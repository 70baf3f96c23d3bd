package availability

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// Conflict пара шаблонов одного дня недели с пересекающимися окнами
type Conflict struct {
	First  domain.CapacityTemplate
	Second domain.CapacityTemplate
}

func (c Conflict) String() string {
	return fmt.Sprintf("%s %s-%s overlaps %s-%s",
		c.First.DayOfWeek, c.First.Start, c.First.End, c.Second.Start, c.Second.End)
}

// FindConflicts возвращает все пары пересекающихся шаблонов. Касающиеся окна
// (09:00-12:00 и 12:00-15:00) конфликтом не считаются.
func FindConflicts(templates []domain.CapacityTemplate) []Conflict {
	conflicts := make([]Conflict, 0)

	for _, group := range groupByWeekday(templates) {
		slices.SortStableFunc(group, func(a, b domain.CapacityTemplate) int {
			return cmp.Compare(a.Start.Minutes(), b.Start.Minutes())
		})
		for i := range group {
			for j := i + 1; j < len(group); j++ {
				// дальше по порядку начала пересечений с group[i] нет
				if !group[j].Start.IsBefore(group[i].End) {
					break
				}
				conflicts = append(conflicts, Conflict{First: group[i], Second: group[j]})
			}
		}
	}

	slices.SortFunc(conflicts, func(a, b Conflict) int {
		if c := cmp.Compare(a.First.DayOfWeek, b.First.DayOfWeek); c != 0 {
			return c
		}
		if c := cmp.Compare(a.First.Start.Minutes(), b.First.Start.Minutes()); c != 0 {
			return c
		}
		return cmp.Compare(a.Second.Start.Minutes(), b.Second.Start.Minutes())
	})

	return conflicts
}

// ValidateTemplates проверяет набор шаблонов перед сохранением:
// каждый шаблон корректен и шаблоны одного дня не пересекаются
func ValidateTemplates(templates []domain.CapacityTemplate) error {
	if len(templates) > domain.MaxTemplates {
		return fmt.Errorf("%w: too many templates: %d, max %d", ErrInvalidInput, len(templates), domain.MaxTemplates)
	}
	for i := range templates {
		if err := validateTemplate(&templates[i]); err != nil {
			return err
		}
	}
	if conflicts := FindConflicts(templates); len(conflicts) > 0 {
		return fmt.Errorf("%w: %s", ErrConfigurationConflict, conflicts[0])
	}
	return nil
}

func validateTemplate(t *domain.CapacityTemplate) error {
	if !t.IsValidDay() {
		return fmt.Errorf("%w: day of week %d out of range 0..6", ErrInvalidInput, t.DayOfWeek)
	}
	if err := t.Start.Validate(); err != nil {
		return fmt.Errorf("%w: template start: %w", ErrInvalidInput, err)
	}
	if err := t.End.Validate(); err != nil {
		return fmt.Errorf("%w: template end: %w", ErrInvalidInput, err)
	}
	if !t.Start.IsBefore(t.End) {
		return fmt.Errorf("%w: template start %s is not before end %s", ErrInvalidInput, t.Start, t.End)
	}
	if t.Capacity < 0 || t.Capacity > domain.MaxCapacity {
		return fmt.Errorf("%w: capacity %d out of range 0..%d", ErrInvalidInput, t.Capacity, domain.MaxCapacity)
	}
	return nil
}
