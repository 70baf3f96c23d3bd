package availability

import "errors"

var (
	// ErrInvalidRange возвращается, когда начало диапазона не раньше его конца
	ErrInvalidRange = errors.New("availability: invalid range")

	// ErrInvalidDuration возвращается при длительности <= 0 или длиннее диапазона.
	// Вместе с ней возвращается пустой список слотов, чтобы отличать её от "мест нет"
	ErrInvalidDuration = errors.New("availability: invalid duration")

	// ErrInvalidInput возвращается при некорректных или отрицательных отметках времени,
	// а также при некорректных бронированиях и шаблонах во входных данных
	ErrInvalidInput = errors.New("availability: invalid input")

	// ErrConfigurationConflict возвращается, когда шаблоны одного дня недели пересекаются
	ErrConfigurationConflict = errors.New("availability: overlapping capacity templates")
)
