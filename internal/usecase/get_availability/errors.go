package get_availability

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = availability.ErrInvalidInput

	// ErrInvalidRange возвращается при пустом, перевернутом или слишком длинном диапазоне
	ErrInvalidRange = availability.ErrInvalidRange

	// ErrUpstreamUnavailable возвращается, когда хранилище не ответило
	ErrUpstreamUnavailable = errors.New("get_availability: store unavailable")
)
