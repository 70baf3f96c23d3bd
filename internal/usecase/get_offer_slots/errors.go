package get_offer_slots

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = availability.ErrInvalidInput

	// ErrInvalidRange возвращается при пустом, перевернутом или слишком длинном диапазоне
	ErrInvalidRange = availability.ErrInvalidRange

	// ErrInvalidDuration возвращается, если длительность <= 0 или длиннее диапазона
	ErrInvalidDuration = availability.ErrInvalidDuration

	// ErrUpstreamUnavailable возвращается, когда хранилище не ответило
	ErrUpstreamUnavailable = errors.New("get_offer_slots: store unavailable")
)
