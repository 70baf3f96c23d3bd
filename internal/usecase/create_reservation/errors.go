package create_reservation

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = availability.ErrInvalidInput

	// ErrInvalidRange возвращается, если начало бронирования не раньше конца
	ErrInvalidRange = availability.ErrInvalidRange

	// ErrSlotNotAvailable возвращается, когда на часть интервала мест не осталось
	ErrSlotNotAvailable = errors.New("create_reservation: slot is not available")

	// ErrUpstreamUnavailable возвращается, когда хранилище или блокировки не ответили
	ErrUpstreamUnavailable = errors.New("create_reservation: store unavailable")
)
