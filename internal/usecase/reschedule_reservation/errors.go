package reschedule_reservation

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
)

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = availability.ErrInvalidInput

	// ErrInvalidRange возвращается, если новое начало не раньше нового конца
	ErrInvalidRange = availability.ErrInvalidRange

	// ErrReservationNotFound возвращается, если бронирование не найдено
	ErrReservationNotFound = errors.New("reschedule_reservation: reservation not found")

	// ErrSlotNotAvailable возвращается, когда на новом интервале мест не осталось
	ErrSlotNotAvailable = errors.New("reschedule_reservation: slot is not available")

	// ErrUpstreamUnavailable возвращается, когда хранилище или блокировки не ответили
	ErrUpstreamUnavailable = errors.New("reschedule_reservation: store unavailable")
)
