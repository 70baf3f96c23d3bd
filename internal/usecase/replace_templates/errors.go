package replace_templates

import (
	"errors"

	"github.com/m04kA/SMC-ReservationService/internal/availability"
)

var (
	// ErrInvalidInput возвращается при некорректном шаблоне
	ErrInvalidInput = availability.ErrInvalidInput

	// ErrConfigurationConflict возвращается, если окна одного дня недели пересекаются
	ErrConfigurationConflict = availability.ErrConfigurationConflict

	// ErrUpstreamUnavailable возвращается, когда хранилище не ответило
	ErrUpstreamUnavailable = errors.New("replace_templates: store unavailable")
)
