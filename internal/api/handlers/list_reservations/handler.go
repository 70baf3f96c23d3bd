package list_reservations

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/service/reservations"
)

const (
	msgInvalidParams = "параметры start и end обязательны и должны быть в RFC3339"
	msgInvalidRange  = "некорректное окно: start должен быть раньше end и не превышать допустимую длину"
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/reservations?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := queryFromURL(r.URL.Query())
	if errs := handlers.Validate(&query); len(errs) > 0 {
		h.logger.Warn("GET /reservations - Invalid parameters: %v", errs)
		handlers.RespondValidationErrors(w, msgInvalidParams, errs)
		return
	}

	start, err := handlers.ParseTimestamp(query.Start)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	end, err := handlers.ParseTimestamp(query.End)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	list, err := h.service.ListInRange(r.Context(), start, end)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrInvalidRange):
			h.logger.Warn("GET /reservations - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /reservations - Failed to list reservations: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /reservations - Listed %d reservations", len(list.Reservations))
	handlers.RespondJSON(w, http.StatusOK, list)
}
