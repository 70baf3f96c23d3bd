package reschedule_reservation

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	rescheduleReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные поля запроса"
	msgNotFound           = "бронирование не найдено"
	msgInvalidRange       = "начало бронирования должно быть раньше конца"
	msgInvalidInput       = "некорректный интервал бронирования"
	msgSlotNotAvailable   = "на выбранный интервал нет свободных мест"
	msgUnavailable        = "сервис бронирования временно недоступен, повторите попытку"
)

type Handler struct {
	useCase RescheduleReservationUseCase
	loc     *time.Location
	logger  Logger
}

func NewHandler(useCase RescheduleReservationUseCase, loc *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		loc:     loc,
		logger:  logger,
	}
}

// Handle PUT /api/v1/reservations/{reservationId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["reservationId"]

	var req RescheduleReservationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /reservations/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); len(errs) > 0 {
		h.logger.Warn("PUT /reservations/{id} - Validation failed: %v", errs)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PUT /reservations/{id} - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgValidationFailed)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleReservation.ErrReservationNotFound):
			h.logger.Warn("PUT /reservations/{id} - Reservation not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleReservation.ErrSlotNotAvailable):
			h.logger.Warn("PUT /reservations/{id} - Slot not available: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, rescheduleReservation.ErrInvalidRange):
			h.logger.Warn("PUT /reservations/{id} - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, rescheduleReservation.ErrInvalidInput):
			h.logger.Warn("PUT /reservations/{id} - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, rescheduleReservation.ErrUpstreamUnavailable):
			h.logger.Error("PUT /reservations/{id} - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("PUT /reservations/{id} - Failed to reschedule: reservation_id=%s, error=%v", reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /reservations/{id} - Reservation rescheduled successfully: reservation_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result, h.loc))
}
