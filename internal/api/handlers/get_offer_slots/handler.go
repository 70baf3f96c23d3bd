package get_offer_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getOfferSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_offer_slots"
)

const (
	msgMissingParams = "параметры start и end обязательны"
	msgInvalidParams = "некорректные параметры: время в RFC3339, duration до 1440 минут, step от 1 до 1440 минут"
	msgInvalidRange  = "некорректный диапазон: start должен быть раньше end и не превышать допустимую длину"
	msgInvalidInput  = "некорректные параметры запроса"
	msgUnavailable   = "хранилище временно недоступно"
)

type Handler struct {
	useCase         GetOfferSlotsUseCase
	defaultDuration time.Duration
	logger          Logger
}

func NewHandler(useCase GetOfferSlotsUseCase, defaultDuration time.Duration, logger Logger) *Handler {
	return &Handler{
		useCase:         useCase,
		defaultDuration: defaultDuration,
		logger:          logger,
	}
}

// Handle GET /api/v1/offer-slots?start=&end=[&duration=][&from=][&step=]
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := queryFromURL(r.URL.Query())
	if errs := handlers.Validate(&query); len(errs) > 0 {
		h.logger.Warn("GET /offer-slots - Invalid parameters: %v", errs)
		handlers.RespondValidationErrors(w, msgMissingParams, errs)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest(h.defaultDuration)
	if err != nil {
		h.logger.Warn("GET /offer-slots - Failed to parse parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		// некорректная длительность - это пустой ответ с причиной, а не ошибка
		case errors.Is(err, getOfferSlots.ErrInvalidDuration):
			h.logger.Warn("GET /offer-slots - Invalid duration: %s", useCaseReq.Duration)
			handlers.RespondJSON(w, http.StatusOK, emptyResponse(useCaseReq.Duration, reasonInvalidDuration))

		case errors.Is(err, getOfferSlots.ErrInvalidRange):
			h.logger.Warn("GET /offer-slots - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getOfferSlots.ErrInvalidInput):
			h.logger.Warn("GET /offer-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getOfferSlots.ErrUpstreamUnavailable):
			h.logger.Error("GET /offer-slots - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /offer-slots - Failed to compute slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offer-slots - Returned %d slots over %d days", len(result.Slots), len(result.Days))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
