package get_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

const (
	msgMissingParams    = "параметры start и end обязательны"
	msgInvalidTimestamp = "некорректный формат времени, ожидается RFC3339"
	msgInvalidRange     = "некорректный диапазон: start должен быть раньше end и не превышать допустимую длину"
	msgInvalidInput     = "некорректные параметры запроса"
	msgUnavailable      = "хранилище временно недоступно"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?start=&end=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := queryFromURL(r.URL.Query())
	if errs := handlers.Validate(&query); len(errs) > 0 {
		h.logger.Warn("GET /availability - Missing parameters: %v", errs)
		handlers.RespondValidationErrors(w, msgMissingParams, errs)
		return
	}

	useCaseReq, err := query.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("GET /availability - Failed to parse timestamps: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTimestamp)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrInvalidRange):
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /availability - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailability.ErrUpstreamUnavailable):
			h.logger.Error("GET /availability - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("GET /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /availability - Computed %d ranges", len(result.Ranges))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
