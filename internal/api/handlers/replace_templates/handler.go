package replace_templates

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	replaceTemplates "github.com/m04kA/SMC-ReservationService/internal/usecase/replace_templates"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные поля шаблонов"
	msgInvalidTemplate    = "некорректный шаблон: время в формате HH:MM, начало раньше конца"
	msgConflict           = "окна одного дня недели пересекаются"
	msgUnavailable        = "хранилище временно недоступно"
)

type Handler struct {
	useCase ReplaceTemplatesUseCase
	logger  Logger
}

func NewHandler(useCase ReplaceTemplatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PUT /api/v1/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ReplaceTemplatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /templates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if errs := handlers.Validate(&req); len(errs) > 0 {
		h.logger.Warn("PUT /templates - Validation failed: %v", errs)
		handlers.RespondValidationErrors(w, msgValidationFailed, errs)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, replaceTemplates.ErrConfigurationConflict):
			h.logger.Warn("PUT /templates - Conflicting templates: %v", err)
			handlers.RespondError(w, http.StatusConflict, msgConflict+": "+err.Error())

		case errors.Is(err, replaceTemplates.ErrInvalidInput):
			h.logger.Warn("PUT /templates - Invalid template: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTemplate)

		case errors.Is(err, replaceTemplates.ErrUpstreamUnavailable):
			h.logger.Error("PUT /templates - Store unavailable: %v", err)
			handlers.RespondServiceUnavailable(w, msgUnavailable)

		default:
			h.logger.Error("PUT /templates - Failed to replace templates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /templates - Saved %d templates", len(result.Templates))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
