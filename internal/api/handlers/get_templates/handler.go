package get_templates

import (
	"net/http"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
)

type Handler struct {
	service TemplateService
	logger  Logger
}

func NewHandler(service TemplateService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/templates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	list, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("GET /templates - Failed to list templates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /templates - Listed %d templates", len(list.Templates))
	handlers.RespondJSON(w, http.StatusOK, list)
}
