package templates

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/service/templates/models"
)

// Service сервис для чтения расписания вместимости
type Service struct {
	templateRepo TemplateRepository
	loc          *time.Location
	logger       Logger
}

// NewService создает новый экземпляр сервиса шаблонов
func NewService(templateRepo TemplateRepository, loc *time.Location, logger Logger) *Service {
	if loc == nil {
		loc = time.UTC
	}
	return &Service{
		templateRepo: templateRepo,
		loc:          loc,
		logger:       logger,
	}
}

// List возвращает текущий набор шаблонов и пояс, в котором они действуют
func (s *Service) List(ctx context.Context) (*models.TemplateListResponse, error) {
	s.logger.Info("List: fetching capacity templates")

	templates, err := s.templateRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	response := &models.TemplateListResponse{
		Timezone:  s.loc.String(),
		Templates: make([]models.TemplateResponse, 0, len(templates)),
	}
	for i := range templates {
		response.Templates = append(response.Templates, models.FromDomainTemplate(&templates[i]))
	}

	s.logger.Info("List: found %d templates", len(templates))
	return response, nil
}
