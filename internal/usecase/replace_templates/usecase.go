package replace_templates

import (
	"context"
	"errors"
	"fmt"
)

// UseCase use case для замены недельного расписания вместимости
type UseCase struct {
	templateRepo TemplateRepository
	metrics      Metrics
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(templateRepo TemplateRepository, metrics Metrics, logger Logger) *UseCase {
	return &UseCase{
		templateRepo: templateRepo,
		metrics:      metrics,
		logger:       logger,
	}
}

// Execute выполняет use case замены шаблонов
// Набор заменяется целиком: пустой список удаляет все окна
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ReplaceTemplates: %d templates", len(req.Templates))

	// 1. Валидация и поиск пересечений
	templates, err := toDomain(req.Templates)
	if err != nil {
		uc.logger.Warn("ReplaceTemplates: validation failed: %v", err)
		if errors.Is(err, ErrConfigurationConflict) {
			uc.metrics.RecordTemplateReplace("conflict")
		} else {
			uc.metrics.RecordTemplateReplace("invalid")
		}
		return nil, err
	}

	// 2. Атомарно заменяем набор
	saved, err := uc.templateRepo.Replace(ctx, templates)
	if err != nil {
		uc.logger.Error("ReplaceTemplates: failed to replace templates: %v", err)
		uc.metrics.RecordTemplateReplace("error")
		return nil, fmt.Errorf("%w: failed to replace templates: %w", ErrUpstreamUnavailable, err)
	}

	uc.metrics.RecordTemplateReplace("ok")
	uc.logger.Info("ReplaceTemplates: successfully saved %d templates", len(saved))

	response := &Response{Templates: make([]Template, 0, len(saved))}
	for _, t := range saved {
		response.Templates = append(response.Templates, Template{
			ID:        t.ID,
			DayOfWeek: int(t.DayOfWeek),
			Start:     t.Start.String(),
			End:       t.End.String(),
			Capacity:  t.Capacity,
		})
	}

	return response, nil
}
