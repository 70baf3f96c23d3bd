package replace_templates

import (
	replaceTemplates "github.com/m04kA/SMC-ReservationService/internal/usecase/replace_templates"
)

// TemplateRequest шаблон во входных данных
type TemplateRequest struct {
	DayOfWeek *int   `json:"dayOfWeek" validate:"required,gte=0,lte=6"`
	Start     string `json:"start" validate:"required"`
	End       string `json:"end" validate:"required"`
	Capacity  *int   `json:"capacity" validate:"required,gte=0"`
}

// ReplaceTemplatesRequest HTTP request model, набор заменяется целиком
type ReplaceTemplatesRequest struct {
	Templates []TemplateRequest `json:"templates" validate:"required,dive"`
}

// TemplateResponse сохраненный шаблон
type TemplateResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Capacity  int    `json:"capacity"`
}

// ReplaceTemplatesResponse HTTP response model
type ReplaceTemplatesResponse struct {
	Templates []TemplateResponse `json:"templates"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ReplaceTemplatesRequest) ToUseCaseRequest() *replaceTemplates.Request {
	req := &replaceTemplates.Request{Templates: make([]replaceTemplates.Template, 0, len(r.Templates))}
	for _, t := range r.Templates {
		req.Templates = append(req.Templates, replaceTemplates.Template{
			DayOfWeek: *t.DayOfWeek,
			Start:     t.Start,
			End:       t.End,
			Capacity:  *t.Capacity,
		})
	}
	return req
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *replaceTemplates.Response) *ReplaceTemplatesResponse {
	result := &ReplaceTemplatesResponse{Templates: make([]TemplateResponse, 0, len(resp.Templates))}
	for _, t := range resp.Templates {
		result.Templates = append(result.Templates, TemplateResponse{
			ID:        t.ID,
			DayOfWeek: t.DayOfWeek,
			Start:     t.Start,
			End:       t.End,
			Capacity:  t.Capacity,
		})
	}
	return result
}
