package models

import "github.com/m04kA/SMC-ReservationService/internal/domain"

// TemplateResponse шаблон вместимости в ответах API
type TemplateResponse struct {
	ID        int64  `json:"id"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = воскресенье
	Start     string `json:"start"`     // HH:MM
	End       string `json:"end"`       // HH:MM, 24:00 - конец суток
	Capacity  int    `json:"capacity"`
}

// TemplateListResponse недельное расписание вместимости
type TemplateListResponse struct {
	Timezone  string             `json:"timezone"`
	Templates []TemplateResponse `json:"templates"`
}

// FromDomainTemplate конвертирует domain модель в response
func FromDomainTemplate(t *domain.CapacityTemplate) TemplateResponse {
	return TemplateResponse{
		ID:        t.ID,
		DayOfWeek: int(t.DayOfWeek),
		Start:     t.Start.String(),
		End:       t.End.String(),
		Capacity:  t.Capacity,
	}
}
