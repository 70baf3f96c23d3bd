package create_reservation

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	createReservation "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
)

// CreateReservationRequest HTTP request model
type CreateReservationRequest struct {
	Start   string `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	End     string `json:"end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	Contact string `json:"contact" validate:"max=1024"`
}

// ReservationResponse HTTP response model
type ReservationResponse struct {
	ID        string `json:"id"`
	Start     string `json:"start"`
	End       string `json:"end"`
	Contact   string `json:"contact"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateReservationRequest) ToUseCaseRequest() (*createReservation.Request, error) {
	start, err := handlers.ParseTimestamp(r.Start)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseTimestamp(r.End)
	if err != nil {
		return nil, err
	}
	return &createReservation.Request{Start: start, End: end, Contact: r.Contact}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createReservation.Response, loc *time.Location) *ReservationResponse {
	return &ReservationResponse{
		ID:        resp.ID,
		Start:     resp.Start.In(loc).Format(time.RFC3339),
		End:       resp.End.In(loc).Format(time.RFC3339),
		Contact:   resp.Contact,
		CreatedAt: resp.CreatedAt.In(loc).Format(time.RFC3339),
		UpdatedAt: resp.UpdatedAt.In(loc).Format(time.RFC3339),
	}
}
