package models

import (
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/domain"
)

// ReservationResponse бронирование в ответах API
type ReservationResponse struct {
	ID        string    `json:"id"`
	Start     time.Time `json:"start"`
	End       time.Time `json:"end"`
	Contact   string    `json:"contact"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ReservationListResponse список бронирований окна
type ReservationListResponse struct {
	Start        time.Time             `json:"start"`
	End          time.Time             `json:"end"`
	Reservations []ReservationResponse `json:"reservations"`
}

// FromDomainReservation конвертирует domain модель в response, времена в поясе магазина
func FromDomainReservation(r *domain.Reservation, loc *time.Location) *ReservationResponse {
	return &ReservationResponse{
		ID:        r.ID,
		Start:     r.Start.In(loc),
		End:       r.End.In(loc),
		Contact:   r.Contact,
		CreatedAt: r.CreatedAt.In(loc),
		UpdatedAt: r.UpdatedAt.In(loc),
	}
}
