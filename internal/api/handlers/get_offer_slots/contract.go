package get_offer_slots

import (
	"context"

	getOfferSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_offer_slots"
)

type GetOfferSlotsUseCase interface {
	Execute(ctx context.Context, req *getOfferSlots.Request) (*getOfferSlots.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
