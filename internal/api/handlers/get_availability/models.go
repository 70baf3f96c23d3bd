package get_availability

import (
	"net/url"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	getAvailability "github.com/m04kA/SMC-ReservationService/internal/usecase/get_availability"
)

// AvailabilityQuery параметры запроса
type AvailabilityQuery struct {
	Start string `json:"start" validate:"required"`
	End   string `json:"end" validate:"required"`
}

// RangeResponse элементарный диапазон
type RangeResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Allowed   int    `json:"allowed"`
	Reserved  int    `json:"reserved"`
	Available int    `json:"available"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	RangeStart string          `json:"rangeStart"`
	RangeEnd   string          `json:"rangeEnd"`
	Ranges     []RangeResponse `json:"ranges"`
}

func queryFromURL(values url.Values) AvailabilityQuery {
	return AvailabilityQuery{
		Start: values.Get("start"),
		End:   values.Get("end"),
	}
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
func (q *AvailabilityQuery) ToUseCaseRequest() (*getAvailability.Request, error) {
	start, err := handlers.ParseTimestamp(q.Start)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseTimestamp(q.End)
	if err != nil {
		return nil, err
	}
	return &getAvailability.Request{RangeStart: start, RangeEnd: end}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	result := &AvailabilityResponse{
		RangeStart: resp.RangeStart.Format(time.RFC3339),
		RangeEnd:   resp.RangeEnd.Format(time.RFC3339),
		Ranges:     make([]RangeResponse, 0, len(resp.Ranges)),
	}
	for _, r := range resp.Ranges {
		result.Ranges = append(result.Ranges, RangeResponse{
			Start:     r.Start.Format(time.RFC3339),
			End:       r.End.Format(time.RFC3339),
			Allowed:   r.Allowed,
			Reserved:  r.Reserved,
			Available: r.Available,
		})
	}
	return result
}
