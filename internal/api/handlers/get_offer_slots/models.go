package get_offer_slots

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/m04kA/SMC-ReservationService/internal/api/handlers"
	"github.com/m04kA/SMC-ReservationService/internal/domain"
	getOfferSlots "github.com/m04kA/SMC-ReservationService/internal/usecase/get_offer_slots"
)

// reasonInvalidDuration причина пустого ответа при некорректной длительности
const reasonInvalidDuration = "invalid_duration"

// OfferSlotsQuery параметры запроса
type OfferSlotsQuery struct {
	Start    string `json:"start" validate:"required"`
	End      string `json:"end" validate:"required"`
	Duration string `json:"duration" validate:"omitempty,numeric"`
	From     string `json:"from"`
	Step     string `json:"step" validate:"omitempty,numeric"`
}

// SlotResponse слот для бронирования
type SlotResponse struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// DayResponse слоты одного дня магазина
type DayResponse struct {
	Date  string         `json:"date"` // YYYY-MM-DD
	Slots []SlotResponse `json:"slots"`
}

// OfferSlotsResponse HTTP response model
type OfferSlotsResponse struct {
	DurationMinutes int            `json:"durationMinutes"`
	StepMinutes     int            `json:"stepMinutes,omitempty"`
	From            string         `json:"from,omitempty"`
	Slots           []SlotResponse `json:"slots"`
	Days            []DayResponse  `json:"days"`
	Reason          string         `json:"reason,omitempty"`
}

func queryFromURL(values url.Values) OfferSlotsQuery {
	return OfferSlotsQuery{
		Start:    values.Get("start"),
		End:      values.Get("end"),
		Duration: values.Get("duration"),
		From:     values.Get("from"),
		Step:     values.Get("step"),
	}
}

// ToUseCaseRequest конвертирует параметры запроса в модель use case
// duration и step задаются в минутах; без duration берется defaultDuration
func (q *OfferSlotsQuery) ToUseCaseRequest(defaultDuration time.Duration) (*getOfferSlots.Request, error) {
	start, err := handlers.ParseTimestamp(q.Start)
	if err != nil {
		return nil, err
	}
	end, err := handlers.ParseTimestamp(q.End)
	if err != nil {
		return nil, err
	}

	req := &getOfferSlots.Request{
		RangeStart: start,
		RangeEnd:   end,
		Duration:   defaultDuration,
	}

	if q.Duration != "" {
		// неположительная длительность доходит до use case и дает пустой ответ с причиной
		duration, err := parseMinutes(q.Duration, -domain.MaxDurationMinutes, domain.MaxDurationMinutes)
		if err != nil {
			return nil, fmt.Errorf("duration: %w", err)
		}
		req.Duration = duration
	}

	if q.Step != "" {
		step, err := parseMinutes(q.Step, int(domain.MinSlotStep/time.Minute), int(domain.MaxSlotStep/time.Minute))
		if err != nil {
			return nil, fmt.Errorf("step: %w", err)
		}
		req.Step = step
	}

	if q.From != "" {
		from, err := handlers.ParseTimestamp(q.From)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	return req, nil
}

// parseMinutes разбирает число минут и проверяет границы до перевода в time.Duration
func parseMinutes(value string, min, max int) (time.Duration, error) {
	minutes, err := strconv.ParseInt(value, 10, 32)
	if err != nil {
		return 0, err
	}
	if minutes < int64(min) || minutes > int64(max) {
		return 0, fmt.Errorf("%d minutes out of range [%d, %d]", minutes, min, max)
	}
	return time.Duration(minutes) * time.Minute, nil
}

// emptyResponse ответ без слотов с указанием причины
func emptyResponse(duration time.Duration, reason string) *OfferSlotsResponse {
	return &OfferSlotsResponse{
		DurationMinutes: int(duration / time.Minute),
		Slots:           []SlotResponse{},
		Days:            []DayResponse{},
		Reason:          reason,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOfferSlots.Response) *OfferSlotsResponse {
	result := &OfferSlotsResponse{
		DurationMinutes: int(resp.Duration / time.Minute),
		StepMinutes:     int(resp.Step / time.Minute),
		From:            resp.From.Format(time.RFC3339),
		Slots:           toSlots(resp.Slots),
		Days:            make([]DayResponse, 0, len(resp.Days)),
	}
	for _, day := range resp.Days {
		result.Days = append(result.Days, DayResponse{
			Date:  day.Date.Format(domain.DateFormat),
			Slots: toSlots(day.Slots),
		})
	}
	return result
}

func toSlots(slots []getOfferSlots.Slot) []SlotResponse {
	result := make([]SlotResponse, 0, len(slots))
	for _, s := range slots {
		result = append(result, SlotResponse{
			Start: s.Start.Format(time.RFC3339),
			End:   s.End.Format(time.RFC3339),
		})
	}
	return result
}
