package list_reservations

import "net/url"

// ListReservationsQuery параметры запроса
type ListReservationsQuery struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	End   string `json:"end" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
}

func queryFromURL(values url.Values) ListReservationsQuery {
	return ListReservationsQuery{
		Start: values.Get("start"),
		End:   values.Get("end"),
	}
}
