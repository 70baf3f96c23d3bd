package reschedule_reservation

import "time"

// Request модель запроса на перенос бронирования
type Request struct {
	ID      string
	Start   time.Time // Новое начало интервала
	End     time.Time // Новый конец интервала
	Contact *string   // Новый контакт (nil - оставить прежний)
}

// Response модель ответа с перенесенным бронированием
type Response struct {
	ID        string
	Start     time.Time
	End       time.Time
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
