package create_reservation

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	Start   time.Time // Начало интервала
	End     time.Time // Конец интервала
	Contact string    // Контакт клиента (произвольный текст)
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        string
	Start     time.Time
	End       time.Time
	Contact   string
	CreatedAt time.Time
	UpdatedAt time.Time
}
