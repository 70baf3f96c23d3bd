package get_offer_slots

import "time"

// Request модель запроса слотов
type Request struct {
	RangeStart time.Time     // Начало диапазона
	RangeEnd   time.Time     // Конец диапазона
	Duration   time.Duration // Длительность слота
	From       *time.Time    // Нижняя граница начала слотов (по умолчанию - текущее время, округленное вниз до шага)
	Step       time.Duration // Шаг сетки (0 - шаг из конфигурации)
}

// Response модель ответа со слотами
type Response struct {
	Duration time.Duration
	Step     time.Duration
	From     time.Time
	Slots    []Slot // Все слоты по порядку
	Days     []Day  // Те же слоты, сгруппированные по дням магазина
}

// Slot слот, который можно забронировать
type Slot struct {
	Start time.Time
	End   time.Time
}

// Day слоты одного календарного дня
type Day struct {
	Date  time.Time
	Slots []Slot
}
