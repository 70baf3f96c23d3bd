package get_availability

import "time"

// Request модель запроса доступности
type Request struct {
	RangeStart time.Time // Начало диапазона (включительно)
	RangeEnd   time.Time // Конец диапазона
}

// Response модель ответа с элементарными диапазонами
type Response struct {
	RangeStart time.Time
	RangeEnd   time.Time
	Ranges     []Range
}

// Range элементарный диапазон с постоянной занятостью и вместимостью
type Range struct {
	Start     time.Time
	End       time.Time
	Allowed   int // Вместимость по шаблону
	Reserved  int // Сколько бронирований пересекает диапазон
	Available int // Сколько мест осталось (не меньше 0)
}
