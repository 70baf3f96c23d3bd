package replace_templates

// Template шаблон вместимости во входных и выходных данных
// DayOfWeek: 0 = воскресенье ... 6 = суббота
type Template struct {
	ID        int64
	DayOfWeek int
	Start     string // HH:MM
	End       string // HH:MM, допускается 24:00
	Capacity  int
}

// Request модель запроса на замену набора шаблонов
type Request struct {
	Templates []Template
}

// Response модель ответа с сохраненным набором
type Response struct {
	Templates []Template
}
