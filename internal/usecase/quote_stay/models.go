package quote_stay

// Request модель запроса котировки проживания
type Request struct {
	RateID   int64  // ID тарифа
	CheckIn  string // Дата заезда "YYYY-MM-DD"
	CheckOut string // Дата выезда "YYYY-MM-DD"
}

// Response модель ответа с котировкой. При OK=false Total частичен и не
// пригоден для оплаты; Problems перечисляют все причины отказа разом.
type Response struct {
	RateID   int64
	CheckIn  string
	CheckOut string
	Nights   int
	Total    int64
	Currency string
	OK       bool
	Problems []string
}
