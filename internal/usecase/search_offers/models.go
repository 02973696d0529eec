package search_offers

// Request модель запроса поиска предложений. Все фильтры опциональны и
// комбинируются через AND.
type Request struct {
	City          *string // Город отеля (точное совпадение)
	MinStars      *int    // Минимальная звёздность отеля
	MaxPrice      *int64  // Потолок лучшей цены, минорные единицы
	Meal          *string // Тип питания тарифа
	Refundable    *bool   // Только (не)возвратные тарифы
	LookaheadDays int     // Окно поиска в днях; 0 — значение по умолчанию
	Limit         int     // Максимум предложений в выдаче; 0 — без ограничения
}

// OfferItem предложение в выдаче
type OfferItem struct {
	HotelID      int64
	HotelName    string
	HotelStars   int
	HotelCity    string
	RoomTypeID   int64
	RoomTypeName string
	RateID       int64
	RateTitle    string
	Meal         string
	Refundable   bool
	BestPrice    int64 // минимальная цена в окне, минорные единицы
}

// Response модель ответа со списком предложений
type Response struct {
	Offers []OfferItem
}
