package models

// Response модели

// RatePlanCard тариф в карточке отеля.
// PriceFrom — минимальная цена за ночь в окне поиска; nil, когда в окне
// нет ни одной цены по тарифу.
type RatePlanCard struct {
	ID               int64  `json:"id"`
	Title            string `json:"title"`
	Meal             string `json:"meal"`
	Refundable       bool   `json:"refundable"`
	CancelBeforeDays int    `json:"cancelBeforeDays"`
	PriceFrom        *int64 `json:"priceFrom,omitempty"`
	Currency         string `json:"currency,omitempty"`
}

// RoomTypeCard тип номера с его тарифами
type RoomTypeCard struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Capacity  int            `json:"capacity"`
	Beds      int            `json:"beds"`
	Features  []string       `json:"features"`
	RatePlans []RatePlanCard `json:"ratePlans"`
}

// HotelResponse карточка отеля с типами номеров и тарифами
type HotelResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Stars     int            `json:"stars"`
	City      string         `json:"city"`
	Features  []string       `json:"features"`
	RoomTypes []RoomTypeCard `json:"roomTypes"`
}
