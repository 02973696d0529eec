package domain

// Price цена за одну ночь по тарифу на конкретную дату.
// Инвариант: не более одной записи на пару (RateID, Date); дедупликация —
// обязанность хранилища, ядро её не проверяет.
type Price struct {
	ID       int64
	RateID   int64
	Date     string // ISO "YYYY-MM-DD"
	Amount   int64  // минорные единицы валюты
	Currency string
}

// Availability остаток номеров типа на конкретную дату.
type Availability struct {
	ID         int64
	RoomTypeID int64
	Date       string // ISO "YYYY-MM-DD"
	Available  int    // остаток >= 0
}

// RuleKind вид ограничения бронирования
type RuleKind string

const (
	RuleMinStay RuleKind = "min_stay"
	RuleMaxStay RuleKind = "max_stay"
	RuleCTA     RuleKind = "cta" // closed-to-arrival: запрет заезда в дату
	RuleCTD     RuleKind = "ctd" // closed-to-departure: запрет выезда в дату
)

// RulePayload параметры правила. Отсутствующее поле (nil) — wildcard:
// правило без RoomTypeID/RateID применяется к любому типу номера/тарифу.
type RulePayload struct {
	RoomTypeID *int64
	RateID     *int64
	Date       *string // ISO, только для cta/ctd
	Value      any     // int для min/max stay, bool для cta/ctd; тип не гарантирован
}

// Rule ограничение бронирования (min/max stay, CTA/CTD)
type Rule struct {
	ID      int64
	Kind    RuleKind
	Payload RulePayload
}

// RoomType тип номера отеля
type RoomType struct {
	ID       int64
	HotelID  int64
	Name     string
	Capacity int
	Beds     int
	Features []string
}

// RatePlan тариф: продаваемая комбинация типа номера и условий
// (питание, возвратность). Принадлежит ровно одному RoomType.
type RatePlan struct {
	ID               int64
	HotelID          int64
	RoomTypeID       int64
	Title            string
	Meal             string
	Refundable       bool
	CancelBeforeDays int
}

// Hotel отель с нулём и более типами номеров
type Hotel struct {
	ID       int64
	Name     string
	Stars    int
	City     string
	Features []string
}
