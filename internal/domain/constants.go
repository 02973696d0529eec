package domain

// Значения по умолчанию для ограничений проживания
const (
	DefaultMinStay = 1   // ночей, если нет ни одного правила min_stay
	DefaultMaxStay = 365 // ночей, если нет ни одного правила max_stay
)

// Параметры сканера предложений
const (
	DefaultLookaheadDays = 60 // окно поиска лучшей цены от сегодняшнего дня
)

// Геометрия календарной сетки: всегда ровно 6 полных недель,
// независимо от длины месяца и дня недели его первого числа.
const (
	CalendarWeeks = 6
	DaysPerWeek   = 7
	CalendarDays  = CalendarWeeks * DaysPerWeek
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// Business validation constants
const (
	MinGuests                   = 1
	MaxGuests                   = 10
	MaxCancellationReasonLength = 500
)

// DefaultCurrency валюта по умолчанию, когда у записей цен нет своей
const DefaultCurrency = "KZT"
