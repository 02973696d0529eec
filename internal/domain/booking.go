package domain

import "time"

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusHeld      BookingStatus = "held"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking бронирование проживания. Запись создаётся только после того,
// как котировка (quote) прошла без замечаний.
type Booking struct {
	ID         int64
	UserID     int64
	HotelID    int64
	RoomTypeID int64
	RateID     int64
	CheckIn    string // ISO "YYYY-MM-DD"
	CheckOut   string // ISO "YYYY-MM-DD"
	Guests     int
	Total      int64 // минорные единицы валюты
	Currency   string
	Status     BookingStatus

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// CanBeCancelled returns true if the booking can be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusHeld || b.Status == StatusConfirmed
}
