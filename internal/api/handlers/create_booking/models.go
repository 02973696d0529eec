package create_booking

import (
	"time"

	createBooking "github.com/aidosbay/HBP-RatesService/internal/usecase/create_booking"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	RateID   int64  `json:"rateId"`
	CheckIn  string `json:"checkIn"`  // "2025-10-15"
	CheckOut string `json:"checkOut"` // "2025-10-18"
	Guests   int    `json:"guests"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64  `json:"id"`
	UserID     int64  `json:"userId"`
	HotelID    int64  `json:"hotelId"`
	RoomTypeID int64  `json:"roomTypeId"`
	RateID     int64  `json:"rateId"`
	CheckIn    string `json:"checkIn"`
	CheckOut   string `json:"checkOut"`
	Guests     int    `json:"guests"`
	Total      int64  `json:"total"`
	Currency   string `json:"currency"`
	Status     string `json:"status"`
	CreatedAt  string `json:"createdAt"`
	UpdatedAt  string `json:"updatedAt"`
}

// QuoteRejectedResponse тело ответа 422 с замечаниями котировки
type QuoteRejectedResponse struct {
	Error    string   `json:"error"`
	Problems []string `json:"problems"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case;
// userID приходит из заголовка через middleware, не из тела
func (r *CreateBookingRequest) ToUseCaseRequest(userID int64) *createBooking.Request {
	return &createBooking.Request{
		UserID:   userID,
		RateID:   r.RateID,
		CheckIn:  r.CheckIn,
		CheckOut: r.CheckOut,
		Guests:   r.Guests,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		HotelID:    resp.HotelID,
		RoomTypeID: resp.RoomTypeID,
		RateID:     resp.RateID,
		CheckIn:    resp.CheckIn,
		CheckOut:   resp.CheckOut,
		Guests:     resp.Guests,
		Total:      resp.Total,
		Currency:   resp.Currency,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
