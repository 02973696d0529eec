package get_calendar

import "github.com/aidosbay/HBP-RatesService/internal/domain"

// Request модель запроса календаря цен
type Request struct {
	HotelID    int64   // ID отеля
	RoomTypeID int64   // ID типа номера
	RateID     int64   // ID тарифа
	Month      *string // Месяц "YYYY-MM"; nil — текущий месяц
}

// Response модель ответа: сетка месяца 6×7
type Response struct {
	HotelID    int64              // ID отеля
	RoomTypeID int64              // ID типа номера
	RateID     int64              // ID тарифа
	MonthStart string             // Первое число месяца "YYYY-MM-DD"
	Weeks      [][]domain.DayCell // 6 строк по 7 ячеек, с понедельника
}
