package create_booking

import "time"

// Request модель запроса на создание бронирования
type Request struct {
	UserID   int64  // ID пользователя
	RateID   int64  // ID тарифа; отель и тип номера определяются тарифом
	CheckIn  string // Дата заезда "YYYY-MM-DD"
	CheckOut string // Дата выезда "YYYY-MM-DD"
	Guests   int    // Число гостей
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64  // ID бронирования
	UserID     int64  // ID пользователя
	HotelID    int64  // ID отеля
	RoomTypeID int64  // ID типа номера
	RateID     int64  // ID тарифа
	CheckIn    string // Дата заезда
	CheckOut   string // Дата выезда
	Guests     int    // Число гостей
	Total      int64  // Сумма проживания, минорные единицы
	Currency   string // Валюта суммы
	Status     string // Статус бронирования

	// AlreadyExists true, если запрос повторил существующее бронирование
	// с тем же ключом идемпотентности и вернулась прежняя запись
	AlreadyExists bool

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
