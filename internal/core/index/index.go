// Package index строит карты поиска из плоских списков записей хранилища.
// Чистые функции без побочных эффектов; карты одноразовые и пересоздаются
// на каждый вызов, инкрементального обновления нет.
package index

import (
	"sort"

	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// RateDate ключ (тариф, дата)
type RateDate struct {
	RateID int64
	Date   string // ISO "YYYY-MM-DD"
}

// RoomTypeDate ключ (тип номера, дата)
type RoomTypeDate struct {
	RoomTypeID int64
	Date       string // ISO "YYYY-MM-DD"
}

// PricesByRateDate строит карту (rate_id, date) -> amount.
// При дубликатах ключа побеждает последняя запись в порядке обхода —
// инвариант "не более одной цены на ключ" держит хранилище, не ядро.
func PricesByRateDate(prices []domain.Price) map[RateDate]int64 {
	idx := make(map[RateDate]int64, len(prices))
	for _, p := range prices {
		idx[RateDate{RateID: p.RateID, Date: p.Date}] = p.Amount
	}
	return idx
}

// AvailabilityByRoomTypeDate строит карту (room_type_id, date) -> остаток
func AvailabilityByRoomTypeDate(avails []domain.Availability) map[RoomTypeDate]int {
	idx := make(map[RoomTypeDate]int, len(avails))
	for _, a := range avails {
		idx[RoomTypeDate{RoomTypeID: a.RoomTypeID, Date: a.Date}] = a.Available
	}
	return idx
}

// PricesByRate группирует цены по тарифу, внутри тарифа — по возрастанию
// даты. Используется сканером предложений вместо повторных полных проходов.
func PricesByRate(prices []domain.Price) map[int64][]domain.Price {
	idx := make(map[int64][]domain.Price)
	for _, p := range prices {
		idx[p.RateID] = append(idx[p.RateID], p)
	}
	for rateID := range idx {
		rows := idx[rateID]
		sort.Slice(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date })
	}
	return idx
}

// RatesByID строит карту id -> тариф
func RatesByID(rates []domain.RatePlan) map[int64]domain.RatePlan {
	idx := make(map[int64]domain.RatePlan, len(rates))
	for _, r := range rates {
		idx[r.ID] = r
	}
	return idx
}

// RoomTypesByID строит карту id -> тип номера
func RoomTypesByID(roomTypes []domain.RoomType) map[int64]domain.RoomType {
	idx := make(map[int64]domain.RoomType, len(roomTypes))
	for _, rt := range roomTypes {
		idx[rt.ID] = rt
	}
	return idx
}

// HotelsByID строит карту id -> отель
func HotelsByID(hotels []domain.Hotel) map[int64]domain.Hotel {
	idx := make(map[int64]domain.Hotel, len(hotels))
	for _, h := range hotels {
		idx[h.ID] = h
	}
	return idx
}
