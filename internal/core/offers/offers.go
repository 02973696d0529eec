// Package offers ищет продаваемые предложения по тарифам и считает
// котировку конкретного проживания с полной диагностикой нарушений.
package offers

import (
	"iter"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/core/index"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// Offer предложение: тариф с лучшей ценой в окне поиска
type Offer struct {
	Hotel     domain.Hotel
	RoomType  domain.RoomType
	RatePlan  domain.RatePlan
	BestPrice int64
}

// Meta метаданные предложения для пользовательского фильтра
type Meta struct {
	HotelID          int64
	HotelStars       int
	HotelCity        string
	RoomTypeID       int64
	RateID           int64
	Meal             string
	Refundable       bool
	MinPriceInWindow int64
}

// Predicate пользовательский фильтр предложений
type Predicate func(Meta) bool

// Lazy лениво перебирает тарифы и отдаёт предложения с минимальной ценой
// в окне [today, today+lookaheadDays). Тариф попадает в выдачу, только
// если его отель и тип номера находятся по id и в окне есть хотя бы один
// день с ценой и остатком > 0 — иначе тариф пропускается целиком, даже
// когда цены есть за пределами окна. Каждое предложение дополнительно
// проходит predicate. Последовательность конечна, внешнего изменяемого
// состояния между вызовами нет: повторный range — независимый пересчёт.
func Lazy(
	hotels []domain.Hotel,
	roomTypes []domain.RoomType,
	rates []domain.RatePlan,
	prices []domain.Price,
	avails []domain.Availability,
	pred Predicate,
	lookaheadDays int,
	today time.Time,
) iter.Seq[Offer] {
	return func(yield func(Offer) bool) {
		hIdx := index.HotelsByID(hotels)
		rtIdx := index.RoomTypesByID(roomTypes)
		pByRate := index.PricesByRate(prices)
		aIdx := index.AvailabilityByRoomTypeDate(avails)

		window := make(map[string]struct{}, lookaheadDays)
		for d := range dates.Range(today, today.AddDate(0, 0, lookaheadDays)) {
			window[dates.ToISO(d)] = struct{}{}
		}

		for _, rp := range rates {
			h, okH := hIdx[rp.HotelID]
			rt, okRT := rtIdx[rp.RoomTypeID]
			if !okH || !okRT {
				continue
			}

			var best *int64
			for _, p := range pByRate[rp.ID] {
				if _, inWindow := window[p.Date]; !inWindow {
					continue
				}
				if aIdx[index.RoomTypeDate{RoomTypeID: rt.ID, Date: p.Date}] <= 0 {
					continue
				}
				if best == nil || p.Amount < *best {
					amount := p.Amount
					best = &amount
				}
			}
			if best == nil {
				continue
			}

			meta := Meta{
				HotelID:          h.ID,
				HotelStars:       h.Stars,
				HotelCity:        h.City,
				RoomTypeID:       rt.ID,
				RateID:           rp.ID,
				Meal:             rp.Meal,
				Refundable:       rp.Refundable,
				MinPriceInWindow: *best,
			}
			if pred != nil && !pred(meta) {
				continue
			}
			if !yield(Offer{Hotel: h, RoomType: rt, RatePlan: rp, BestPrice: *best}) {
				return
			}
		}
	}
}
