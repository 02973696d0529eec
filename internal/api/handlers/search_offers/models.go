package search_offers

import (
	searchOffers "github.com/aidosbay/HBP-RatesService/internal/usecase/search_offers"
)

// OfferResponse предложение в HTTP-ответе
type OfferResponse struct {
	HotelID      int64  `json:"hotelId"`
	HotelName    string `json:"hotelName"`
	HotelStars   int    `json:"hotelStars"`
	HotelCity    string `json:"hotelCity"`
	RoomTypeID   int64  `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName"`
	RateID       int64  `json:"rateId"`
	RateTitle    string `json:"rateTitle"`
	Meal         string `json:"meal"`
	Refundable   bool   `json:"refundable"`
	BestPrice    int64  `json:"bestPrice"`
}

// OfferListResponse HTTP response model
type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *searchOffers.Response) *OfferListResponse {
	offers := make([]OfferResponse, len(resp.Offers))
	for i, o := range resp.Offers {
		offers[i] = OfferResponse{
			HotelID:      o.HotelID,
			HotelName:    o.HotelName,
			HotelStars:   o.HotelStars,
			HotelCity:    o.HotelCity,
			RoomTypeID:   o.RoomTypeID,
			RoomTypeName: o.RoomTypeName,
			RateID:       o.RateID,
			RateTitle:    o.RateTitle,
			Meal:         o.Meal,
			Refundable:   o.Refundable,
			BestPrice:    o.BestPrice,
		}
	}
	return &OfferListResponse{Offers: offers}
}
