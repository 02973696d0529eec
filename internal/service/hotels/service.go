package hotels

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
	"github.com/aidosbay/HBP-RatesService/internal/service/hotels/models"
)

// Service сервис карточки отеля: отель, его типы номеров и тарифы
// с минимальной ценой за ночь в окне поиска
type Service struct {
	catalogRepo  CatalogRepository
	priceRepo    PriceRepository
	lookahead    int
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса карточки отеля.
// lookaheadDays <= 0 заменяется значением по умолчанию.
func NewService(catalogRepo CatalogRepository, priceRepo PriceRepository, lookaheadDays int, logger Logger) *Service {
	if lookaheadDays <= 0 {
		lookaheadDays = domain.DefaultLookaheadDays
	}
	return &Service{
		catalogRepo:  catalogRepo,
		priceRepo:    priceRepo,
		lookahead:    lookaheadDays,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetHotelCard собирает карточку отеля: типы номеров, тарифы и
// минимальную цену за ночь по каждому тарифу в окне [сегодня, сегодня+lookahead)
func (s *Service) GetHotelCard(ctx context.Context, hotelID int64) (*models.HotelResponse, error) {
	if hotelID <= 0 {
		s.logger.Warn("GetHotelCard: invalid hotelID=%d", hotelID)
		return nil, fmt.Errorf("%w: hotelID must be positive", ErrInvalidInput)
	}

	s.logger.Info("GetHotelCard: fetching hotel id=%d", hotelID)

	hotel, err := s.catalogRepo.GetHotel(ctx, hotelID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrHotelNotFound) {
			s.logger.Warn("GetHotelCard: hotel id=%d not found", hotelID)
			return nil, ErrHotelNotFound
		}
		s.logger.Error("GetHotelCard: repository error for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotelCard - repository error: %v", ErrInternal, err)
	}

	roomTypes, err := s.catalogRepo.ListRoomTypesByHotel(ctx, hotelID)
	if err != nil {
		s.logger.Error("GetHotelCard: failed to list room types for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotelCard - failed to list room types: %v", ErrInternal, err)
	}

	ratePlans, err := s.catalogRepo.ListRatePlans(ctx)
	if err != nil {
		s.logger.Error("GetHotelCard: failed to list rate plans: %v", err)
		return nil, fmt.Errorf("%w: GetHotelCard - failed to list rate plans: %v", ErrInternal, err)
	}

	// Окно поиска минимальной цены [сегодня, сегодня+lookahead)
	now := s.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	fromISO := dates.ToISO(today)
	toISO := dates.ToISO(today.AddDate(0, 0, s.lookahead))

	prices, err := s.priceRepo.ListByHotelWindow(ctx, hotelID, fromISO, toISO)
	if err != nil {
		s.logger.Error("GetHotelCard: failed to load prices for hotel id=%d: %v", hotelID, err)
		return nil, fmt.Errorf("%w: GetHotelCard - failed to load prices: %v", ErrInternal, err)
	}

	minByRate, currencyByRate := minPricesByRate(prices)

	resp := &models.HotelResponse{
		ID:        hotel.ID,
		Name:      hotel.Name,
		Stars:     hotel.Stars,
		City:      hotel.City,
		Features:  hotel.Features,
		RoomTypes: make([]models.RoomTypeCard, 0, len(roomTypes)),
	}

	for _, rt := range roomTypes {
		card := models.RoomTypeCard{
			ID:        rt.ID,
			Name:      rt.Name,
			Capacity:  rt.Capacity,
			Beds:      rt.Beds,
			Features:  rt.Features,
			RatePlans: make([]models.RatePlanCard, 0),
		}
		for _, rp := range ratePlans {
			if rp.RoomTypeID != rt.ID {
				continue
			}
			rateCard := models.RatePlanCard{
				ID:               rp.ID,
				Title:            rp.Title,
				Meal:             rp.Meal,
				Refundable:       rp.Refundable,
				CancelBeforeDays: rp.CancelBeforeDays,
			}
			if min, ok := minByRate[rp.ID]; ok {
				priceFrom := min
				rateCard.PriceFrom = &priceFrom
				rateCard.Currency = currencyByRate[rp.ID]
			}
			card.RatePlans = append(card.RatePlans, rateCard)
		}
		resp.RoomTypes = append(resp.RoomTypes, card)
	}

	s.logger.Info("GetHotelCard: hotel id=%d, %d room types", hotelID, len(resp.RoomTypes))
	return resp, nil
}

// minPricesByRate возвращает минимальную цену и её валюту по каждому тарифу
func minPricesByRate(prices []domain.Price) (map[int64]int64, map[int64]string) {
	minByRate := make(map[int64]int64)
	currencyByRate := make(map[int64]string)
	for _, p := range prices {
		if cur, ok := minByRate[p.RateID]; !ok || p.Amount < cur {
			minByRate[p.RateID] = p.Amount
			currencyByRate[p.RateID] = p.Currency
		}
	}
	return minByRate, currencyByRate
}
