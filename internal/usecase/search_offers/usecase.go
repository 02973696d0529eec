package search_offers

import (
	"context"
	"fmt"
	"time"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/core/offers"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
)

// UseCase use case поиска предложений
type UseCase struct {
	catalogRepo      CatalogRepository
	priceRepo        PriceRepository
	availRepo        AvailabilityRepository
	defaultLookahead int
	timeProvider     TimeProvider
	logger           Logger
}

// NewUseCase создает новый экземпляр use case.
// defaultLookaheadDays <= 0 заменяется значением по умолчанию.
func NewUseCase(
	catalogRepo CatalogRepository,
	priceRepo PriceRepository,
	availRepo AvailabilityRepository,
	defaultLookaheadDays int,
	logger Logger,
) *UseCase {
	if defaultLookaheadDays <= 0 {
		defaultLookaheadDays = domain.DefaultLookaheadDays
	}
	return &UseCase{
		catalogRepo:      catalogRepo,
		priceRepo:        priceRepo,
		availRepo:        availRepo,
		defaultLookahead: defaultLookaheadDays,
		timeProvider:     &RealTimeProvider{},
		logger:           logger,
	}
}

// Execute выполняет use case поиска предложений
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SearchOffers: validation failed: %v", err)
		return nil, err
	}

	lookahead := req.LookaheadDays
	if lookahead == 0 {
		lookahead = uc.defaultLookahead
	}

	uc.logger.Info("SearchOffers: lookahead=%d days, limit=%d", lookahead, req.Limit)

	// 2. Окно поиска [сегодня, сегодня+lookahead)
	now := uc.timeProvider.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	fromISO := dates.ToISO(today)
	toISO := dates.ToISO(today.AddDate(0, 0, lookahead))

	// 3. Загружаем каталог и данные окна
	hotels, err := uc.catalogRepo.ListHotels(ctx)
	if err != nil {
		uc.logger.Error("SearchOffers: failed to list hotels: %v", err)
		return nil, fmt.Errorf("%w: failed to list hotels: %v", ErrInternal, err)
	}

	roomTypes, err := uc.catalogRepo.ListRoomTypes(ctx)
	if err != nil {
		uc.logger.Error("SearchOffers: failed to list room types: %v", err)
		return nil, fmt.Errorf("%w: failed to list room types: %v", ErrInternal, err)
	}

	rates, err := uc.catalogRepo.ListRatePlans(ctx)
	if err != nil {
		uc.logger.Error("SearchOffers: failed to list rate plans: %v", err)
		return nil, fmt.Errorf("%w: failed to list rate plans: %v", ErrInternal, err)
	}

	prices, err := uc.priceRepo.ListWindow(ctx, fromISO, toISO)
	if err != nil {
		uc.logger.Error("SearchOffers: failed to load prices: %v", err)
		return nil, fmt.Errorf("%w: failed to load prices: %v", ErrInternal, err)
	}

	avails, err := uc.availRepo.ListWindow(ctx, fromISO, toISO)
	if err != nil {
		uc.logger.Error("SearchOffers: failed to load availability: %v", err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	// 4. Ленивый перебор: останавливаемся, как только набрали limit
	result := make([]OfferItem, 0)
	for offer := range offers.Lazy(hotels, roomTypes, rates, prices, avails, buildPredicate(req), lookahead, today) {
		result = append(result, OfferItem{
			HotelID:      offer.Hotel.ID,
			HotelName:    offer.Hotel.Name,
			HotelStars:   offer.Hotel.Stars,
			HotelCity:    offer.Hotel.City,
			RoomTypeID:   offer.RoomType.ID,
			RoomTypeName: offer.RoomType.Name,
			RateID:       offer.RatePlan.ID,
			RateTitle:    offer.RatePlan.Title,
			Meal:         offer.RatePlan.Meal,
			Refundable:   offer.RatePlan.Refundable,
			BestPrice:    offer.BestPrice,
		})
		if req.Limit > 0 && len(result) >= req.Limit {
			break
		}
	}

	uc.logger.Info("SearchOffers: found %d offers", len(result))

	return &Response{Offers: result}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.LookaheadDays < 0 {
		return fmt.Errorf("%w: lookaheadDays must not be negative", ErrInvalidInput)
	}
	if req.Limit < 0 {
		return fmt.Errorf("%w: limit must not be negative", ErrInvalidInput)
	}
	if req.MinStars != nil && *req.MinStars < 0 {
		return fmt.Errorf("%w: minStars must not be negative", ErrInvalidInput)
	}
	if req.MaxPrice != nil && *req.MaxPrice <= 0 {
		return fmt.Errorf("%w: maxPrice must be positive", ErrInvalidInput)
	}
	return nil
}

// buildPredicate собирает фильтр предложений из опциональных условий
// запроса; все условия объединяются через AND
func buildPredicate(req *Request) offers.Predicate {
	return func(m offers.Meta) bool {
		if req.City != nil && m.HotelCity != *req.City {
			return false
		}
		if req.MinStars != nil && m.HotelStars < *req.MinStars {
			return false
		}
		if req.MaxPrice != nil && m.MinPriceInWindow > *req.MaxPrice {
			return false
		}
		if req.Meal != nil && m.Meal != *req.Meal {
			return false
		}
		if req.Refundable != nil && m.Refundable != *req.Refundable {
			return false
		}
		return true
	}
}
