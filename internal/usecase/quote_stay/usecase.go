package quote_stay

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	"github.com/aidosbay/HBP-RatesService/internal/core/offers"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
)

// UseCase use case котировки проживания
type UseCase struct {
	catalogRepo CatalogRepository
	priceRepo   PriceRepository
	availRepo   AvailabilityRepository
	ruleRepo    RuleRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	priceRepo PriceRepository,
	availRepo AvailabilityRepository,
	ruleRepo RuleRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo: catalogRepo,
		priceRepo:   priceRepo,
		availRepo:   availRepo,
		ruleRepo:    ruleRepo,
		logger:      logger,
	}
}

// Execute выполняет use case котировки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("QuoteStay: rate=%d, checkIn=%s, checkOut=%s", req.RateID, req.CheckIn, req.CheckOut)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("QuoteStay: validation failed: %v", err)
		return nil, err
	}

	checkin, err := dates.ToDate(req.CheckIn)
	if err != nil {
		uc.logger.Warn("QuoteStay: invalid checkIn=%q", req.CheckIn)
		return nil, fmt.Errorf("%w: invalid checkIn: %v", ErrInvalidInput, err)
	}
	checkout, err := dates.ToDate(req.CheckOut)
	if err != nil {
		uc.logger.Warn("QuoteStay: invalid checkOut=%q", req.CheckOut)
		return nil, fmt.Errorf("%w: invalid checkOut: %v", ErrInvalidInput, err)
	}

	// 2. Тариф определяет тип номера
	ratePlan, err := uc.catalogRepo.GetRatePlan(ctx, req.RateID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRatePlanNotFound) {
			uc.logger.Warn("QuoteStay: rate plan id=%d not found", req.RateID)
			return nil, ErrRatePlanNotFound
		}
		uc.logger.Error("QuoteStay: failed to get rate plan id=%d: %v", req.RateID, err)
		return nil, fmt.Errorf("%w: failed to get rate plan: %v", ErrInternal, err)
	}

	// 3. Данные нужны только на полуинтервал проживания
	prices, err := uc.priceRepo.ListByRateWindow(ctx, req.RateID, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("QuoteStay: failed to load prices for rate=%d: %v", req.RateID, err)
		return nil, fmt.Errorf("%w: failed to load prices: %v", ErrInternal, err)
	}

	avails, err := uc.availRepo.ListByRoomTypeWindow(ctx, ratePlan.RoomTypeID, req.CheckIn, req.CheckOut)
	if err != nil {
		uc.logger.Error("QuoteStay: failed to load availability for roomType=%d: %v", ratePlan.RoomTypeID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	ruleSet, err := uc.ruleRepo.ListForScope(ctx, ratePlan.RoomTypeID, req.RateID)
	if err != nil {
		uc.logger.Error("QuoteStay: failed to load rules: %v", err)
		return nil, fmt.Errorf("%w: failed to load rules: %v", ErrInternal, err)
	}

	// 4. Котировка. Формат дат уже проверен, ошибка здесь невозможна
	quote, err := offers.QuoteStay(req.RateID, ratePlan.RoomTypeID, req.CheckIn, req.CheckOut, prices, avails, ruleSet)
	if err != nil {
		return nil, fmt.Errorf("%w: quote: %v", ErrInternal, err)
	}

	uc.logger.Info("QuoteStay: rate=%d total=%d ok=%t problems=%d",
		req.RateID, quote.Total, quote.OK, len(quote.Problems))

	return &Response{
		RateID:   req.RateID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
		Nights:   dates.Nights(checkin, checkout),
		Total:    quote.Total,
		Currency: quoteCurrency(prices),
		OK:       quote.OK,
		Problems: quote.Problems,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.RateID <= 0 {
		return fmt.Errorf("%w: rateID must be positive", ErrInvalidInput)
	}
	if req.CheckIn == "" {
		return fmt.Errorf("%w: checkIn is required", ErrInvalidInput)
	}
	if req.CheckOut == "" {
		return fmt.Errorf("%w: checkOut is required", ErrInvalidInput)
	}
	return nil
}

// quoteCurrency валюта котировки: валюта первой цены окна, без цен —
// валюта по умолчанию
func quoteCurrency(prices []domain.Price) string {
	if len(prices) > 0 {
		return prices[0].Currency
	}
	return domain.DefaultCurrency
}
