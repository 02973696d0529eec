package get_calendar

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidosbay/HBP-RatesService/internal/core/dates"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
)

// UseCase use case построения календаря цен на месяц
type UseCase struct {
	catalogRepo  CatalogRepository
	priceRepo    PriceRepository
	availRepo    AvailabilityRepository
	ruleRepo     RuleRepository
	cache        CalendarCache
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	catalogRepo CatalogRepository,
	priceRepo PriceRepository,
	availRepo AvailabilityRepository,
	ruleRepo RuleRepository,
	cache CalendarCache,
	logger Logger,
) *UseCase {
	return &UseCase{
		catalogRepo:  catalogRepo,
		priceRepo:    priceRepo,
		availRepo:    availRepo,
		ruleRepo:     ruleRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case построения календаря
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetCalendar: hotel=%d, roomType=%d, rate=%d", req.HotelID, req.RoomTypeID, req.RateID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetCalendar: validation failed: %v", err)
		return nil, err
	}

	// 2. Месяц по умолчанию — текущий
	monthStart := resolveMonth(req, uc.timeProvider.Now())

	// 3. Проверяем, что тариф существует и относится к запрошенной паре
	// (отель, тип номера)
	ratePlan, err := uc.catalogRepo.GetRatePlan(ctx, req.RateID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRatePlanNotFound) {
			uc.logger.Warn("GetCalendar: rate plan id=%d not found", req.RateID)
			return nil, ErrRatePlanNotFound
		}
		uc.logger.Error("GetCalendar: failed to get rate plan id=%d: %v", req.RateID, err)
		return nil, fmt.Errorf("%w: failed to get rate plan: %v", ErrInternal, err)
	}
	if ratePlan.HotelID != req.HotelID || ratePlan.RoomTypeID != req.RoomTypeID {
		uc.logger.Warn("GetCalendar: rate plan id=%d belongs to hotel=%d, roomType=%d",
			req.RateID, ratePlan.HotelID, ratePlan.RoomTypeID)
		return nil, ErrScopeMismatch
	}

	// 4. Загружаем данные ровно на окно сетки (6 полных недель)
	gridStart, gridEnd := dates.MonthGridBounds(monthStart)
	fromISO, toISO := dates.ToISO(gridStart), dates.ToISO(gridEnd)

	prices, err := uc.priceRepo.ListByRateWindow(ctx, req.RateID, fromISO, toISO)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load prices for rate=%d: %v", req.RateID, err)
		return nil, fmt.Errorf("%w: failed to load prices: %v", ErrInternal, err)
	}

	avails, err := uc.availRepo.ListByRoomTypeWindow(ctx, req.RoomTypeID, fromISO, toISO)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load availability for roomType=%d: %v", req.RoomTypeID, err)
		return nil, fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
	}

	ruleSet, err := uc.ruleRepo.ListForScope(ctx, req.RoomTypeID, req.RateID)
	if err != nil {
		uc.logger.Error("GetCalendar: failed to load rules: %v", err)
		return nil, fmt.Errorf("%w: failed to load rules: %v", ErrInternal, err)
	}

	// 5. Строим сетку через кэш
	weeks := uc.cache.Get(req.RoomTypeID, req.RateID, monthStart, prices, avails, ruleSet)

	uc.logger.Info("GetCalendar: built %d weeks for rate=%d, month=%s",
		len(weeks), req.RateID, dates.ToISO(monthStart))

	return &Response{
		HotelID:    req.HotelID,
		RoomTypeID: req.RoomTypeID,
		RateID:     req.RateID,
		MonthStart: dates.ToISO(monthStart),
		Weeks:      weeks,
	}, nil
}
