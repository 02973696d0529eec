package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/aidosbay/HBP-RatesService/internal/core/offers"
	"github.com/aidosbay/HBP-RatesService/internal/domain"
	bookingRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/bookings"
	catalogRepo "github.com/aidosbay/HBP-RatesService/internal/infra/storage/catalog"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	priceRepo    PriceRepository
	availRepo    AvailabilityRepository
	ruleRepo     RuleRepository
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	priceRepo PriceRepository,
	availRepo AvailabilityRepository,
	ruleRepo RuleRepository,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		priceRepo:    priceRepo,
		availRepo:    availRepo,
		ruleRepo:     ruleRepo,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания бронирования.
// Котировка и запись выполняются в одной сериализуемой транзакции:
// между проверкой и вставкой цены и остатки не могут измениться.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, rate=%d, checkIn=%s, checkOut=%s, guests=%d",
		req.UserID, req.RateID, req.CheckIn, req.CheckOut, req.Guests)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Текущее время
	now := uc.timeProvider.Now()

	// 3. Тариф определяет отель и тип номера
	ratePlan, err := uc.catalogRepo.GetRatePlan(ctx, req.RateID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrRatePlanNotFound) {
			uc.logger.Warn("CreateBooking: rate plan id=%d not found", req.RateID)
			return nil, ErrRatePlanNotFound
		}
		uc.logger.Error("CreateBooking: failed to get rate plan id=%d: %v", req.RateID, err)
		return nil, fmt.Errorf("%w: failed to get rate plan: %v", ErrInternal, err)
	}

	var (
		result        *domain.Booking
		alreadyExists bool
	)

	// 4. Котировка и запись в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Загружаем данные на полуинтервал проживания
		prices, err := uc.priceRepo.ListByRateWindow(txCtx, req.RateID, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load prices: %v", err)
			return fmt.Errorf("%w: failed to load prices: %v", ErrInternal, err)
		}

		avails, err := uc.availRepo.ListByRoomTypeWindow(txCtx, ratePlan.RoomTypeID, req.CheckIn, req.CheckOut)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load availability: %v", err)
			return fmt.Errorf("%w: failed to load availability: %v", ErrInternal, err)
		}

		ruleSet, err := uc.ruleRepo.ListForScope(txCtx, ratePlan.RoomTypeID, req.RateID)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to load rules: %v", err)
			return fmt.Errorf("%w: failed to load rules: %v", ErrInternal, err)
		}

		// 4.2. Котировка — ворота записи: бронируется только чистый расчёт
		quote, err := offers.QuoteStay(
			req.RateID, ratePlan.RoomTypeID, req.CheckIn, req.CheckOut, prices, avails, ruleSet,
		)
		if err != nil {
			return fmt.Errorf("%w: quote: %v", ErrInternal, err)
		}
		if !quote.OK {
			uc.logger.Warn("CreateBooking: quote rejected for user=%d, rate=%d: %v",
				req.UserID, req.RateID, quote.Problems)
			return &QuoteRejectedError{Problems: quote.Problems}
		}

		booking := &domain.Booking{
			UserID:     req.UserID,
			HotelID:    ratePlan.HotelID,
			RoomTypeID: ratePlan.RoomTypeID,
			RateID:     req.RateID,
			CheckIn:    req.CheckIn,
			CheckOut:   req.CheckOut,
			Guests:     req.Guests,
			Total:      quote.Total,
			Currency:   bookingCurrency(prices),
			Status:     domain.StatusHeld,
			CreatedAt:  now,
			UpdatedAt:  now,
		}

		// 4.3. Запись идемпотентна: дубль по ключу возвращает прежнюю
		// запись вместо ошибки
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if errors.Is(err, bookingRepo.ErrDuplicateBooking) {
			existing, findErr := uc.bookingRepo.FindByKey(txCtx, booking)
			if findErr != nil {
				uc.logger.Error("CreateBooking: duplicate detected but lookup failed: %v", findErr)
				return fmt.Errorf("%w: failed to find existing booking: %v", ErrInternal, findErr)
			}
			uc.logger.Info("CreateBooking: duplicate request, returning existing booking id=%d", existing.ID)
			result = existing
			alreadyExists = true
			return nil
		}
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	if !alreadyExists {
		uc.logger.Info("CreateBooking: successfully created booking id=%d", result.ID)
	}

	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		HotelID:       result.HotelID,
		RoomTypeID:    result.RoomTypeID,
		RateID:        result.RateID,
		CheckIn:       result.CheckIn,
		CheckOut:      result.CheckOut,
		Guests:        result.Guests,
		Total:         result.Total,
		Currency:      result.Currency,
		Status:        string(result.Status),
		AlreadyExists: alreadyExists,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// bookingCurrency валюта бронирования: валюта первой цены окна, без цен —
// валюта по умолчанию (до этой ветки котировка с OK=true не доходит)
func bookingCurrency(prices []domain.Price) string {
	if len(prices) > 0 {
		return prices[0].Currency
	}
	return domain.DefaultCurrency
}
