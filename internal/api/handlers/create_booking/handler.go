package create_booking

import (
	"errors"
	"net/http"

	"github.com/aidosbay/HBP-RatesService/internal/api/handlers"
	"github.com/aidosbay/HBP-RatesService/internal/api/middleware"
	createBooking "github.com/aidosbay/HBP-RatesService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgRateNotFound       = "тариф не найден"
	msgQuoteRejected      = "бронирование отклонено по результатам котировки"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		var quoteErr *createBooking.QuoteRejectedError

		switch {
		case errors.As(err, &quoteErr):
			h.logger.Warn("POST /bookings - Quote rejected: user_id=%d, rate_id=%d, problems=%v",
				userID, req.RateID, quoteErr.Problems)
			handlers.RespondUnprocessable(w, QuoteRejectedResponse{
				Error:    msgQuoteRejected,
				Problems: quoteErr.Problems,
			})

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, createBooking.ErrRatePlanNotFound):
			h.logger.Warn("POST /bookings - Rate plan not found: rate_id=%d", req.RateID)
			handlers.RespondNotFound(w, msgRateNotFound)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, rate_id=%d, error=%v",
				userID, req.RateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Повторный запрос с тем же ключом идемпотентности возвращает
	// прежнюю запись с 200 вместо 201
	status := http.StatusCreated
	if result.AlreadyExists {
		status = http.StatusOK
		h.logger.Info("POST /bookings - Duplicate request, existing booking returned: booking_id=%d, user_id=%d",
			result.ID, userID)
	} else {
		h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, rate_id=%d",
			result.ID, userID, req.RateID)
	}
	handlers.RespondJSON(w, status, FromUseCaseResponse(result))
}
