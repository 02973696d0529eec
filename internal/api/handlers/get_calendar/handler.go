package get_calendar

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/aidosbay/HBP-RatesService/internal/api/handlers"
	getCalendar "github.com/aidosbay/HBP-RatesService/internal/usecase/get_calendar"
)

const (
	msgInvalidHotelID    = "некорректный ID отеля"
	msgInvalidRoomTypeID = "некорректный параметр roomTypeId"
	msgInvalidRateID     = "некорректный параметр rateId"
	msgInvalidRequest    = "некорректные параметры запроса"
	msgRateNotFound      = "тариф не найден"
	msgScopeMismatch     = "тариф не относится к указанным отелю и типу номера"
)

type Handler struct {
	useCase GetCalendarUseCase
	logger  Logger
}

func NewHandler(useCase GetCalendarUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/hotels/{hotelId}/calendar?roomTypeId=&rateId=&month=YYYY-MM
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем hotelId из URL
	vars := mux.Vars(r)
	hotelID, err := strconv.ParseInt(vars["hotelId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/calendar - Invalid hotel ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidHotelID)
		return
	}

	query := r.URL.Query()

	roomTypeID, err := strconv.ParseInt(query.Get("roomTypeId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/calendar - Invalid roomTypeId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRoomTypeID)
		return
	}

	rateID, err := strconv.ParseInt(query.Get("rateId"), 10, 64)
	if err != nil {
		h.logger.Warn("GET /hotels/{id}/calendar - Invalid rateId: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRateID)
		return
	}

	// Месяц опционален, по умолчанию текущий
	var month *string
	if m := query.Get("month"); m != "" {
		month = &m
	}

	useCaseReq := &getCalendar.Request{
		HotelID:    hotelID,
		RoomTypeID: roomTypeID,
		RateID:     rateID,
		Month:      month,
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getCalendar.ErrInvalidInput):
			h.logger.Warn("GET /hotels/{id}/calendar - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getCalendar.ErrRatePlanNotFound):
			h.logger.Warn("GET /hotels/{id}/calendar - Rate plan not found: rate_id=%d", rateID)
			handlers.RespondNotFound(w, msgRateNotFound)

		case errors.Is(err, getCalendar.ErrScopeMismatch):
			h.logger.Warn("GET /hotels/{id}/calendar - Scope mismatch: hotel_id=%d, rate_id=%d", hotelID, rateID)
			handlers.RespondBadRequest(w, msgScopeMismatch)

		default:
			h.logger.Error("GET /hotels/{id}/calendar - Failed to build calendar: hotel_id=%d, error=%v", hotelID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /hotels/{id}/calendar - Calendar built: hotel_id=%d, rate_id=%d, month=%s",
		hotelID, rateID, result.MonthStart)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
