package quote_stay

import (
	"errors"
	"net/http"

	"github.com/aidosbay/HBP-RatesService/internal/api/handlers"
	quoteStay "github.com/aidosbay/HBP-RatesService/internal/usecase/quote_stay"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidRequest     = "некорректные параметры запроса"
	msgRateNotFound       = "тариф не найден"
)

type Handler struct {
	useCase QuoteStayUseCase
	logger  Logger
}

func NewHandler(useCase QuoteStayUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteStayRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quoteStay.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, quoteStay.ErrRatePlanNotFound):
			h.logger.Warn("POST /quotes - Rate plan not found: rate_id=%d", req.RateID)
			handlers.RespondNotFound(w, msgRateNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to quote stay: rate_id=%d, error=%v", req.RateID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	// Отказная котировка — это не ошибка HTTP: клиент получает 200 с
	// ok=false и полным списком замечаний
	h.logger.Info("POST /quotes - Quote built: rate_id=%d, total=%d, ok=%t",
		result.RateID, result.Total, result.OK)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
