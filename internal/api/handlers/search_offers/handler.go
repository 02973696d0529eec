package search_offers

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/aidosbay/HBP-RatesService/internal/api/handlers"
	searchOffers "github.com/aidosbay/HBP-RatesService/internal/usecase/search_offers"
)

const (
	msgInvalidQueryParams = "некорректные параметры запроса"
)

type Handler struct {
	useCase SearchOffersUseCase
	logger  Logger
}

func NewHandler(useCase SearchOffersUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers?city=&minStars=&maxPrice=&meal=&refundable=&lookaheadDays=&limit=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	useCaseReq, err := parseQuery(r.URL.Query())
	if err != nil {
		h.logger.Warn("GET /offers - Invalid query params: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQueryParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if errors.Is(err, searchOffers.ErrInvalidInput) {
			h.logger.Warn("GET /offers - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQueryParams)
			return
		}
		h.logger.Error("GET /offers - Failed to search offers: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /offers - Found %d offers", len(result.Offers))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}

// parseQuery разбирает опциональные фильтры из query-параметров
func parseQuery(query url.Values) (*searchOffers.Request, error) {
	req := &searchOffers.Request{}

	if city := query.Get("city"); city != "" {
		req.City = &city
	}

	if raw := query.Get("minStars"); raw != "" {
		minStars, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.MinStars = &minStars
	}

	if raw := query.Get("maxPrice"); raw != "" {
		maxPrice, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		req.MaxPrice = &maxPrice
	}

	if meal := query.Get("meal"); meal != "" {
		req.Meal = &meal
	}

	if raw := query.Get("refundable"); raw != "" {
		refundable, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, err
		}
		req.Refundable = &refundable
	}

	if raw := query.Get("lookaheadDays"); raw != "" {
		lookahead, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.LookaheadDays = lookahead
	}

	if raw := query.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			return nil, err
		}
		req.Limit = limit
	}

	return req, nil
}
