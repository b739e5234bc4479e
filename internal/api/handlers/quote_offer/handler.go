package quote_offer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfferService/internal/api/handlers"
	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	quoteOffer "github.com/m04kA/SMC-OfferService/internal/usecase/quote_offer"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocationID  = "некорректный ID локации"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidDraft       = "некорректный черновик предложения"
	msgLocationNotFound   = "локация не найдена"
)

type Handler struct {
	useCase QuoteOfferUseCase
	logger  Logger
}

func NewHandler(useCase QuoteOfferUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/locations/{locationId}/offers/quote
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /locations/{id}/offers/quote - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /locations/{id}/offers/quote - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req handlers.DraftRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /locations/{id}/offers/quote - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	draft, err := req.ToDomain()
	if err != nil {
		h.logger.Warn("POST /locations/{id}/offers/quote - Invalid draft: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), &quoteOffer.Request{
		UserID:     userID,
		LocationID: locationID,
		Draft:      draft,
	})
	if err != nil {
		switch {
		case errors.Is(err, quoteOffer.ErrInvalidInput):
			h.logger.Warn("POST /locations/{id}/offers/quote - Invalid draft: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDraft)

		case errors.Is(err, quoteOffer.ErrLocationNotFound):
			h.logger.Warn("POST /locations/{id}/offers/quote - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("POST /locations/{id}/offers/quote - Failed to quote: location_id=%d, error=%v", locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /locations/{id}/offers/quote - Quoted: location_id=%d, user_id=%d, total=%.2f",
		locationID, userID, result.Quote.Total)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
