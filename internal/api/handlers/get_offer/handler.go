package get_offer

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfferService/internal/api/handlers"
	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	"github.com/m04kA/SMC-OfferService/internal/service/offers"
)

const (
	msgInvalidOfferID = "некорректный ID предложения"
	msgNotFound       = "предложение не найдено"
	msgMissingUserID  = "отсутствует ID пользователя"
	msgForbidden      = "доступ запрещен"
)

type Handler struct {
	service OfferService
	logger  Logger
}

func NewHandler(service OfferService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/offers/{offerId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем offerId из URL
	offerID, err := strconv.ParseInt(mux.Vars(r)["offerId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /offers/{id} - Invalid offer ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOfferID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /offers/{id} - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Сервис сам проверит, что пользователь участник предложения
	offer, err := h.service.GetByID(r.Context(), offerID, userID)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrOfferNotFound):
			h.logger.Warn("GET /offers/{id} - Offer not found: offer_id=%d", offerID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, offers.ErrAccessDenied):
			h.logger.Warn("GET /offers/{id} - Access denied: offer_id=%d, user_id=%d", offerID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /offers/{id} - Failed to get offer: offer_id=%d, error=%v", offerID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /offers/{id} - Offer retrieved: offer_id=%d, user_id=%d", offerID, userID)
	handlers.RespondJSON(w, http.StatusOK, offer)
}
