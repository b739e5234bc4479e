package get_user_offers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfferService/internal/api/handlers"
	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	"github.com/m04kA/SMC-OfferService/internal/service/offers"
	"github.com/m04kA/SMC-OfferService/internal/service/offers/models"
)

const (
	msgInvalidUserID     = "некорректный ID пользователя"
	msgInvalidPagination = "некорректные параметры limit/offset"
	msgMissingUserID     = "отсутствует ID пользователя"
	msgForbidden         = "доступ запрещен"
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

// Handle GET /api/v1/users/{userId}/offers
// Query params: limit, offset (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем userId из URL
	senderID, err := strconv.ParseInt(mux.Vars(r)["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{userId}/offers - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /users/{userId}/offers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	limit, err := intQuery(r, "limit")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}
	offset, err := intQuery(r, "offset")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidPagination)
		return
	}

	// Формируем запрос к сервису
	serviceReq := &models.GetSenderOffersRequest{
		UserID:   userID,
		SenderID: senderID,
		Limit:    limit,
		Offset:   offset,
	}

	result, err := h.service.GetSenderOffers(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, offers.ErrAccessDenied):
			h.logger.Warn("GET /users/{userId}/offers - Access denied: sender_id=%d, user_id=%d", senderID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, offers.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPagination)

		default:
			h.logger.Error("GET /users/{userId}/offers - Failed to get offers: sender_id=%d, error=%v", senderID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{userId}/offers - Offers retrieved: sender_id=%d, count=%d",
		senderID, len(result.Offers))
	handlers.RespondJSON(w, http.StatusOK, result)
}

func intQuery(r *http.Request, name string) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
