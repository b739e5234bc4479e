package get_offer_context

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfferService/internal/api/handlers"
	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	getOfferContext "github.com/m04kA/SMC-OfferService/internal/usecase/get_offer_context"
)

const (
	msgInvalidLocationID  = "некорректный ID локации"
	msgInvalidRecipientID = "некорректный ID получателя"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidInput       = "некорректные параметры запроса"
	msgLocationNotFound   = "локация не найдена"
)

type Handler struct {
	useCase GetOfferContextUseCase
	logger  Logger
}

func NewHandler(useCase GetOfferContextUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/offer-context
// Query params: recipientId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	locationID, err := strconv.ParseInt(mux.Vars(r)["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/offer-context - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	var recipientID int64
	if raw := r.URL.Query().Get("recipientId"); raw != "" {
		recipientID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			h.logger.Warn("GET /locations/{id}/offer-context - Invalid recipient ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRecipientID)
			return
		}
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /locations/{id}/offer-context - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getOfferContext.Request{
		UserID:      userID,
		LocationID:  locationID,
		RecipientID: recipientID,
	})
	if err != nil {
		switch {
		case errors.Is(err, getOfferContext.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/offer-context - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getOfferContext.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/offer-context - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/{id}/offer-context - Failed to build context: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /locations/{id}/offer-context - Context built: location_id=%d, user_id=%d, degraded=%v",
		locationID, userID, result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
