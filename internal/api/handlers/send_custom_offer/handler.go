package send_custom_offer

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-OfferService/internal/api/handlers"
	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	sendCustomOffer "github.com/m04kA/SMC-OfferService/internal/usecase/send_custom_offer"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgMissingUserID       = "отсутствует ID пользователя"
	msgInvalidInput        = "некорректные данные предложения"
	msgInvalidPrice        = "итоговая цена должна быть больше нуля"
	msgMissingSchedule     = "выберите дату, время начала и окончания"
	msgMissingActivityType = "выберите вид активности"
	msgActivityNotEnabled  = "вид активности недоступен для этой локации"
	msgDateNotAvailable    = "выбранная дата недоступна"
	msgSlotNotAvailable    = "выбранные часы уже забронированы"
	msgPendingOffer        = "у получателя уже есть ожидающее предложение по этой локации"
	msgLocationNotFound    = "локация не найдена"
	msgOfferRejected       = "marketplace отклонил предложение"
	msgUpstreamUnavailable = "marketplace временно недоступен"
)

type Handler struct {
	useCase SendCustomOfferUseCase
	logger  Logger
}

func NewHandler(useCase SendCustomOfferUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/offers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /offers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req SendOfferRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /offers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /offers - Failed to parse draft: %v", err)
		handlers.RespondBadRequest(w, err.Error())
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, sendCustomOffer.ErrInvalidInput):
			h.logger.Warn("POST /offers - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, sendCustomOffer.ErrInvalidPrice):
			handlers.RespondBadRequest(w, msgInvalidPrice)

		case errors.Is(err, sendCustomOffer.ErrMissingSchedule):
			handlers.RespondBadRequest(w, msgMissingSchedule)

		case errors.Is(err, sendCustomOffer.ErrMissingActivityType):
			handlers.RespondBadRequest(w, msgMissingActivityType)

		case errors.Is(err, sendCustomOffer.ErrActivityNotEnabled):
			handlers.RespondBadRequest(w, msgActivityNotEnabled)

		case errors.Is(err, sendCustomOffer.ErrDateNotAvailable):
			handlers.RespondBadRequest(w, msgDateNotAvailable)

		case errors.Is(err, sendCustomOffer.ErrSlotNotAvailable):
			h.logger.Warn("POST /offers - Slot not available: user_id=%d, location_id=%d", userID, req.LocationID)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, sendCustomOffer.ErrPendingOfferExists):
			h.logger.Warn("POST /offers - Pending offer exists: user_id=%d, recipient_id=%d, location_id=%d",
				userID, req.RecipientID, req.LocationID)
			handlers.RespondConflict(w, msgPendingOffer)

		case errors.Is(err, sendCustomOffer.ErrLocationNotFound):
			h.logger.Warn("POST /offers - Location not found: location_id=%d", req.LocationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		case errors.Is(err, sendCustomOffer.ErrOfferRejected):
			h.logger.Warn("POST /offers - Offer rejected: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgOfferRejected)

		case errors.Is(err, sendCustomOffer.ErrMarketplaceUnavailable):
			h.logger.Error("POST /offers - Marketplace unavailable: user_id=%d, error=%v", userID, err)
			handlers.RespondBadGateway(w, msgUpstreamUnavailable)

		default:
			h.logger.Error("POST /offers - Failed to send offer: user_id=%d, location_id=%d, error=%v",
				userID, req.LocationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /offers - Offer sent: user_id=%d, recipient_id=%d, location_id=%d, total=%.2f",
		userID, req.RecipientID, req.LocationID, result.Quote.Total)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
