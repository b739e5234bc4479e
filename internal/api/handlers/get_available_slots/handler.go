package get_available_slots

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-OfferService/internal/api/handlers"
	"github.com/m04kA/SMC-OfferService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/SMC-OfferService/internal/usecase/get_available_slots"
)

const (
	msgInvalidLocationID = "некорректный ID локации"
	msgMissingDate       = "дата обязательна"
	msgInvalidDate       = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput      = "некорректные параметры запроса"
	msgLocationNotFound  = "локация не найдена"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/locations/{locationId}/available-hours
// Query params: date (required, YYYY-MM-DD), startTime (optional, HH:MM или h:MM AM/PM)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем locationId из URL
	locationID, err := strconv.ParseInt(vars["locationId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-hours - Invalid location ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidLocationID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /locations/{id}/available-hours - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Пользователь необязателен: маршрут публичный
	userID, _ := middleware.GetUserID(r.Context())

	useCaseReq, err := ToUseCaseRequest(userID, locationID, dateStr, r.URL.Query().Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /locations/{id}/available-hours - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /locations/{id}/available-hours - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, getAvailableSlots.ErrLocationNotFound):
			h.logger.Warn("GET /locations/{id}/available-hours - Location not found: location_id=%d", locationID)
			handlers.RespondNotFound(w, msgLocationNotFound)

		default:
			h.logger.Error("GET /locations/{id}/available-hours - Failed to get hours: location_id=%d, error=%v",
				locationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(locationID, result)

	h.logger.Info("GET /locations/{id}/available-hours - Hours retrieved: location_id=%d, date=%s, blocked=%d, degraded=%t",
		locationID, dateStr, len(result.BlockedHours), result.Degraded)
	handlers.RespondJSON(w, http.StatusOK, response)
}
