package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/pkg/types"
)

// Request модель запроса на получение доступных часов
type Request struct {
	UserID     int64            // ID пользователя (для логирования, не влияет на результат)
	LocationID int64            // ID локации
	Date       time.Time        // Дата (без времени)
	StartTime  types.TimeString // Выбранное время начала, "" - не выбрано
}

// Response модель ответа с доступными часами
type Response struct {
	Date           time.Time
	DateSelectable bool  // дата не в прошлом и не заблокирована локацией
	BlockedHours   []int // по возрастанию
	StartOptions   []domain.HourOption
	EndOptions     []domain.HourOption // все недоступны, если время начала не выбрано
	Degraded       bool                // бронирования или документ локации не удалось получить
}
