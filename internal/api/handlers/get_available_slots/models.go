package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
	getAvailableSlots "github.com/m04kA/SMC-OfferService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-OfferService/pkg/types"
)

// AvailableHoursResponse HTTP response model
type AvailableHoursResponse struct {
	Date           string       `json:"date"`
	LocationID     int64        `json:"locationId"`
	DateSelectable bool         `json:"dateSelectable"`
	BlockedHours   []int        `json:"blockedHours"`
	StartOptions   []HourOption `json:"startOptions"`
	EndOptions     []HourOption `json:"endOptions"`
	Degraded       bool         `json:"degraded"`
}

// HourOption вариант часа в выпадающем списке
type HourOption struct {
	Value    string `json:"value"` // "14:00"
	Label    string `json:"label"` // "2:00 PM"
	Disabled bool   `json:"disabled"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(locationID int64, resp *getAvailableSlots.Response) *AvailableHoursResponse {
	blocked := resp.BlockedHours
	if blocked == nil {
		blocked = []int{}
	}

	return &AvailableHoursResponse{
		Date:           resp.Date.Format(domain.DateFormat),
		LocationID:     locationID,
		DateSelectable: resp.DateSelectable,
		BlockedHours:   blocked,
		StartOptions:   fromHourOptions(resp.StartOptions),
		EndOptions:     fromHourOptions(resp.EndOptions),
		Degraded:       resp.Degraded,
	}
}

func fromHourOptions(options []domain.HourOption) []HourOption {
	out := make([]HourOption, len(options))
	for i, o := range options {
		out[i] = HourOption{
			Value:    o.Value.String(),
			Label:    o.Label,
			Disabled: o.Disabled,
		}
	}
	return out
}

// ToUseCaseRequest создает запрос use case из query параметров.
// startTime принимается как "14:00" или "2:00 PM".
func ToUseCaseRequest(userID, locationID int64, dateStr, startTimeStr string) (*getAvailableSlots.Request, error) {
	// Парсим дату
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:     userID,
		LocationID: locationID,
		Date:       date,
		StartTime:  types.TimeString(offercalc.To24Hour(startTimeStr)),
	}, nil
}
