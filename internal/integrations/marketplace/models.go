package marketplace

import "encoding/json"

// LocationDTO документ локации в том виде, в котором его отдаёт API.
// Поля, которые API может отдать строкой с JSON внутри, хранятся как json.RawMessage
// и разбираются один раз в ingest.go.
type LocationDTO struct {
	ID                int64           `json:"id"`
	Title             string          `json:"title"`
	Price             json.RawMessage `json:"price"`
	PricingMatrix     json.RawMessage `json:"pricingMatrix"`
	EnabledActivities json.RawMessage `json:"enabledActivities"`
	AdditionalFees    json.RawMessage `json:"additionalFees"`
	Availability      json.RawMessage `json:"availability"`
}

// AddonDTO доп. услуга локации
type AddonDTO struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       json.RawMessage `json:"price"`
	PriceUnit   string          `json:"priceUnit"`
	Description *string         `json:"description"`
}

// BookingDTO бронирование локации
type BookingDTO struct {
	ID         int64  `json:"id"`
	LocationID int64  `json:"locationId"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	Status     string `json:"status"`
}

// FeeDTO сбор в формате API
type FeeDTO struct {
	Name   string          `json:"name"`
	Amount json.RawMessage `json:"amount,omitempty"`
	Type   string          `json:"type"`
}

type availabilityDTO struct {
	BlockedDates []string `json:"blockedDates"`
}

// PendingOfferResponse ответ проверки ожидающего предложения
type PendingOfferResponse struct {
	HasPendingOffer bool `json:"hasPendingOffer"`
}

// OutgoingFee сбор в теле отправляемого предложения
type OutgoingFee struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// CustomOfferRequest тело POST /api/messages/custom-offer
type CustomOfferRequest struct {
	LocationID     int64         `json:"locationId"`
	RecipientID    int64         `json:"recipientId"`
	CustomPrice    float64       `json:"customPrice"`
	Message        string        `json:"message"`
	Date           string        `json:"date"`      // yyyy-MM-dd
	StartTime      string        `json:"startTime"` // HH:MM
	EndTime        string        `json:"endTime"`   // HH:MM
	Attendees      string        `json:"attendees"` // ключ размера группы
	GroupSize      string        `json:"groupSize"`
	ActivityType   string        `json:"activityType"`
	SelectedAddons []int64       `json:"selectedAddons"`
	AdditionalFees []OutgoingFee `json:"additionalFees"`
}

// CustomOfferResponse ответ API на отправку предложения. Идентификатор сообщения может отсутствовать.
type CustomOfferResponse struct {
	ID      *int64 `json:"id,omitempty"`
	Message string `json:"message,omitempty"`
}

// ErrorResponse модель ошибки от API
type ErrorResponse struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}
