package models

import (
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// Максимальный размер страницы списка предложений
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Request модели

// GetSenderOffersRequest запрос на получение предложений автора
type GetSenderOffersRequest struct {
	UserID   int64 `json:"userId"`   // кто запрашивает
	SenderID int64 `json:"senderId"` // чьи предложения
	Limit    int   `json:"limit"`
	Offset   int   `json:"offset"`
}

// Response модели

// FeeResponse сбор в ответе
type FeeResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

// OfferResponse ответ с данными отправленного предложения
type OfferResponse struct {
	ID              int64         `json:"id"`
	SenderID        int64         `json:"senderId"`
	RecipientID     int64         `json:"recipientId"`
	LocationID      int64         `json:"locationId"`
	Date            string        `json:"date"`      // "2025-10-15"
	StartTime       string        `json:"startTime"` // "10:00"
	EndTime         string        `json:"endTime"`
	ActivityType    *string       `json:"activityType,omitempty"`
	GroupSize       string        `json:"groupSize"`
	HourlyRate      float64       `json:"hourlyRate"`
	CustomPriceMode bool          `json:"customPriceMode"`
	TotalPrice      float64       `json:"totalPrice"`
	SelectedAddons  []int64       `json:"selectedAddons"`
	AdditionalFees  []FeeResponse `json:"additionalFees"`
	Message         string        `json:"message"`
	CreatedAt       time.Time     `json:"createdAt"`
}

// OfferListResponse ответ со списком предложений
type OfferListResponse struct {
	Offers []OfferResponse `json:"offers"`
}

// Методы конвертации

// FromDomainFees конвертирует сборы в DTO
func FromDomainFees(fees []domain.Fee) []FeeResponse {
	resp := make([]FeeResponse, 0, len(fees))
	for _, fee := range fees {
		resp = append(resp, FeeResponse{Name: fee.Name, Amount: fee.Amount, Type: string(fee.Type)})
	}
	return resp
}

// FromDomainOffer конвертирует domain модель в DTO
func FromDomainOffer(o *domain.SentOffer) *OfferResponse {
	if o == nil {
		return nil
	}

	addons := o.SelectedAddons
	if addons == nil {
		addons = []int64{}
	}

	return &OfferResponse{
		ID:              o.ID,
		SenderID:        o.SenderID,
		RecipientID:     o.RecipientID,
		LocationID:      o.LocationID,
		Date:            o.Date.Format(domain.DateFormat),
		StartTime:       o.StartTime.String(),
		EndTime:         o.EndTime.String(),
		ActivityType:    o.ActivityType,
		GroupSize:       string(o.GroupSize),
		HourlyRate:      o.HourlyRate,
		CustomPriceMode: o.CustomPriceMode,
		TotalPrice:      o.TotalPrice,
		SelectedAddons:  addons,
		AdditionalFees:  FromDomainFees(o.AdditionalFees),
		Message:         o.Message,
		CreatedAt:       o.CreatedAt,
	}
}

// FromDomainOfferList конвертирует список domain моделей в DTO
func FromDomainOfferList(offers []*domain.SentOffer) *OfferListResponse {
	resp := &OfferListResponse{
		Offers: make([]OfferResponse, 0, len(offers)),
	}
	for _, o := range offers {
		resp.Offers = append(resp.Offers, *FromDomainOffer(o))
	}
	return resp
}
