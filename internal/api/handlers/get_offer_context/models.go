package get_offer_context

import (
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	getOfferContext "github.com/m04kA/SMC-OfferService/internal/usecase/get_offer_context"
)

// OfferContextResponse HTTP response model
type OfferContextResponse struct {
	Location        *LocationResponse `json:"location"`
	Addons          []AddonResponse   `json:"addons"`
	Bookings        []BookingResponse `json:"bookings"`
	HasPendingOffer bool              `json:"hasPendingOffer"`
	Activities      []OptionResponse  `json:"activities"`
	Tiers           []TierResponse    `json:"groupSizes"`
	DefaultDraft    DraftResponse     `json:"defaultDraft"`
	DefaultMessage  string            `json:"defaultMessage"`
	Degraded        []string          `json:"degraded"`
}

type LocationResponse struct {
	ID                int64         `json:"id"`
	Title             string        `json:"title"`
	Price             *float64      `json:"price,omitempty"`
	EnabledActivities []string      `json:"enabledActivities"`
	AdditionalFees    []FeeResponse `json:"additionalFees"`
	BlockedDates      []string      `json:"blockedDates"`
}

type FeeResponse struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

type AddonResponse struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	PriceUnit   string  `json:"priceUnit,omitempty"`
	Description *string `json:"description,omitempty"`
}

type BookingResponse struct {
	ID        int64  `json:"id"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Status    string `json:"status"`
}

type OptionResponse struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type TierResponse struct {
	Value      string  `json:"value"`
	Label      string  `json:"label"`
	HourlyRate float64 `json:"hourlyRate"`
}

// DraftResponse начальное состояние формы
type DraftResponse struct {
	ActivityType        string `json:"activityType"`
	GroupSize           string `json:"groupSize"`
	CustomPriceMode     bool   `json:"customPriceMode"`
	IncludeLocationFees bool   `json:"includeLocationFees"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getOfferContext.Response) *OfferContextResponse {
	out := &OfferContextResponse{
		Addons:          make([]AddonResponse, len(resp.Addons)),
		Bookings:        make([]BookingResponse, len(resp.Bookings)),
		HasPendingOffer: resp.HasPendingOffer,
		Activities:      make([]OptionResponse, len(resp.Activities)),
		Tiers:           make([]TierResponse, len(resp.Tiers)),
		DefaultMessage:  resp.DefaultMessage,
		Degraded:        resp.Degraded,
	}
	if out.Degraded == nil {
		out.Degraded = []string{}
	}

	if resp.Location != nil {
		out.Location = fromLocation(resp.Location)
	}

	for i, a := range resp.Addons {
		out.Addons[i] = AddonResponse{
			ID:          a.ID,
			Name:        a.Name,
			Price:       a.Price,
			PriceUnit:   a.PriceUnit,
			Description: a.Description,
		}
	}

	for i, b := range resp.Bookings {
		out.Bookings[i] = BookingResponse{
			ID:        b.ID,
			StartDate: b.StartDate.UTC().Format(time.RFC3339),
			EndDate:   b.EndDate.UTC().Format(time.RFC3339),
			Status:    string(b.Status),
		}
	}

	for i, a := range resp.Activities {
		out.Activities[i] = OptionResponse{Value: a.Value, Label: a.Label}
	}

	for i, t := range resp.Tiers {
		out.Tiers[i] = TierResponse{Value: string(t.Value), Label: t.Label, HourlyRate: t.HourlyRate}
	}

	if d := resp.DefaultDraft; d != nil {
		out.DefaultDraft = DraftResponse{
			ActivityType:        d.ActivityType,
			GroupSize:           string(d.GroupSizeTier),
			CustomPriceMode:     d.CustomPriceMode(),
			IncludeLocationFees: d.IncludeLocationFees,
		}
	}

	return out
}

func fromLocation(l *domain.Location) *LocationResponse {
	fees := make([]FeeResponse, len(l.AdditionalFees))
	for i, f := range l.AdditionalFees {
		fees[i] = FeeResponse{Name: f.Name, Amount: f.Amount, Type: string(f.Type)}
	}

	blocked := make([]string, len(l.BlockedDates))
	for i, d := range l.BlockedDates {
		blocked[i] = d.UTC().Format(domain.DateFormat)
	}

	activities := l.EnabledActivities
	if activities == nil {
		activities = []string{}
	}

	return &LocationResponse{
		ID:                l.ID,
		Title:             l.Title,
		Price:             l.Price,
		EnabledActivities: activities,
		AdditionalFees:    fees,
		BlockedDates:      blocked,
	}
}
