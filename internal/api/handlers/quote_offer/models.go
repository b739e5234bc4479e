package quote_offer

import (
	"errors"

	"github.com/m04kA/SMC-OfferService/internal/offercalc"
	quoteOffer "github.com/m04kA/SMC-OfferService/internal/usecase/quote_offer"
)

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Hours             int      `json:"hours"`
	HourlyRate        float64  `json:"hourlyRate"`
	Base              float64  `json:"base"`
	AddonsTotal       float64  `json:"addonsTotal"`
	LocationFeesTotal float64  `json:"locationFeesTotal"`
	CustomFeesTotal   float64  `json:"customFeesTotal"`
	Total             float64  `json:"total"`
	CustomPriceMode   bool     `json:"customPriceMode"`
	CanSubmit         bool     `json:"canSubmit"`
	Reason            string   `json:"reason,omitempty"` // код причины, по которой отправка недоступна
	Degraded          []string `json:"degraded"`
}

// Коды причин, по которым черновик нельзя отправить
const (
	reasonInvalidPrice        = "invalid_price"
	reasonMissingSchedule     = "missing_schedule"
	reasonMissingActivityType = "missing_activity_type"
	reasonPendingOffer        = "pending_offer"
	reasonUnknown             = "invalid"
)

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *quoteOffer.Response) *QuoteResponse {
	q := resp.Quote
	out := &QuoteResponse{
		Hours:             q.Hours,
		HourlyRate:        q.HourlyRate,
		Base:              q.Base,
		AddonsTotal:       q.AddonsTotal,
		LocationFeesTotal: q.LocationFeesTotal,
		CustomFeesTotal:   q.CustomFeesTotal,
		Total:             q.Total,
		CustomPriceMode:   resp.CustomPriceMode,
		CanSubmit:         resp.ValidationError == nil,
		Reason:            reasonFor(resp.ValidationError),
		Degraded:          resp.Degraded,
	}
	if out.Degraded == nil {
		out.Degraded = []string{}
	}
	return out
}

func reasonFor(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, offercalc.ErrInvalidPrice):
		return reasonInvalidPrice
	case errors.Is(err, offercalc.ErrMissingSchedule):
		return reasonMissingSchedule
	case errors.Is(err, offercalc.ErrMissingActivityType):
		return reasonMissingActivityType
	case errors.Is(err, offercalc.ErrPendingOfferExists):
		return reasonPendingOffer
	default:
		return reasonUnknown
	}
}
