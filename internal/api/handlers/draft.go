package handlers

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/offercalc"
	"github.com/m04kA/SMC-OfferService/pkg/types"
)

var (
	// ErrInvalidDraftDate возвращается при некорректной дате в черновике
	ErrInvalidDraftDate = errors.New("invalid draft date, expected YYYY-MM-DD")

	// ErrInvalidGroupSize возвращается при неизвестном размере группы
	ErrInvalidGroupSize = errors.New("invalid group size")
)

// FeeRequest сбор, заданный автором предложения
type FeeRequest struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"` // fixed | percentage
}

// DraftRequest черновик предложения в теле HTTP запроса.
// Время принимается как "14:00" или "2:00 PM".
type DraftRequest struct {
	Date                string       `json:"date,omitempty"`
	StartTime           string       `json:"startTime,omitempty"`
	EndTime             string       `json:"endTime,omitempty"`
	ActivityType        string       `json:"activityType,omitempty"`
	GroupSize           string       `json:"groupSize,omitempty"`
	Attendees           *int         `json:"attendees,omitempty"`
	CustomPriceMode     bool         `json:"customPriceMode"`
	CustomPrice         *float64     `json:"customPrice,omitempty"` // часовая ставка в режиме своей цены
	SelectedAddons      []int64      `json:"selectedAddons,omitempty"`
	IncludeLocationFees *bool        `json:"includeLocationFees,omitempty"`
	CustomFees          []FeeRequest `json:"customFees,omitempty"`
	Message             string       `json:"message,omitempty"`
}

// ToDomain конвертирует черновик в доменную модель.
// Размер группы берётся из groupSize, иначе вычисляется по attendees, иначе small.
func (r *DraftRequest) ToDomain() (*domain.OfferDraft, error) {
	draft := domain.NewOfferDraft(nil)
	draft.ActivityType = strings.TrimSpace(r.ActivityType)

	if r.Date != "" {
		date, err := time.Parse(domain.DateFormat, r.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidDraftDate, err)
		}
		draft.Date = date
	}

	draft.StartTime = parseDraftTime(r.StartTime)
	draft.EndTime = parseDraftTime(r.EndTime)

	switch {
	case r.GroupSize != "":
		tier, err := domain.ParseGroupSizeTier(r.GroupSize)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidGroupSize, err)
		}
		draft.SelectTier(tier)
	case r.Attendees != nil:
		tier, ok := domain.TierForAttendees(*r.Attendees)
		if !ok {
			return nil, fmt.Errorf("%w: attendees must be positive", ErrInvalidGroupSize)
		}
		draft.SelectTier(tier)
	}

	if r.CustomPriceMode {
		var rate float64
		if r.CustomPrice != nil {
			rate = *r.CustomPrice
		}
		draft.SetManualRate(rate)
	}

	draft.SelectedAddonIDs = r.SelectedAddons
	if r.IncludeLocationFees != nil {
		draft.IncludeLocationFees = *r.IncludeLocationFees
	}

	for _, fee := range r.CustomFees {
		draft.CustomFees = append(draft.CustomFees, domain.Fee{
			Name:   strings.TrimSpace(fee.Name),
			Amount: fee.Amount,
			Type:   domain.FeeType(fee.Type),
		})
	}

	draft.Message = r.Message

	return draft, nil
}

func parseDraftTime(s string) types.TimeString {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return types.TimeString(offercalc.To24Hour(s))
}
