package domain

import (
	"time"

	"github.com/m04kA/SMC-OfferService/pkg/types"
)

// RateSource tells where the hourly rate of a draft comes from.
// A derived rate is looked up in the pricing matrix from the draft's current
// activity type and tier each time it is resolved; a manual rate is the value
// the author typed in. The zero value is a derived rate.
type RateSource struct {
	manual *float64
}

// DerivedRate returns a rate source resolved from the pricing matrix
func DerivedRate() RateSource {
	return RateSource{}
}

// ManualRate returns a rate source fixed to an operator-entered value
func ManualRate(value float64) RateSource {
	return RateSource{manual: &value}
}

// IsManual returns true for operator-entered rates
func (r RateSource) IsManual() bool {
	return r.manual != nil
}

// ManualValue returns the operator-entered value; ok is false for derived rates
func (r RateSource) ManualValue() (value float64, ok bool) {
	if r.manual == nil {
		return 0, false
	}
	return *r.manual, true
}

// OfferDraft is the mutable state of one custom offer being composed.
// It lives for a single dialog/request and is never persisted.
type OfferDraft struct {
	Date                time.Time // calendar date, zero if not chosen
	StartTime           types.TimeString
	EndTime             types.TimeString
	ActivityType        string
	GroupSizeTier       GroupSizeTier
	Rate                RateSource
	SelectedAddonIDs    []int64
	IncludeLocationFees bool
	CustomFees          []Fee
	Message             string
}

// NewOfferDraft creates the initial draft for a location: first enabled activity,
// small group, derived rate, location fees included.
func NewOfferDraft(location *Location) *OfferDraft {
	draft := &OfferDraft{
		GroupSizeTier:       TierSmall,
		Rate:                DerivedRate(),
		IncludeLocationFees: true,
	}
	if location != nil {
		draft.ActivityType = location.DefaultActivityType()
	}
	return draft
}

// CustomPriceMode returns true if the author overrides the hourly rate
func (d *OfferDraft) CustomPriceMode() bool {
	return d.Rate.IsManual()
}

// SelectActivity changes the activity type. A derived rate follows automatically.
func (d *OfferDraft) SelectActivity(activityType string) {
	d.ActivityType = activityType
}

// SelectTier changes the group size tier. A derived rate follows automatically.
func (d *OfferDraft) SelectTier(tier GroupSizeTier) {
	d.GroupSizeTier = tier
}

// SetManualRate switches the draft to custom price mode with the given rate
func (d *OfferDraft) SetManualRate(value float64) {
	d.Rate = ManualRate(value)
}

// UseDerivedRate leaves custom price mode
func (d *OfferDraft) UseDerivedRate() {
	d.Rate = DerivedRate()
}

// HasSchedule returns true if date, start and end time are all present
func (d *OfferDraft) HasSchedule() bool {
	return !d.Date.IsZero() && !d.StartTime.IsZero() && !d.EndTime.IsZero()
}

// ValidCustomFees returns the author-defined fees that take part in the total, in order
func (d *OfferDraft) ValidCustomFees() []Fee {
	fees := make([]Fee, 0, len(d.CustomFees))
	for _, fee := range d.CustomFees {
		if fee.IsValid() {
			fees = append(fees, fee)
		}
	}
	return fees
}

// DefaultOfferMessage is the message sent when the author leaves it blank
func DefaultOfferMessage(location *Location) string {
	if location == nil || location.Title == "" {
		return "Custom offer"
	}
	return "Custom offer for " + location.Title
}

// SentOffer is the journal record of a custom offer forwarded to the marketplace
type SentOffer struct {
	ID              int64
	IdempotencyKey  string
	SenderID        int64
	RecipientID     int64
	LocationID      int64
	Date            time.Time
	StartTime       types.TimeString
	EndTime         types.TimeString
	ActivityType    *string
	GroupSize       GroupSizeTier
	HourlyRate      float64
	CustomPriceMode bool
	TotalPrice      float64
	SelectedAddons  []int64
	AdditionalFees  []Fee
	Message         string
	CreatedAt       time.Time
}

// IsParticipant returns true if the user is the author or the recipient of the offer
func (o *SentOffer) IsParticipant(userID int64) bool {
	return o.SenderID == userID || o.RecipientID == userID
}
