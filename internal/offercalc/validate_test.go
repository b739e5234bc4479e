package offercalc

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

func completeDraft() *domain.OfferDraft {
	return &domain.OfferDraft{
		Date:          time.Date(2025, time.June, 10, 0, 0, 0, 0, time.UTC),
		StartTime:     "10:00",
		EndTime:       "12:00",
		ActivityType:  domain.ActivityPhoto,
		GroupSizeTier: domain.TierSmall,
	}
}

func TestValidateSubmission(t *testing.T) {
	withActivities := &domain.Location{EnabledActivities: []string{domain.ActivityPhoto}}
	withoutActivities := &domain.Location{}

	tests := []struct {
		name       string
		mutate     func(d *domain.OfferDraft)
		total      float64
		location   *domain.Location
		hasPending bool
		wantErr    error
	}{
		{name: "ok", total: 80, location: withActivities},
		{name: "pending offer", total: 80, location: withActivities, hasPending: true, wantErr: ErrPendingOfferExists},
		{name: "pending wins over price", total: 0, location: withActivities, hasPending: true, wantErr: ErrPendingOfferExists},
		{name: "zero total", total: 0, location: withActivities, wantErr: ErrInvalidPrice},
		{name: "negative total", total: -1, location: withActivities, wantErr: ErrInvalidPrice},
		{
			name:     "missing date",
			mutate:   func(d *domain.OfferDraft) { d.Date = time.Time{} },
			total:    80,
			location: withActivities,
			wantErr:  ErrMissingSchedule,
		},
		{
			name:     "missing end time",
			mutate:   func(d *domain.OfferDraft) { d.EndTime = "" },
			total:    80,
			location: withActivities,
			wantErr:  ErrMissingSchedule,
		},
		{
			name:     "price checked before schedule",
			mutate:   func(d *domain.OfferDraft) { d.StartTime = "" },
			total:    0,
			location: withActivities,
			wantErr:  ErrInvalidPrice,
		},
		{
			name:     "missing activity",
			mutate:   func(d *domain.OfferDraft) { d.ActivityType = "" },
			total:    80,
			location: withActivities,
			wantErr:  ErrMissingActivityType,
		},
		{
			name:     "activity optional without enabled activities",
			mutate:   func(d *domain.OfferDraft) { d.ActivityType = "" },
			total:    80,
			location: withoutActivities,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			if tt.mutate != nil {
				tt.mutate(draft)
			}

			err := ValidateSubmission(draft, tt.total, tt.location, tt.hasPending)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidateDraft(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(d *domain.OfferDraft)
		wantErr bool
	}{
		{name: "ok"},
		{name: "empty times are allowed", mutate: func(d *domain.OfferDraft) { d.StartTime, d.EndTime = "", "" }},
		{name: "end of day", mutate: func(d *domain.OfferDraft) { d.EndTime = "24:00" }},
		{name: "bad start", mutate: func(d *domain.OfferDraft) { d.StartTime = "2 PM" }, wantErr: true},
		{name: "bad end", mutate: func(d *domain.OfferDraft) { d.EndTime = "25:00" }, wantErr: true},
		{name: "unknown tier", mutate: func(d *domain.OfferDraft) { d.GroupSizeTier = "huge" }, wantErr: true},
		{name: "negative manual rate", mutate: func(d *domain.OfferDraft) { d.SetManualRate(-1) }, wantErr: true},
		{name: "unknown fee type", mutate: func(d *domain.OfferDraft) {
			d.CustomFees = []domain.Fee{{Name: "Tip", Amount: 5, Type: "bonus"}}
		}, wantErr: true},
		{name: "negative fee", mutate: func(d *domain.OfferDraft) {
			d.CustomFees = []domain.Fee{{Name: "Tip", Amount: -5, Type: domain.FeeFixed}}
		}, wantErr: true},
		{name: "blank fee row is allowed", mutate: func(d *domain.OfferDraft) {
			d.CustomFees = []domain.Fee{{Type: domain.FeeFixed}}
		}},
		{name: "too many fees", mutate: func(d *domain.OfferDraft) {
			d.CustomFees = make([]domain.Fee, domain.MaxCustomFees+1)
			for i := range d.CustomFees {
				d.CustomFees[i].Type = domain.FeeFixed
			}
		}, wantErr: true},
		{name: "long message", mutate: func(d *domain.OfferDraft) {
			d.Message = string(make([]byte, domain.MaxMessageLength+1))
		}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := completeDraft()
			if tt.mutate != nil {
				tt.mutate(draft)
			}

			err := ValidateDraft(draft)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDraft)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
