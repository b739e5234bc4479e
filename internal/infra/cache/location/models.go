package location

import (
	"time"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// locationEntry запись документа локации в кэше
type locationEntry struct {
	ID                int64                         `json:"id"`
	Title             string                        `json:"title"`
	Price             *float64                      `json:"price,omitempty"`
	PricingMatrix     map[string]map[string]float64 `json:"pricing_matrix"`
	EnabledActivities []string                      `json:"enabled_activities"`
	AdditionalFees    []feeEntry                    `json:"additional_fees"`
	BlockedDates      []string                      `json:"blocked_dates"`
}

type feeEntry struct {
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Type   string  `json:"type"`
}

type addonEntry struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	PriceUnit   string  `json:"price_unit"`
	Description *string `json:"description,omitempty"`
}

func newLocationEntry(loc *domain.Location) locationEntry {
	matrix := make(map[string]map[string]float64, len(loc.PricingMatrix))
	for activity, pricing := range loc.PricingMatrix {
		tiers := make(map[string]float64, len(pricing))
		for tier, rate := range pricing {
			tiers[string(tier)] = rate
		}
		matrix[activity] = tiers
	}

	fees := make([]feeEntry, 0, len(loc.AdditionalFees))
	for _, fee := range loc.AdditionalFees {
		fees = append(fees, feeEntry{Name: fee.Name, Amount: fee.Amount, Type: string(fee.Type)})
	}

	dates := make([]string, 0, len(loc.BlockedDates))
	for _, d := range loc.BlockedDates {
		dates = append(dates, d.UTC().Format(domain.DateFormat))
	}

	return locationEntry{
		ID:                loc.ID,
		Title:             loc.Title,
		Price:             loc.Price,
		PricingMatrix:     matrix,
		EnabledActivities: loc.EnabledActivities,
		AdditionalFees:    fees,
		BlockedDates:      dates,
	}
}

func (e *locationEntry) toDomain() (*domain.Location, error) {
	matrix := make(domain.PricingMatrix, len(e.PricingMatrix))
	for activity, tiers := range e.PricingMatrix {
		pricing := make(domain.TierPricing, len(tiers))
		for tier, rate := range tiers {
			pricing[domain.GroupSizeTier(tier)] = rate
		}
		matrix[activity] = pricing
	}

	fees := make([]domain.Fee, 0, len(e.AdditionalFees))
	for _, fee := range e.AdditionalFees {
		fees = append(fees, domain.Fee{Name: fee.Name, Amount: fee.Amount, Type: domain.FeeType(fee.Type)})
	}

	dates := make([]time.Time, 0, len(e.BlockedDates))
	for _, s := range e.BlockedDates {
		d, err := time.Parse(domain.DateFormat, s)
		if err != nil {
			return nil, err
		}
		dates = append(dates, d)
	}

	return &domain.Location{
		ID:                e.ID,
		Title:             e.Title,
		Price:             e.Price,
		PricingMatrix:     matrix,
		EnabledActivities: e.EnabledActivities,
		AdditionalFees:    fees,
		BlockedDates:      dates,
	}, nil
}

func newAddonEntries(addons []domain.Addon) []addonEntry {
	entries := make([]addonEntry, 0, len(addons))
	for _, a := range addons {
		entries = append(entries, addonEntry{
			ID:          a.ID,
			Name:        a.Name,
			Price:       a.Price,
			PriceUnit:   a.PriceUnit,
			Description: a.Description,
		})
	}
	return entries
}

func addonsToDomain(entries []addonEntry) []domain.Addon {
	addons := make([]domain.Addon, 0, len(entries))
	for _, e := range entries {
		addons = append(addons, domain.Addon{
			ID:          e.ID,
			Name:        e.Name,
			Price:       e.Price,
			PriceUnit:   e.PriceUnit,
			Description: e.Description,
		})
	}
	return addons
}
