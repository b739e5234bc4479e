package marketplace

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

func TestToLocation_PlainJSON(t *testing.T) {
	raw := `{
		"id": 7,
		"title": "Loft",
		"price": 75,
		"pricingMatrix": {"photo": {"small": 40, "medium": 60}},
		"enabledActivities": ["photo", "video"],
		"additionalFees": [{"name": "Cleaning", "amount": 25, "type": "fixed"}, {"name": "Service", "amount": 10, "type": "percentage"}],
		"availability": {"blockedDates": ["2025-06-15", "2025-06-20T00:00:00.000Z"]}
	}`
	var dto LocationDTO
	require.NoError(t, json.Unmarshal([]byte(raw), &dto))

	loc, err := ToLocation(&dto)
	require.NoError(t, err)

	assert.Equal(t, int64(7), loc.ID)
	assert.Equal(t, "Loft", loc.Title)
	require.NotNil(t, loc.Price)
	assert.Equal(t, 75.0, *loc.Price)
	assert.Equal(t, domain.PricingMatrix{"photo": {domain.TierSmall: 40, domain.TierMedium: 60}}, loc.PricingMatrix)
	assert.Equal(t, []string{"photo", "video"}, loc.EnabledActivities)
	assert.Equal(t, []domain.Fee{
		{Name: "Cleaning", Amount: 25, Type: domain.FeeFixed},
		{Name: "Service", Amount: 10, Type: domain.FeePercentage},
	}, loc.AdditionalFees)
	assert.Equal(t, []time.Time{
		time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
	}, loc.BlockedDates)
}

func TestToLocation_DoubleEncodedFields(t *testing.T) {
	raw := `{
		"id": 7,
		"title": "Loft",
		"price": "75.50",
		"pricingMatrix": "{\"photo\":{\"small\":\"40\",\"large\":0,\"huge\":99}}",
		"enabledActivities": "[\"photo\"]",
		"additionalFees": "[{\"name\":\"Cleaning\",\"amount\":\"25\",\"type\":\"fixed\"}]",
		"availability": "{\"blockedDates\":[]}"
	}`
	var dto LocationDTO
	require.NoError(t, json.Unmarshal([]byte(raw), &dto))

	loc, err := ToLocation(&dto)
	require.NoError(t, err)

	assert.Equal(t, 75.5, *loc.Price)
	assert.Equal(t, domain.PricingMatrix{"photo": {domain.TierSmall: 40, domain.TierLarge: 0}}, loc.PricingMatrix)
	assert.Equal(t, []string{"photo"}, loc.EnabledActivities)
	assert.Equal(t, []domain.Fee{{Name: "Cleaning", Amount: 25, Type: domain.FeeFixed}}, loc.AdditionalFees)
	assert.Empty(t, loc.BlockedDates)
}

func TestToLocation_MissingOptionalFields(t *testing.T) {
	var dto LocationDTO
	require.NoError(t, json.Unmarshal([]byte(`{"id": 3, "title": "Studio", "price": null, "pricingMatrix": "", "enabledActivities": null}`), &dto))

	loc, err := ToLocation(&dto)
	require.NoError(t, err)

	assert.Nil(t, loc.Price)
	assert.Empty(t, loc.PricingMatrix)
	assert.Empty(t, loc.EnabledActivities)
	assert.Empty(t, loc.AdditionalFees)
	assert.False(t, loc.RequiresActivityType())
}

func TestToLocation_InvalidPayload(t *testing.T) {
	tests := map[string]string{
		"matrix":     `{"pricingMatrix": "{not json"}`,
		"price":      `{"price": "abc"}`,
		"activities": `{"enabledActivities": 42}`,
		"date":       `{"availability": {"blockedDates": ["tomorrow"]}}`,
	}

	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			var dto LocationDTO
			require.NoError(t, json.Unmarshal([]byte(raw), &dto))

			_, err := ToLocation(&dto)
			assert.ErrorIs(t, err, ErrInvalidResponse)
		})
	}
}

func TestToAddons(t *testing.T) {
	var dtos []AddonDTO
	require.NoError(t, json.Unmarshal([]byte(`[
		{"id": 1, "name": "Lighting kit", "price": "50.00", "priceUnit": "flat"},
		{"id": 2, "name": "Backdrop", "price": 15, "description": "White"}
	]`), &dtos))

	addons, err := ToAddons(dtos)
	require.NoError(t, err)
	require.Len(t, addons, 2)

	assert.Equal(t, 50.0, addons[0].Price)
	assert.Equal(t, "flat", addons[0].PriceUnit)
	assert.Nil(t, addons[0].Description)
	assert.Equal(t, 15.0, addons[1].Price)
	require.NotNil(t, addons[1].Description)
	assert.Equal(t, "White", *addons[1].Description)
}

func TestToBookings(t *testing.T) {
	dtos := []BookingDTO{
		{ID: 1, LocationID: 7, StartDate: "2025-06-10T20:00:00.000Z", EndDate: "2025-06-11T00:00:00.000Z", Status: "Confirmed"},
		{ID: 2, LocationID: 7, StartDate: "2025-06-10 09:00:00", EndDate: "2025-06-10 11:00:00", Status: "pending"},
	}

	bookings, err := ToBookings(dtos)
	require.NoError(t, err)
	require.Len(t, bookings, 2)

	assert.Equal(t, domain.StatusConfirmed, bookings[0].Status)
	assert.Equal(t, 20, bookings[0].StartDate.UTC().Hour())
	assert.Equal(t, 0, bookings[0].EndDate.UTC().Hour())
	assert.Equal(t, 9, bookings[1].StartDate.Hour())

	_, err = ToBookings([]BookingDTO{{ID: 3, StartDate: "yesterday"}})
	assert.ErrorIs(t, err, ErrInvalidResponse)
}

func TestFromFees(t *testing.T) {
	out := FromFees([]domain.Fee{{Name: "Permit", Amount: 30, Type: domain.FeeFixed}})
	assert.Equal(t, []OutgoingFee{{Name: "Permit", Amount: 30, Type: "fixed"}}, out)

	assert.NotNil(t, FromFees(nil))
}
