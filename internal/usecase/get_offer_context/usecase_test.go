package get_offer_context

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-OfferService/pkg/logger"
	"github.com/m04kA/SMC-OfferService/pkg/ptr"
)

type fakeClient struct {
	location    *domain.Location
	locationErr error
	addons      []domain.Addon
	addonsErr   error
	bookings    []*domain.Booking
	bookingsErr error
	hasPending  bool
	pendingErr  error
	pendingAsks int
}

func (f *fakeClient) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	return f.location, f.locationErr
}

func (f *fakeClient) GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error) {
	return f.addons, f.addonsErr
}

func (f *fakeClient) GetLocationBookings(ctx context.Context, locationID int64) ([]*domain.Booking, error) {
	return f.bookings, f.bookingsErr
}

func (f *fakeClient) CheckPendingOffer(ctx context.Context, userID, recipientID, locationID int64) (bool, error) {
	f.pendingAsks++
	return f.hasPending, f.pendingErr
}

func loft() *domain.Location {
	return &domain.Location{
		ID:                7,
		Title:             "Loft",
		Price:             ptr.Ptr(20.0),
		PricingMatrix:     domain.PricingMatrix{"photo": {domain.TierSmall: 40, domain.TierMedium: 60}},
		EnabledActivities: []string{"photo", "event"},
	}
}

func TestUseCase_Execute(t *testing.T) {
	client := &fakeClient{
		location: loft(),
		addons:   []domain.Addon{{ID: 1, Name: "Lighting kit", Price: 50}},
		bookings: []*domain.Booking{{ID: 1, Status: domain.StatusConfirmed,
			StartDate: time.Date(2025, time.June, 10, 9, 0, 0, 0, time.UTC),
			EndDate:   time.Date(2025, time.June, 10, 11, 0, 0, 0, time.UTC)}},
		hasPending: true,
	}
	uc := NewUseCase(client, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, LocationID: 7, RecipientID: 55})
	require.NoError(t, err)

	assert.Equal(t, "Loft", resp.Location.Title)
	assert.Len(t, resp.Addons, 1)
	assert.Len(t, resp.Bookings, 1)
	assert.True(t, resp.HasPendingOffer)
	assert.Empty(t, resp.Degraded)

	assert.Equal(t, "photo", resp.DefaultDraft.ActivityType)
	assert.Equal(t, domain.TierSmall, resp.DefaultDraft.GroupSizeTier)
	assert.True(t, resp.DefaultDraft.IncludeLocationFees)
	assert.False(t, resp.DefaultDraft.CustomPriceMode())
	assert.Equal(t, "Custom offer for Loft", resp.DefaultMessage)

	assert.Equal(t, []ActivityOption{{Value: "photo", Label: "Photo Shoot"}, {Value: "event", Label: "Event"}}, resp.Activities)
	require.Len(t, resp.Tiers, 4)
	assert.Equal(t, 40.0, resp.Tiers[0].HourlyRate)
	assert.Equal(t, 60.0, resp.Tiers[1].HourlyRate)
	assert.Equal(t, 20.0, resp.Tiers[2].HourlyRate, "unset tier falls back to location price")
	assert.Equal(t, "31+ people", resp.Tiers[3].Label)
}

func TestUseCase_Execute_DegradesGracefully(t *testing.T) {
	client := &fakeClient{
		location:    loft(),
		addonsErr:   marketplace.ErrNetworkFetch,
		bookingsErr: errors.New("timeout"),
		pendingErr:  marketplace.ErrNetworkFetch,
	}
	uc := NewUseCase(client, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, LocationID: 7, RecipientID: 55})
	require.NoError(t, err)

	assert.NotNil(t, resp.Location)
	assert.NotNil(t, resp.Addons)
	assert.Empty(t, resp.Addons)
	assert.Empty(t, resp.Bookings)
	assert.False(t, resp.HasPendingOffer)
	assert.ElementsMatch(t, []string{SourceAddons, SourceBookings, SourcePendingCheck}, resp.Degraded)
}

func TestUseCase_Execute_LocationUnavailable(t *testing.T) {
	client := &fakeClient{locationErr: marketplace.ErrNetworkFetch}
	uc := NewUseCase(client, logger.Nop())

	resp, err := uc.Execute(context.Background(), &Request{UserID: 10, LocationID: 7})
	require.NoError(t, err)

	assert.Nil(t, resp.Location)
	assert.Equal(t, []string{SourceLocation}, resp.Degraded)
	assert.Equal(t, "", resp.DefaultDraft.ActivityType)
	assert.Empty(t, resp.Activities)
	assert.Equal(t, "Custom offer", resp.DefaultMessage)
}

func TestUseCase_Execute_LocationNotFound(t *testing.T) {
	client := &fakeClient{locationErr: marketplace.ErrLocationNotFound}
	uc := NewUseCase(client, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{UserID: 10, LocationID: 7})
	assert.ErrorIs(t, err, ErrLocationNotFound)
}

func TestUseCase_Execute_SkipsPendingCheckWithoutRecipient(t *testing.T) {
	client := &fakeClient{location: loft()}
	uc := NewUseCase(client, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{UserID: 10, LocationID: 7})
	require.NoError(t, err)
	assert.Equal(t, 0, client.pendingAsks)
}

func TestUseCase_Execute_InvalidInput(t *testing.T) {
	uc := NewUseCase(&fakeClient{}, logger.Nop())

	for _, req := range []*Request{
		{UserID: 0, LocationID: 7},
		{UserID: 10, LocationID: 0},
		{UserID: 10, LocationID: 7, RecipientID: 10},
	} {
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
}
