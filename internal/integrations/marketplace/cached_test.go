package marketplace

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OfferService/internal/domain"
	"github.com/m04kA/SMC-OfferService/pkg/logger"
)

type fakeAPI struct {
	API
	location      *domain.Location
	addons        []domain.Addon
	locationCalls int
	addonCalls    int
	err           error
}

func (f *fakeAPI) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	f.locationCalls++
	return f.location, f.err
}

func (f *fakeAPI) GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error) {
	f.addonCalls++
	return f.addons, f.err
}

type memoryCache struct {
	locations   map[int64]*domain.Location
	addons      map[int64][]domain.Addon
	readErr     error
	invalidated []int64
}

func newMemoryCache() *memoryCache {
	return &memoryCache{
		locations: make(map[int64]*domain.Location),
		addons:    make(map[int64][]domain.Addon),
	}
}

func (m *memoryCache) GetLocation(ctx context.Context, locationID int64) (*domain.Location, bool, error) {
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	loc, ok := m.locations[locationID]
	return loc, ok, nil
}

func (m *memoryCache) SetLocation(ctx context.Context, location *domain.Location) error {
	m.locations[location.ID] = location
	return nil
}

func (m *memoryCache) GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, bool, error) {
	if m.readErr != nil {
		return nil, false, m.readErr
	}
	addons, ok := m.addons[locationID]
	return addons, ok, nil
}

func (m *memoryCache) SetAddons(ctx context.Context, locationID int64, addons []domain.Addon) error {
	m.addons[locationID] = addons
	return nil
}

func (m *memoryCache) Invalidate(ctx context.Context, locationID int64) error {
	delete(m.locations, locationID)
	delete(m.addons, locationID)
	m.invalidated = append(m.invalidated, locationID)
	return nil
}

func TestCachedClient_GetLocation(t *testing.T) {
	api := &fakeAPI{location: &domain.Location{ID: 7, Title: "Loft"}}
	cache := newMemoryCache()
	client := NewCachedClient(api, cache, logger.Nop())

	first, err := client.GetLocation(context.Background(), 7)
	require.NoError(t, err)
	second, err := client.GetLocation(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, api.locationCalls)

	require.NoError(t, client.InvalidateLocation(context.Background(), 7))
	_, err = client.GetLocation(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, 2, api.locationCalls)
	assert.Equal(t, []int64{7}, cache.invalidated)
}

func TestCachedClient_GetAddons(t *testing.T) {
	api := &fakeAPI{addons: []domain.Addon{{ID: 1, Price: 50}}}
	client := NewCachedClient(api, newMemoryCache(), logger.Nop())

	for i := 0; i < 3; i++ {
		addons, err := client.GetAddons(context.Background(), 7)
		require.NoError(t, err)
		assert.Len(t, addons, 1)
	}
	assert.Equal(t, 1, api.addonCalls)
}

func TestCachedClient_CacheFailureFallsBackToAPI(t *testing.T) {
	api := &fakeAPI{location: &domain.Location{ID: 7}}
	cache := newMemoryCache()
	cache.readErr = errors.New("connection refused")
	client := NewCachedClient(api, cache, logger.Nop())

	loc, err := client.GetLocation(context.Background(), 7)

	require.NoError(t, err)
	assert.Equal(t, int64(7), loc.ID)
	assert.Equal(t, 1, api.locationCalls)
}

func TestCachedClient_UpstreamErrorIsNotCached(t *testing.T) {
	api := &fakeAPI{err: ErrLocationNotFound}
	cache := newMemoryCache()
	client := NewCachedClient(api, cache, logger.Nop())

	_, err := client.GetLocation(context.Background(), 7)

	assert.ErrorIs(t, err, ErrLocationNotFound)
	assert.Empty(t, cache.locations)
}
