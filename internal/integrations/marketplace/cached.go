package marketplace

import (
	"context"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

// CachedClient кэширует документы локаций и каталоги доп. услуг.
// Бронирования и проверка ожидающих предложений всегда идут в API:
// устаревшие данные в них ломают блокировку часов и проверку перед отправкой.
type CachedClient struct {
	API
	cache LocationCache
	log   Logger
}

// NewCachedClient оборачивает клиент кэшем
func NewCachedClient(api API, cache LocationCache, log Logger) *CachedClient {
	return &CachedClient{
		API:   api,
		cache: cache,
		log:   log,
	}
}

// GetLocation возвращает документ локации из кэша или из API.
// Ошибки кэша не фатальны: запрос уходит в API.
func (c *CachedClient) GetLocation(ctx context.Context, locationID int64) (*domain.Location, error) {
	location, found, err := c.cache.GetLocation(ctx, locationID)
	if err != nil {
		c.log.Warn("Location cache read failed: location_id=%d: %v", locationID, err)
	} else if found {
		return location, nil
	}

	location, err = c.API.GetLocation(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetLocation(ctx, location); err != nil {
		c.log.Warn("Location cache write failed: location_id=%d: %v", locationID, err)
	}
	return location, nil
}

// GetAddons возвращает каталог доп. услуг из кэша или из API
func (c *CachedClient) GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, error) {
	addons, found, err := c.cache.GetAddons(ctx, locationID)
	if err != nil {
		c.log.Warn("Addons cache read failed: location_id=%d: %v", locationID, err)
	} else if found {
		return addons, nil
	}

	addons, err = c.API.GetAddons(ctx, locationID)
	if err != nil {
		return nil, err
	}

	if err := c.cache.SetAddons(ctx, locationID, addons); err != nil {
		c.log.Warn("Addons cache write failed: location_id=%d: %v", locationID, err)
	}
	return addons, nil
}

// InvalidateLocation удаляет из кэша документ локации и каталог доп. услуг
func (c *CachedClient) InvalidateLocation(ctx context.Context, locationID int64) error {
	return c.cache.Invalidate(ctx, locationID)
}
