package location

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/m04kA/SMC-OfferService/internal/domain"
)

const (
	locationKeyPrefix = "offers:location:"
	addonsKeyPrefix   = "offers:addons:"
)

// Cache кэш документов локаций и каталогов доп. услуг в Redis
type Cache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш с заданным временем жизни записей
func New(client *redis.Client, ttl time.Duration) *Cache {
	return &Cache{client: client, ttl: ttl}
}

// GetLocation возвращает документ локации; found=false при промахе
func (c *Cache) GetLocation(ctx context.Context, locationID int64) (*domain.Location, bool, error) {
	var entry locationEntry
	found, err := c.get(ctx, locationKey(locationID), &entry)
	if err != nil || !found {
		return nil, false, err
	}

	loc, err := entry.toDomain()
	if err != nil {
		return nil, false, fmt.Errorf("%w: %v", ErrCacheDecode, err)
	}
	return loc, true, nil
}

// SetLocation сохраняет документ локации
func (c *Cache) SetLocation(ctx context.Context, loc *domain.Location) error {
	return c.set(ctx, locationKey(loc.ID), newLocationEntry(loc))
}

// GetAddons возвращает каталог доп. услуг; found=false при промахе
func (c *Cache) GetAddons(ctx context.Context, locationID int64) ([]domain.Addon, bool, error) {
	var entries []addonEntry
	found, err := c.get(ctx, addonsKey(locationID), &entries)
	if err != nil || !found {
		return nil, false, err
	}
	return addonsToDomain(entries), true, nil
}

// SetAddons сохраняет каталог доп. услуг
func (c *Cache) SetAddons(ctx context.Context, locationID int64, addons []domain.Addon) error {
	return c.set(ctx, addonsKey(locationID), newAddonEntries(addons))
}

// Invalidate удаляет документ локации и каталог доп. услуг
func (c *Cache) Invalidate(ctx context.Context, locationID int64) error {
	if err := c.client.Del(ctx, locationKey(locationID), addonsKey(locationID)).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

func (c *Cache) get(ctx context.Context, key string, v interface{}) (bool, error) {
	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrCacheRead, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return false, fmt.Errorf("%w: %v", ErrCacheDecode, err)
	}
	return true, nil
}

func (c *Cache) set(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: %v", ErrCacheWrite, err)
	}
	return nil
}

func locationKey(locationID int64) string {
	return fmt.Sprintf("%s%d", locationKeyPrefix, locationID)
}

func addonsKey(locationID int64) string {
	return fmt.Sprintf("%s%d", addonsKeyPrefix, locationID)
}
