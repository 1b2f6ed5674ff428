package cache_impl

import (
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/tumbleweedd/order_pipeline/internal/domain/models"
)

type CacheI[K comparable, V any] interface {
	Get(key K) (value V, ok bool)
	Add(key K, value V) (evicted bool)
	Remove(key K) (present bool)
}

// Cache holds copies of orders so callers cannot mutate cached state.
type Cache struct {
	cache CacheI[uuid.UUID, models.Order]
}

func NewCache(cache CacheI[uuid.UUID, models.Order]) *Cache {
	return &Cache{cache: cache}
}

// NewOrderCache builds a size-bounded cache whose entries expire after ttl.
func NewOrderCache(size int, ttl time.Duration) *Cache {
	return NewCache(expirable.NewLRU[uuid.UUID, models.Order](size, nil, ttl))
}

func (c *Cache) Add(key uuid.UUID, value *models.Order) (evicted bool) {
	if value == nil {
		return false
	}

	return c.cache.Add(key, *value)
}

func (c *Cache) Get(key uuid.UUID) (*models.Order, bool) {
	value, ok := c.cache.Get(key)
	if !ok {
		return nil, false
	}

	return &value, true
}

func (c *Cache) Remove(key uuid.UUID) bool {
	return c.cache.Remove(key)
}
