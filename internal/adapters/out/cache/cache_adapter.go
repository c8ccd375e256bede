package cache

import (
	"context"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

type FacilitiesCacheEntry struct {
	Facilities []domain.Facility
	StoredAt   time.Time
}

type CacheAdapter struct {
	facilitiesCache *lru.Cache[string, *FacilitiesCacheEntry]
	ttl             time.Duration
	mu              sync.RWMutex
	logger          out.LoggerPort
}

func NewCacheAdapter(cfg *config.Config, logger out.LoggerPort) (*CacheAdapter, error) {
	if !cfg.Cache.Enabled {
		logger.Info("cache.disabled", out.LogFields{
			"message": "Cache is disabled",
		})
		return nil, nil
	}

	lruFacilitiesCache, err := lru.New[string, *FacilitiesCacheEntry](cfg.Cache.FacilitiesSize)
	if err != nil {
		logger.Error("cache.facilities.init.failed", out.LogFields{
			"error": err.Error(),
			"size":  cfg.Cache.FacilitiesSize,
		})
		return nil, err
	}

	return &CacheAdapter{
		facilitiesCache: lruFacilitiesCache,
		ttl:             cfg.Cache.FacilitiesTtl,
		logger:          logger.WithModule("CacheAdapter"),
	}, nil
}

// cacheKey строит ключ из типа помещения и параметров выборки.
// Тип идет префиксом, чтобы инвалидация по типу работала через префиксный обход
func cacheKey(facilityType domain.FacilityType, query out.FacilityQuery) string {
	return string(facilityType) + "?" + query.StartDate + "|" + query.EndDate + "|" + query.RoomNumber
}

func (c *CacheAdapter) GetFacilities(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery) ([]domain.Facility, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	key := cacheKey(facilityType, query)
	entry, exists := c.facilitiesCache.Get(key)
	if !exists {
		c.logger.Debug("cache.facilities.get.miss", out.LogFields{
			"key": key,
		})
		return nil, false
	}

	if time.Since(entry.StoredAt) > c.ttl {
		c.logger.Debug("cache.facilities.get.expired", out.LogFields{
			"key":      key,
			"storedAt": entry.StoredAt,
		})
		return nil, false
	}

	c.logger.Debug("cache.facilities.get.hit", out.LogFields{
		"key":   key,
		"count": len(entry.Facilities),
	})
	return entry.Facilities, true
}

func (c *CacheAdapter) StoreFacilities(ctx context.Context, facilityType domain.FacilityType, query out.FacilityQuery, facilities []domain.Facility) {
	c.mu.Lock()
	defer c.mu.Unlock()

	key := cacheKey(facilityType, query)
	c.logger.Debug("cache.facilities.store", out.LogFields{
		"key":   key,
		"count": len(facilities),
	})

	c.facilitiesCache.Add(key, &FacilitiesCacheEntry{
		Facilities: facilities,
		StoredAt:   time.Now(),
	})
}

// InvalidateFacilities снимает все записи одного типа помещений.
// Сообщения об изменениях не несут параметров выборки, поэтому чистим по префиксу
func (c *CacheAdapter) InvalidateFacilities(ctx context.Context, facilityType domain.FacilityType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	prefix := string(facilityType) + "?"
	removed := 0
	for _, key := range c.facilitiesCache.Keys() {
		if strings.HasPrefix(key, prefix) {
			c.facilitiesCache.Remove(key)
			removed++
		}
	}

	c.logger.Debug("cache.facilities.invalidate", out.LogFields{
		"facilityType": facilityType,
		"removed":      removed,
	})
}

func (c *CacheAdapter) InvalidateAll(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.facilitiesCache.Purge()
	c.logger.Debug("cache.facilities.invalidate_all", nil)
}
