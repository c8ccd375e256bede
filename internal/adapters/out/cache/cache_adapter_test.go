package cache

import (
	"context"
	"testing"
	"time"

	"github.com/Atif-Muhammad/psc-calendar-svc/internal/adapters/out/logger"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/config"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/domain"
	"github.com/Atif-Muhammad/psc-calendar-svc/internal/core/ports/out"
)

func newTestAdapter(t *testing.T, ttl time.Duration) *CacheAdapter {
	t.Helper()

	cfg := &config.Config{}
	cfg.Cache.Enabled = true
	cfg.Cache.FacilitiesSize = 16
	cfg.Cache.FacilitiesTtl = ttl

	log, err := logger.NewConsoleLogger("UTC")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	adapter, err := NewCacheAdapter(cfg, log)
	if err != nil {
		t.Fatalf("failed to create cache adapter: %v", err)
	}
	return adapter
}

func TestCacheAdapterDisabledReturnsNil(t *testing.T) {
	cfg := &config.Config{}

	log, err := logger.NewConsoleLogger("UTC")
	if err != nil {
		t.Fatalf("failed to create logger: %v", err)
	}

	adapter, err := NewCacheAdapter(cfg, log)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if adapter != nil {
		t.Fatal("disabled cache must produce a nil adapter")
	}
}

func TestCacheAdapterStoreAndGet(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	query := out.FacilityQuery{StartDate: "2024-06-01", EndDate: "2024-06-30"}
	facilities := []domain.Facility{{ID: "1", RoomNumber: "101"}}

	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeRooms, query); ok {
		t.Fatal("expected a miss before store")
	}

	adapter.StoreFacilities(ctx, domain.FacilityTypeRooms, query, facilities)

	got, ok := adapter.GetFacilities(ctx, domain.FacilityTypeRooms, query)
	if !ok {
		t.Fatal("expected a hit after store")
	}
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("unexpected cached value: %+v", got)
	}

	// Другие параметры выборки дают другой ключ
	otherQuery := out.FacilityQuery{StartDate: "2024-07-01"}
	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeRooms, otherQuery); ok {
		t.Fatal("different query must not hit the same entry")
	}

	// Другой тип помещения тоже
	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeHalls, query); ok {
		t.Fatal("different facility type must not hit the same entry")
	}
}

func TestCacheAdapterTtlExpiry(t *testing.T) {
	adapter := newTestAdapter(t, 10*time.Millisecond)
	ctx := context.Background()

	query := out.FacilityQuery{}
	adapter.StoreFacilities(ctx, domain.FacilityTypeRooms, query, []domain.Facility{{ID: "1"}})

	time.Sleep(30 * time.Millisecond)

	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeRooms, query); ok {
		t.Fatal("expired entry must be a miss")
	}
}

func TestCacheAdapterInvalidateByType(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	query := out.FacilityQuery{}
	adapter.StoreFacilities(ctx, domain.FacilityTypeRooms, query, []domain.Facility{{ID: "1"}})
	adapter.StoreFacilities(ctx, domain.FacilityTypeHalls, query, []domain.Facility{{ID: "2"}})

	adapter.InvalidateFacilities(ctx, domain.FacilityTypeRooms)

	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeRooms, query); ok {
		t.Fatal("invalidated type must be a miss")
	}
	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeHalls, query); !ok {
		t.Fatal("other types must survive a typed invalidation")
	}
}

func TestCacheAdapterInvalidateAll(t *testing.T) {
	adapter := newTestAdapter(t, time.Minute)
	ctx := context.Background()

	query := out.FacilityQuery{}
	adapter.StoreFacilities(ctx, domain.FacilityTypeRooms, query, []domain.Facility{{ID: "1"}})
	adapter.StoreFacilities(ctx, domain.FacilityTypeLawns, query, []domain.Facility{{ID: "2"}})

	adapter.InvalidateAll(ctx)

	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeRooms, query); ok {
		t.Fatal("full invalidation must clear rooms")
	}
	if _, ok := adapter.GetFacilities(ctx, domain.FacilityTypeLawns, query); ok {
		t.Fatal("full invalidation must clear lawns")
	}
}
