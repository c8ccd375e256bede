package rabbitmq

import (
	"context"
	"testing"

	amqp "github.com/rabbitmq/amqp091-go"
)

func TestParseCacheMessageRoutingKey(t *testing.T) {
	listener := &FacilityCacheListener{}

	tests := []struct {
		routingKey   string
		resourceType CacheHitResourceType
		cacheHitType CacheHitType
	}{
		{"psc-api.calendar-svc.booking.cache.invalidate", CacheHitResourceTypeBooking, CacheHitTypeInvalidate},
		{"psc-api.calendar-svc.facility.cache.store", CacheHitResourceTypeFacility, CacheHitTypeStore},
		{"psc-api.calendar-svc._all_.cache.invalidate", CacheHitResourceTypeAll, CacheHitTypeInvalidate},
		{"psc-api.calendar-svc.reservation.cache.invalidate", CacheHitResourceTypeReservation, CacheHitTypeInvalidate},
	}

	for _, tt := range tests {
		parsed, err := listener.parseCacheMessageRoutingKey(context.Background(), amqp.Delivery{RoutingKey: tt.routingKey})
		if err != nil {
			t.Fatalf("%s: unexpected error: %v", tt.routingKey, err)
		}
		if parsed.Source != "psc-api" || parsed.Receiver != "calendar-svc" {
			t.Fatalf("%s: unexpected source/receiver: %+v", tt.routingKey, parsed)
		}
		if parsed.ResourceType != tt.resourceType {
			t.Fatalf("%s: resource = %s, want %s", tt.routingKey, parsed.ResourceType, tt.resourceType)
		}
		if parsed.CacheHitType != tt.cacheHitType {
			t.Fatalf("%s: cacheHitType = %s, want %s", tt.routingKey, parsed.CacheHitType, tt.cacheHitType)
		}
	}
}

func TestParseCacheMessageRoutingKeyTooShort(t *testing.T) {
	listener := &FacilityCacheListener{}

	for _, routingKey := range []string{"", "psc-api", "psc-api.calendar-svc.booking.cache"} {
		if _, err := listener.parseCacheMessageRoutingKey(context.Background(), amqp.Delivery{RoutingKey: routingKey}); err == nil {
			t.Fatalf("expected error for routing key %q", routingKey)
		}
	}
}

func TestListenerDisabledReturnsNil(t *testing.T) {
	listener := (*FacilityCacheListener)(nil)
	if err := listener.Stop(); err != nil {
		t.Fatalf("Stop on nil listener must be a no-op, got %v", err)
	}
}
