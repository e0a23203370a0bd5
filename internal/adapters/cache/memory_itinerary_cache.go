package cache

import (
	"context"
	"fmt"
	"time"

	"itinerary-service/internal/domain"

	gocache "github.com/patrickmn/go-cache"
)

// MemoryItineraryCache keeps itineraries in process memory with expiry.
// It stores and returns copies, so entries never alias a caller's value.
type MemoryItineraryCache struct {
	store *gocache.Cache
}

func NewMemoryItineraryCache(defaultTTL, cleanupInterval time.Duration) *MemoryItineraryCache {
	return &MemoryItineraryCache{store: gocache.New(defaultTTL, cleanupInterval)}
}

func (m *MemoryItineraryCache) Get(ctx context.Context, key string) (*domain.Itinerary, bool, error) {
	v, ok := m.store.Get(key)
	if !ok {
		return nil, false, nil
	}

	it, ok := v.(*domain.Itinerary)
	if !ok {
		return nil, false, fmt.Errorf("memory itinerary cache: unexpected value type %T for %q", v, key)
	}
	return it.Clone(), true, nil
}

func (m *MemoryItineraryCache) Set(ctx context.Context, key string, it *domain.Itinerary, ttl time.Duration) error {
	if it == nil {
		return fmt.Errorf("memory itinerary cache: nil itinerary for %q", key)
	}
	m.store.Set(key, it.Clone(), ttl)
	return nil
}

// NoopItineraryCache never stores anything.
type NoopItineraryCache struct{}

func (NoopItineraryCache) Get(context.Context, string) (*domain.Itinerary, bool, error) {
	return nil, false, nil
}

func (NoopItineraryCache) Set(context.Context, string, *domain.Itinerary, time.Duration) error {
	return nil
}
