package ports

import (
	"context"
	"itinerary-service/internal/domain"
	"time"
)

// Contract for storing planned itineraries by request key.
// Planning is deterministic, so a cached itinerary is valid for as long as the
// catalog it was planned from.
type ItineraryCache interface {
	// Return the itinerary stored under key; ok is false on a miss.
	Get(ctx context.Context, key string) (it *domain.Itinerary, ok bool, err error)
	// Store the itinerary under key for ttl.
	Set(ctx context.Context, key string, it *domain.Itinerary, ttl time.Duration) error
}
