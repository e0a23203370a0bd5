package ports

import (
	"context"
	"itinerary-service/internal/domain"
)

// Port: a boundary for retrieving the attraction catalog from a data source.
type AttractionCatalog interface {
	// Retrieve every attraction, in catalog order.
	ListAttractions(ctx context.Context) ([]domain.Attraction, error)
}
