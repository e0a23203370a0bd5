package services

import (
	"slices"
	"testing"

	"itinerary-service/internal/domain"
)

func mysoreAttractions() []domain.Attraction {
	return []domain.Attraction{
		{Name: "Mysore Palace", City: "Mysore", State: "Karnataka", Category: "Palace", Latitude: 12.3052, Longitude: 76.6552, VisitMinutes: 60},
		{Name: "Chamundi Hills", City: "Mysore", State: "Karnataka", Category: "Hill", Latitude: 12.2724, Longitude: 76.6730, VisitMinutes: 90},
		{Name: "Brindavan Gardens", City: "Mysore", State: "Karnataka", Category: "Garden", Latitude: 12.4244, Longitude: 76.5729, VisitMinutes: 120},
		{Name: "St. Philomena's Church", City: "Mysore", State: "Karnataka", Category: "Church", Latitude: 12.3209, Longitude: 76.6584, VisitMinutes: 30},
		{Name: "Mysore Zoo", City: "Mysore", State: "Karnataka", Category: "Zoo", Latitude: 12.3024, Longitude: 76.6644, VisitMinutes: 45},
	}
}

// testCatalog is a small South-Indian catalog: five Mysore sights, three in
// Bangalore, two in Hyderabad, two Andhra temples, a Karnataka temple named
// after Tirupati and one Chennai beach.
func testCatalog() []domain.Attraction {
	return append(mysoreAttractions(),
		domain.Attraction{Name: "Bangalore Palace", City: "Bangalore", State: "Karnataka", Category: "Palace", Latitude: 12.9987, Longitude: 77.5920, VisitMinutes: 90},
		domain.Attraction{Name: "Lalbagh Botanical Garden", City: "Bangalore", State: "Karnataka", Category: "Garden", Latitude: 12.9507, Longitude: 77.5848, VisitMinutes: 120},
		domain.Attraction{Name: "Cubbon Park", City: "Bangalore", State: "Karnataka", Category: "Park", Latitude: 12.9763, Longitude: 77.5929, VisitMinutes: 60},
		domain.Attraction{Name: "Charminar", City: "Hyderabad", State: "Telangana", Category: "Monument", Latitude: 17.3616, Longitude: 78.4747, VisitMinutes: 60},
		domain.Attraction{Name: "Golconda Fort", City: "Hyderabad", State: "Telangana", Category: "Fort", Latitude: 17.3833, Longitude: 78.4011, VisitMinutes: 120},
		domain.Attraction{Name: "Sri Venkateswara Temple", City: "Tirumala", State: "Andhra Pradesh", Category: "Temple", Latitude: 13.6833, Longitude: 79.3474, VisitMinutes: 180},
		domain.Attraction{Name: "Sri Kalahasteeswara Temple", City: "Srikalahasti", State: "Andhra Pradesh", Category: "Temple", Latitude: 13.7499, Longitude: 79.6984, VisitMinutes: 90},
		domain.Attraction{Name: "Mini Tirupati Temple", City: "Hubli", State: "Karnataka", Category: "Temple", Latitude: 15.3647, Longitude: 75.1240, VisitMinutes: 45},
		domain.Attraction{Name: "Marina Beach", City: "Chennai", State: "Tamil Nadu", Category: "Beach", Latitude: 13.0500, Longitude: 80.2824, VisitMinutes: 90},
	)
}

func attractionNames(as []domain.Attraction) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.Name)
	}
	return out
}

func scheduledNames(as []domain.ScheduledAttraction) []string {
	out := make([]string, 0, len(as))
	for _, a := range as {
		out = append(out, a.Name)
	}
	return out
}

func assertNames(t *testing.T, got, want []string) {
	t.Helper()
	if !slices.Equal(got, want) {
		t.Fatalf("names = %q, want %q", got, want)
	}
}
