package domain

// Represents one sightseeing point in the catalog.
// Attractions are loaded once and shared read-only between requests; the Name
// is unique within a catalog and doubles as the de-duplication key during planning.
type Attraction struct {
	Name         string
	City         string
	State        string
	Category     string
	Latitude     float64
	Longitude    float64
	VisitMinutes int
}

func (a Attraction) Coordinates() Coordinates {
	return Coordinates{Lat: a.Latitude, Lon: a.Longitude}
}

// A canonical place key and the spellings that refer to it.
type AliasGroup struct {
	Key      string
	Variants []string
}

// A requested place name together with the catalog attractions resolved for it,
// in catalog order. A Destination always holds at least one attraction.
type Destination struct {
	Place       string
	Attractions []Attraction
}

// Representative is the attraction used to measure distance between destinations.
func (d Destination) Representative() Attraction {
	return d.Attractions[0]
}
