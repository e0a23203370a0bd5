package domain

import (
	"maps"
	"slices"
	"time"
)

// Represents a spatially coherent group of attractions at one destination.
// Members are ordered by ascending distance to Centroid.
type Cluster struct {
	ID       int
	Members  []Attraction
	Centroid Coordinates
}

// Represents an attraction placed on a day, annotated with the cluster it was
// drawn from. It carries its own copy of the catalog record.
type ScheduledAttraction struct {
	Attraction
	ClusterID int
}

// Final stop of a day.
type LastLocation struct {
	Name  string
	City  string
	State string
}

type MapPoint struct {
	Name         string
	Lat          float64
	Lng          float64
	ClusterID    int
	VisitMinutes int
}

type ClusterCenter struct {
	Lat       float64
	Lng       float64
	ClusterID int
}

// Map plotting data for one day: the visited points plus the centers of the
// destination's clusters that still had unvisited members after the day was packed.
type MapData struct {
	Attractions    []MapPoint
	ClusterCenters []ClusterCenter
}

// Represents one day of an itinerary.
// VisitMinutes and TravelMinutes together never exceed the daily budget;
// FoodMinutes is added on top and included in TotalMinutes.
type DaySchedule struct {
	DayIndex      int
	Date          time.Time
	Destination   string
	Attractions   []ScheduledAttraction
	VisitMinutes  int
	TravelMinutes int
	FoodMinutes   int
	TotalMinutes  int
	LastLocation  LastLocation
	MapData       MapData
}

// Cluster separation quality for the planned destinations.
// Scores are NaN when a destination has fewer than two distinct clusters.
type Diagnostics struct {
	PerDestination map[string]float64
	Overall        float64
}

// Represents the planned trip.
// AllAttractions holds every scheduled attraction in day order; attractions
// that were resolved but never fit a day are not listed.
//
// An Itinerary handed out by a planner or cache is read-only. Callers that
// need to modify one work on a Clone.
type Itinerary struct {
	PlanID         string
	Destinations   []string
	Days           []DaySchedule
	AllAttractions []ScheduledAttraction
	Diagnostics    *Diagnostics
}

// Scheduled returns every attraction placed on any day, in day order.
func (it *Itinerary) Scheduled() []ScheduledAttraction {
	out := make([]ScheduledAttraction, 0)
	for _, d := range it.Days {
		out = append(out, d.Attractions...)
	}
	return out
}

// Clone returns a deep copy of it.
func (it *Itinerary) Clone() *Itinerary {
	if it == nil {
		return nil
	}

	out := &Itinerary{
		PlanID:         it.PlanID,
		Destinations:   slices.Clone(it.Destinations),
		AllAttractions: slices.Clone(it.AllAttractions),
	}
	if it.Days != nil {
		out.Days = make([]DaySchedule, len(it.Days))
		for i, d := range it.Days {
			d.Attractions = slices.Clone(d.Attractions)
			d.MapData.Attractions = slices.Clone(d.MapData.Attractions)
			d.MapData.ClusterCenters = slices.Clone(d.MapData.ClusterCenters)
			out.Days[i] = d
		}
	}
	if it.Diagnostics != nil {
		out.Diagnostics = &Diagnostics{
			PerDestination: maps.Clone(it.Diagnostics.PerDestination),
			Overall:        it.Diagnostics.Overall,
		}
	}
	return out
}
