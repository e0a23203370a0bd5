package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"itinerary-service/internal/domain"
)

const (
	// DefaultClusterCount is the number of spatial groups built per destination.
	DefaultClusterCount = 3
	// FoodMinutesPerAttraction is added on top of the packed time for every stop.
	FoodMinutesPerAttraction = 60
)

// UsedSet records attraction names already placed in the itinerary.
// A UsedSet belongs to a single planning run.
type UsedSet map[string]struct{}

func (u UsedSet) Has(name string) bool {
	_, ok := u[name]
	return ok
}

func (u UsedSet) Add(name string) { u[name] = struct{}{} }

type PackRequest struct {
	StartDate    time.Time
	Duration     int
	MaxHours     int
	ClusterCount int
}

// AllocateDays splits duration days over n destinations in sequence order.
//
// Each destination gets max(1, duration/n) days and the remainder is handed
// out one day at a time to the earliest destinations. When there are more
// destinations than days the sum exceeds duration; the packer stops emitting
// once the trip length is reached.
func AllocateDays(duration, n int) []int {
	if n <= 0 {
		return []int{}
	}

	perLocation := max(1, duration/n)
	extra := duration - perLocation*n

	days := make([]int, n)
	for i := range days {
		days[i] = perLocation
		if extra > 0 {
			days[i]++
			extra--
		}
	}
	return days
}

// PackDay greedily fills one day from the destination's clusters.
//
// Clusters are walked in order and their members in proximity order. An unused
// attraction is taken when its visit time plus the travel time from the previous
// stop of the day still fits in budgetMinutes. Taken attractions are added to used
// and removed from clusters, so later days skip them. It returns the day's stops
// and the accumulated visit plus travel minutes.
func PackDay(clusters []domain.Cluster, used UsedSet, budgetMinutes int) ([]domain.ScheduledAttraction, int) {
	picked := make([]domain.ScheduledAttraction, 0)
	accumulated := 0

	var last domain.Coordinates
	hasLast := false
	for ci := range clusters {
		cluster := &clusters[ci]
		if len(cluster.Members) == 0 {
			continue
		}

		kept := make([]domain.Attraction, 0, len(cluster.Members))
		for _, a := range cluster.Members {
			if used.Has(a.Name) {
				kept = append(kept, a)
				continue
			}

			travel := 0
			if hasLast {
				travel = domain.TravelMinutes(last, a.Coordinates())
			}

			if accumulated+a.VisitMinutes+travel > budgetMinutes {
				kept = append(kept, a)
				continue
			}

			picked = append(picked, domain.ScheduledAttraction{Attraction: a, ClusterID: cluster.ID})
			accumulated += a.VisitMinutes + travel
			used.Add(a.Name)
			last, hasLast = a.Coordinates(), true
		}
		cluster.Members = kept
	}

	return picked, accumulated
}

// PackItinerary builds the daily schedules for destinations already placed in
// travel order. used is shared across destinations so an attraction is never
// scheduled twice, even when two requested places resolve to overlapping sets.
func PackItinerary(
	ctx context.Context,
	dests []domain.Destination,
	req PackRequest,
	used UsedSet,
) ([]domain.DaySchedule, error) {
	if req.Duration < 1 {
		return nil, errors.New("pack itinerary: duration must be positive")
	}
	if used == nil {
		return nil, errors.New("pack itinerary: used set must be non-nil")
	}

	clusterCount := req.ClusterCount
	if clusterCount <= 0 {
		clusterCount = DefaultClusterCount
	}
	budget := req.MaxHours * 60

	allocation := AllocateDays(req.Duration, len(dests))
	schedules := make([]domain.DaySchedule, 0, req.Duration)
	currentDay := 0

	for i, dest := range dests {
		// The trip is full; remaining destinations get no days.
		if currentDay >= req.Duration {
			break
		}
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pack itinerary: %w", err)
		}

		clusters, err := ClusterAttractions(dest.Attractions, min(clusterCount, len(dest.Attractions)))
		if err != nil {
			return nil, fmt.Errorf("pack itinerary: destination %q: %w", dest.Place, err)
		}
		working := cloneClusters(clusters)

		for day := 0; day < allocation[i] && currentDay < req.Duration; day++ {
			picked, accumulated := PackDay(working, used, budget)
			if len(picked) == 0 {
				continue
			}

			schedules = append(schedules, buildDaySchedule(
				currentDay, req.StartDate, dest.Place, picked, accumulated, working,
			))
			currentDay++
		}
	}

	return schedules, nil
}

func buildDaySchedule(
	dayOffset int,
	start time.Time,
	place string,
	picked []domain.ScheduledAttraction,
	accumulated int,
	clusters []domain.Cluster,
) domain.DaySchedule {
	visit := 0
	points := make([]domain.MapPoint, 0, len(picked))
	for _, p := range picked {
		visit += p.VisitMinutes
		points = append(points, domain.MapPoint{
			Name:         p.Name,
			Lat:          p.Latitude,
			Lng:          p.Longitude,
			ClusterID:    p.ClusterID,
			VisitMinutes: p.VisitMinutes,
		})
	}

	centers := make([]domain.ClusterCenter, 0, len(clusters))
	for _, c := range clusters {
		if len(c.Members) == 0 {
			continue
		}
		mean := centroidOf(c.Members)
		centers = append(centers, domain.ClusterCenter{Lat: mean.Lat, Lng: mean.Lon, ClusterID: c.ID})
	}

	food := FoodMinutesPerAttraction * len(picked)
	final := picked[len(picked)-1]

	return domain.DaySchedule{
		DayIndex:      dayOffset + 1,
		Date:          start.AddDate(0, 0, dayOffset),
		Destination:   place,
		Attractions:   picked,
		VisitMinutes:  visit,
		TravelMinutes: accumulated - visit,
		FoodMinutes:   food,
		TotalMinutes:  accumulated + food,
		LastLocation: domain.LastLocation{
			Name:  final.Name,
			City:  final.City,
			State: final.State,
		},
		MapData: domain.MapData{
			Attractions:    points,
			ClusterCenters: centers,
		},
	}
}
