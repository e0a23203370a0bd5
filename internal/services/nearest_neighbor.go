package services

import (
	"fmt"
	"math"

	"itinerary-service/internal/domain"
)

// SequenceDestinations orders destinations into a travel sequence using a
// greedy nearest-neighbor chain.
//
// The chain starts at the first destination and repeatedly moves to the closest
// unvisited destination, measured by haversine distance between representative
// attractions. It does not attempt global tour optimization; ties go to the
// destination listed first.
func SequenceDestinations(destinations []string, representative map[string]domain.Attraction) ([]string, error) {
	if len(destinations) <= 1 {
		return destinations, nil
	}

	for _, d := range destinations {
		if _, ok := representative[d]; !ok {
			return nil, fmt.Errorf("sequence destinations: missing representative attraction for %q", d)
		}
	}

	remaining := make([]string, len(destinations)-1)
	copy(remaining, destinations[1:])

	current := destinations[0]
	ordered := make([]string, 0, len(destinations))
	ordered = append(ordered, current)

	for len(remaining) > 0 {
		from := representative[current].Coordinates()

		bestIdx := -1
		minDistance := math.Inf(1)

		// Select next destination by minimum straight-line distance (greedy step).
		for i, d := range remaining {
			dist := domain.DistanceKm(from, representative[d].Coordinates())
			if dist < minDistance {
				minDistance = dist
				bestIdx = i
			}
		}

		if bestIdx < 0 {
			return nil, fmt.Errorf("sequence destinations: failed to select destination after %q", current)
		}

		current = remaining[bestIdx]
		ordered = append(ordered, current)
		remaining = append(remaining[:bestIdx], remaining[bestIdx+1:]...)
	}

	return ordered, nil
}

// SequenceResolved orders resolved destinations, using each destination's
// first resolved attraction as its representative.
func SequenceResolved(dests []domain.Destination) ([]domain.Destination, error) {
	names := make([]string, 0, len(dests))
	reps := make(map[string]domain.Attraction, len(dests))
	byName := make(map[string]domain.Destination, len(dests))
	for _, d := range dests {
		names = append(names, d.Place)
		reps[d.Place] = d.Representative()
		byName[d.Place] = d
	}

	order, err := SequenceDestinations(names, reps)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Destination, 0, len(order))
	for _, name := range order {
		out = append(out, byName[name])
	}
	return out, nil
}
