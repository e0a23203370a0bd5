package services

import (
	"fmt"
	"math"

	"itinerary-service/internal/domain"
)

// DefaultDiagnosticClusterCount is the cluster count used when scoring separation.
const DefaultDiagnosticClusterCount = 2

// SilhouetteScore returns the mean silhouette coefficient of the labeled points,
// using Euclidean distance over raw (lat, lon). It returns NaN unless there are
// at least two labels and fewer labels than points.
func SilhouetteScore(points []domain.Coordinates, labels []int) float64 {
	n := len(points)
	if n != len(labels) || n < 3 {
		return math.NaN()
	}

	sizes := make(map[int]int)
	for _, l := range labels {
		sizes[l]++
	}
	if len(sizes) < 2 || len(sizes) >= n {
		return math.NaN()
	}

	total := 0.0
	for i := range points {
		sums := make(map[int]float64, len(sizes))
		for j := range points {
			if i == j {
				continue
			}
			sums[labels[j]] += euclidean(points[i], points[j])
		}

		own := labels[i]
		if sizes[own] == 1 {
			// Singleton clusters score zero.
			continue
		}
		a := sums[own] / float64(sizes[own]-1)

		b := math.Inf(1)
		for l, size := range sizes {
			if l == own {
				continue
			}
			b = math.Min(b, sums[l]/float64(size))
		}

		if denom := math.Max(a, b); denom > 0 {
			total += (b - a) / denom
		}
	}

	return total / float64(n)
}

// DiagnoseClusters scores how well each destination's attractions separate into
// k clusters, and how well all destinations' clusters separate from each other.
func DiagnoseClusters(dests []domain.Destination, k int) (domain.Diagnostics, error) {
	diag := domain.Diagnostics{PerDestination: make(map[string]float64, len(dests))}

	var allPoints []domain.Coordinates
	var allLabels []int
	offset := 0

	for _, d := range dests {
		if len(d.Attractions) < 2 {
			diag.PerDestination[d.Place] = math.NaN()
			continue
		}

		clusterCount := min(k, len(d.Attractions))
		clusters, err := ClusterAttractions(d.Attractions, clusterCount)
		if err != nil {
			return domain.Diagnostics{}, fmt.Errorf("diagnose clusters: destination %q: %w", d.Place, err)
		}

		points := make([]domain.Coordinates, 0, len(d.Attractions))
		labels := make([]int, 0, len(d.Attractions))
		for _, c := range clusters {
			for _, m := range c.Members {
				points = append(points, m.Coordinates())
				labels = append(labels, c.ID)
				allPoints = append(allPoints, m.Coordinates())
				allLabels = append(allLabels, offset+c.ID)
			}
		}
		offset += clusterCount

		diag.PerDestination[d.Place] = SilhouetteScore(points, labels)
	}

	diag.Overall = SilhouetteScore(allPoints, allLabels)
	return diag, nil
}

func euclidean(a, b domain.Coordinates) float64 {
	return math.Hypot(a.Lat-b.Lat, a.Lon-b.Lon)
}
