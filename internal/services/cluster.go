package services

import (
	"cmp"
	"fmt"
	"math"
	"slices"

	"itinerary-service/internal/domain"
)

// agglomerate is a working cluster during bottom-up merging.
type agglomerate struct {
	members []int
	sumLat  float64
	sumLon  float64
}

func (g *agglomerate) centroid() (float64, float64) {
	n := float64(len(g.members))
	return g.sumLat / n, g.sumLon / n
}

// wardCost is the increase in within-cluster sum of squares caused by merging a and b.
func wardCost(a, b *agglomerate) float64 {
	aLat, aLon := a.centroid()
	bLat, bLon := b.centroid()
	na := float64(len(a.members))
	nb := float64(len(b.members))

	dLat := aLat - bLat
	dLon := aLon - bLon
	return na * nb / (na + nb) * (dLat*dLat + dLon*dLon)
}

// ClusterAttractions partitions attractions into at most k spatial clusters
// using Ward-linkage agglomerative clustering over raw (lat, lon) pairs.
//
// Every attraction lands in exactly one cluster. Clusters are numbered by the
// input position of their first member, and each cluster's members are ordered
// by ascending haversine distance to the cluster mean (stable for equal distances).
// The result depends only on the input order, never on map iteration or randomness.
func ClusterAttractions(attractions []domain.Attraction, k int) ([]domain.Cluster, error) {
	if len(attractions) == 0 {
		return []domain.Cluster{}, nil
	}
	if k < 1 {
		return nil, fmt.Errorf("cluster attractions: k must be positive, got %d", k)
	}
	k = min(k, len(attractions))

	groups := make([]*agglomerate, 0, len(attractions))
	for i, a := range attractions {
		if math.IsNaN(a.Latitude) || math.IsNaN(a.Longitude) {
			return nil, fmt.Errorf("cluster attractions: %q has invalid coordinates", a.Name)
		}
		groups = append(groups, &agglomerate{
			members: []int{i},
			sumLat:  a.Latitude,
			sumLon:  a.Longitude,
		})
	}

	for len(groups) > k {
		bestI, bestJ := -1, -1
		bestCost := math.Inf(1)

		// Strict comparison keeps the lowest (i, j) pair on equal cost.
		for i := 0; i < len(groups); i++ {
			for j := i + 1; j < len(groups); j++ {
				if c := wardCost(groups[i], groups[j]); c < bestCost {
					bestCost = c
					bestI, bestJ = i, j
				}
			}
		}

		into, from := groups[bestI], groups[bestJ]
		into.members = append(into.members, from.members...)
		into.sumLat += from.sumLat
		into.sumLon += from.sumLon
		groups = slices.Delete(groups, bestJ, bestJ+1)
	}

	clusters := make([]domain.Cluster, 0, len(groups))
	for id, g := range groups {
		slices.Sort(g.members)

		members := make([]domain.Attraction, 0, len(g.members))
		for _, idx := range g.members {
			members = append(members, attractions[idx])
		}

		centroid := centroidOf(members)
		slices.SortStableFunc(members, func(a, b domain.Attraction) int {
			return cmp.Compare(
				domain.DistanceKm(a.Coordinates(), centroid),
				domain.DistanceKm(b.Coordinates(), centroid),
			)
		})

		clusters = append(clusters, domain.Cluster{
			ID:       id,
			Members:  members,
			Centroid: centroid,
		})
	}

	return clusters, nil
}

func centroidOf(attractions []domain.Attraction) domain.Coordinates {
	points := make([]domain.Coordinates, 0, len(attractions))
	for _, a := range attractions {
		points = append(points, a.Coordinates())
	}
	return domain.Mean(points)
}

// cloneClusters copies cluster member slices so callers can remove members
// without touching the originals.
func cloneClusters(clusters []domain.Cluster) []domain.Cluster {
	out := make([]domain.Cluster, len(clusters))
	for i, c := range clusters {
		out[i] = c
		out[i].Members = slices.Clone(c.Members)
	}
	return out
}
