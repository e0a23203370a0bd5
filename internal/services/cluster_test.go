package services

import (
	"reflect"
	"testing"

	"itinerary-service/internal/domain"
)

func TestClusterAttractionsMysore(t *testing.T) {
	clusters, err := ClusterAttractions(mysoreAttractions(), 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(clusters) != 3 {
		t.Fatalf("expected 3 clusters, got %d", len(clusters))
	}

	want := [][]string{
		{"Mysore Palace", "Mysore Zoo", "St. Philomena's Church"},
		{"Chamundi Hills"},
		{"Brindavan Gardens"},
	}
	for i, c := range clusters {
		if c.ID != i {
			t.Fatalf("cluster %d has ID %d", i, c.ID)
		}
		assertNames(t, attractionNames(c.Members), want[i])
	}

	brindavan := mysoreAttractions()[2]
	if clusters[2].Centroid != brindavan.Coordinates() {
		t.Fatalf("singleton centroid = %+v, want %+v", clusters[2].Centroid, brindavan.Coordinates())
	}
}

func TestClusterAttractionsPartitionsInput(t *testing.T) {
	catalog := testCatalog()

	for k := 1; k <= len(catalog)+2; k++ {
		clusters, err := ClusterAttractions(catalog, k)
		if err != nil {
			t.Fatalf("k=%d: unexpected error: %v", k, err)
		}
		if len(clusters) != min(k, len(catalog)) {
			t.Fatalf("k=%d: expected %d clusters, got %d", k, min(k, len(catalog)), len(clusters))
		}

		seen := make(map[string]int)
		for _, c := range clusters {
			for _, m := range c.Members {
				seen[m.Name]++
			}
		}
		if len(seen) != len(catalog) {
			t.Fatalf("k=%d: %d distinct members, want %d", k, len(seen), len(catalog))
		}
		for name, n := range seen {
			if n != 1 {
				t.Fatalf("k=%d: %q appears %d times", k, name, n)
			}
		}
	}
}

func TestClusterAttractionsSeparatesDistantGroups(t *testing.T) {
	in := []domain.Attraction{
		{Name: "north-1", Latitude: 17.36, Longitude: 78.47},
		{Name: "south-1", Latitude: 8.08, Longitude: 77.55},
		{Name: "north-2", Latitude: 17.38, Longitude: 78.40},
		{Name: "south-2", Latitude: 8.09, Longitude: 77.54},
		{Name: "north-3", Latitude: 17.41, Longitude: 78.44},
	}

	clusters, err := ClusterAttractions(in, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(clusters) != 2 {
		t.Fatalf("expected 2 clusters, got %d", len(clusters))
	}
	if len(clusters[0].Members) != 3 || len(clusters[1].Members) != 2 {
		t.Fatalf("unexpected cluster sizes %d and %d", len(clusters[0].Members), len(clusters[1].Members))
	}
	for _, m := range clusters[0].Members {
		if m.Latitude < 17 {
			t.Fatalf("cluster 0 holds southern point %q", m.Name)
		}
	}
}

func TestClusterAttractionsIsDeterministic(t *testing.T) {
	// Four identical points make every merge a tie.
	in := []domain.Attraction{
		{Name: "a", Latitude: 12, Longitude: 77},
		{Name: "b", Latitude: 12, Longitude: 77},
		{Name: "c", Latitude: 12, Longitude: 77},
		{Name: "d", Latitude: 12, Longitude: 77},
	}

	first, err := ClusterAttractions(in, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i := 0; i < 10; i++ {
		again, err := ClusterAttractions(in, 2)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("run %d differs: %+v vs %+v", i, again, first)
		}
	}

	// Ties merge the lowest index pair first: {a,b}, then {a,b,c}.
	assertNames(t, attractionNames(first[0].Members), []string{"a", "b", "c"})
	assertNames(t, attractionNames(first[1].Members), []string{"d"})
}

func TestClusterAttractionsEdgeCases(t *testing.T) {
	clusters, err := ClusterAttractions(nil, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clusters) != 0 {
		t.Fatalf("expected no clusters, got %d", len(clusters))
	}

	if _, err := ClusterAttractions(mysoreAttractions(), 0); err == nil {
		t.Fatalf("expected error for k=0")
	}

	one := mysoreAttractions()[:1]
	clusters, err = ClusterAttractions(one, 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(clusters) != 1 || len(clusters[0].Members) != 1 {
		t.Fatalf("expected one singleton cluster, got %+v", clusters)
	}
}

func TestCloneClustersIsIndependent(t *testing.T) {
	clusters, err := ClusterAttractions(mysoreAttractions(), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	working := cloneClusters(clusters)
	working[0].Members[0].Name = "changed"

	if clusters[0].Members[0].Name == "changed" {
		t.Fatalf("editing the clone changed the original")
	}
}
