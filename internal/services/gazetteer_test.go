package services

import (
	"errors"
	"slices"
	"testing"

	"itinerary-service/internal/domain"
)

func TestGazetteerVariantsResolveLikeTheirKey(t *testing.T) {
	g := NewGazetteer(nil)
	catalog := testCatalog()

	for _, group := range aliasGroups {
		want, wantErr := g.Resolve(catalog, group.Key)

		for _, v := range group.Variants {
			got, err := g.Resolve(catalog, v)
			if (err == nil) != (wantErr == nil) {
				t.Fatalf("variant %q of %q: err = %v, key err = %v", v, group.Key, err, wantErr)
			}
			if !slices.Equal(attractionNames(got), attractionNames(want)) {
				t.Fatalf("variant %q of %q resolved %q, key resolved %q",
					v, group.Key, attractionNames(got), attractionNames(want))
			}
		}
	}
}

func TestGazetteerAliasTableKeysAreVariants(t *testing.T) {
	g := NewGazetteer(nil)

	for _, group := range g.Groups() {
		found, ok := g.Lookup(group.Key)
		if !ok {
			t.Fatalf("key %q not found", group.Key)
		}
		if found.Key != group.Key {
			t.Fatalf("key %q looked up group %q", group.Key, found.Key)
		}
	}
}

func TestGazetteerResolveUsesAliasGroup(t *testing.T) {
	g := NewGazetteer(nil)

	got, err := g.Resolve(testCatalog(), "  Bengaluru ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNames(t, attractionNames(got), []string{"Bangalore Palace", "Lalbagh Botanical Garden", "Cubbon Park"})

	got, err = g.Resolve(testCatalog(), "MYSURU")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNames(t, attractionNames(got), attractionNames(mysoreAttractions()))
}

func TestGazetteerTirupatiSelectsAndhraPradeshOnly(t *testing.T) {
	g := NewGazetteer(nil)
	want := []string{"Sri Venkateswara Temple", "Sri Kalahasteeswara Temple"}

	for _, place := range []string{"Tirupati", "tirupati temple", "Trip to Tirupati"} {
		got, err := g.Resolve(testCatalog(), place)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", place, err)
		}
		assertNames(t, attractionNames(got), want)
	}

	mini := testCatalog()[12]
	if g.Matches(mini, "tirupati") {
		t.Fatalf("%q in %s must not match tirupati", mini.Name, mini.State)
	}
}

func TestGazetteerFallsBackToSubstringMatch(t *testing.T) {
	g := NewGazetteer(nil)

	tests := []struct {
		place string
		want  []string
	}{
		{place: "golconda", want: []string{"Golconda Fort"}},
		{place: "Palace", want: []string{"Mysore Palace", "Bangalore Palace"}},
		{place: "temple", want: []string{"Sri Venkateswara Temple", "Sri Kalahasteeswara Temple", "Mini Tirupati Temple"}},
		{place: "tamil nadu", want: []string{"Marina Beach"}},
	}

	for _, tt := range tests {
		got, err := g.Resolve(testCatalog(), tt.place)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", tt.place, err)
		}
		assertNames(t, attractionNames(got), tt.want)
	}
}

func TestGazetteerResolveUnknownPlace(t *testing.T) {
	g := NewGazetteer(nil)

	got, err := g.Resolve(testCatalog(), "Atlantis")
	if got != nil {
		t.Fatalf("expected no attractions, got %q", attractionNames(got))
	}

	var rErr *domain.ResolutionError
	if !errors.As(err, &rErr) {
		t.Fatalf("expected ResolutionError, got %v", err)
	}
	if rErr.Place != "Atlantis" {
		t.Fatalf("place = %q, want Atlantis", rErr.Place)
	}
}

func TestGazetteerResolveAllStopsAtFirstFailure(t *testing.T) {
	g := NewGazetteer(nil)

	_, err := g.ResolveAll(testCatalog(), []string{"mysore", "Atlantis", "Lemuria"})
	var rErr *domain.ResolutionError
	if !errors.As(err, &rErr) || rErr.Place != "Atlantis" {
		t.Fatalf("expected ResolutionError for Atlantis, got %v", err)
	}

	dests, err := g.ResolveAll(testCatalog(), []string{"hyderabad", "chennai"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(dests) != 2 || dests[0].Place != "hyderabad" || dests[1].Place != "chennai" {
		t.Fatalf("unexpected destinations: %+v", dests)
	}
	assertNames(t, attractionNames(dests[1].Attractions), []string{"Marina Beach"})
}

func TestGazetteerCustomTable(t *testing.T) {
	g := NewGazetteer([]domain.AliasGroup{
		{Key: "garden city", Variants: []string{"garden city", "lalbagh"}},
	})

	got, err := g.Resolve(testCatalog(), "garden city")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	assertNames(t, attractionNames(got), []string{"Lalbagh Botanical Garden"})

	if _, err := g.Resolve(testCatalog(), "bengaluru"); err == nil {
		t.Fatalf("expected bengaluru to be unknown without the built-in table")
	}
}

func TestSplitPlaces(t *testing.T) {
	got := SplitPlaces(" Mysore ;bangalore;; ;Tirupati ")
	want := []string{"Mysore", "bangalore", "Tirupati"}
	if !slices.Equal(got, want) {
		t.Fatalf("SplitPlaces = %q, want %q", got, want)
	}

	if got := SplitPlaces(""); len(got) != 0 {
		t.Fatalf("expected no places, got %q", got)
	}
}
