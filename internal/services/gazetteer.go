package services

import (
	"strings"

	"itinerary-service/internal/domain"
)

// The Tirupati temple region spans several cities, so any place name mentioning
// it selects every attraction in Andhra Pradesh.
const (
	tirupatiToken = "tirupati"
	tirupatiState = "andhra pradesh"
)

// Gazetteer resolves free-text place names to catalog attractions.
//
// Matching is deliberately permissive: a variant matches when it is a substring
// of an attraction's city, state, name or category, so "temple" selects every
// temple in the catalog.
type Gazetteer struct {
	groups  []domain.AliasGroup
	byAlias map[string]int
}

// NewGazetteer builds a Gazetteer over the given alias table. A nil table
// uses the built-in South-Indian place aliases.
func NewGazetteer(groups []domain.AliasGroup) *Gazetteer {
	if groups == nil {
		groups = aliasGroups
	}

	byAlias := make(map[string]int)
	for gi, g := range groups {
		for _, v := range g.Variants {
			v = normalizePlace(v)
			// First group wins when a spelling is listed twice.
			if _, ok := byAlias[v]; !ok {
				byAlias[v] = gi
			}
		}
	}

	return &Gazetteer{groups: groups, byAlias: byAlias}
}

// Groups returns the alias table in lookup order.
func (g *Gazetteer) Groups() []domain.AliasGroup {
	return g.groups
}

// Lookup returns the alias group containing place, if any.
func (g *Gazetteer) Lookup(place string) (domain.AliasGroup, bool) {
	gi, ok := g.byAlias[normalizePlace(place)]
	if !ok {
		return domain.AliasGroup{}, false
	}
	return g.groups[gi], true
}

// Matches reports whether attraction a belongs to the requested place.
func (g *Gazetteer) Matches(a domain.Attraction, place string) bool {
	return g.matcher(place)(a)
}

// Resolve returns the attractions matching place, preserving catalog order.
// A place with no match yields a *domain.ResolutionError.
func (g *Gazetteer) Resolve(attractions []domain.Attraction, place string) ([]domain.Attraction, error) {
	match := g.matcher(place)

	out := make([]domain.Attraction, 0)
	for _, a := range attractions {
		if match(a) {
			out = append(out, a)
		}
	}

	if len(out) == 0 {
		return nil, &domain.ResolutionError{Place: place}
	}
	return out, nil
}

// ResolveAll resolves every requested place in order. The first unresolved
// place aborts resolution.
func (g *Gazetteer) ResolveAll(attractions []domain.Attraction, places []string) ([]domain.Destination, error) {
	dests := make([]domain.Destination, 0, len(places))
	for _, p := range places {
		matched, err := g.Resolve(attractions, p)
		if err != nil {
			return nil, err
		}
		dests = append(dests, domain.Destination{Place: p, Attractions: matched})
	}
	return dests, nil
}

func (g *Gazetteer) matcher(place string) func(domain.Attraction) bool {
	name := normalizePlace(place)

	if strings.Contains(name, tirupatiToken) {
		return func(a domain.Attraction) bool {
			return strings.Contains(strings.ToLower(a.State), tirupatiState)
		}
	}

	needles := []string{name}
	if group, ok := g.Lookup(name); ok {
		needles = make([]string, 0, len(group.Variants))
		for _, v := range group.Variants {
			needles = append(needles, normalizePlace(v))
		}
	}

	return func(a domain.Attraction) bool {
		fields := [...]string{
			normalizePlace(a.City),
			normalizePlace(a.State),
			normalizePlace(a.Name),
			normalizePlace(a.Category),
		}
		for _, n := range needles {
			for _, f := range fields {
				if strings.Contains(f, n) {
					return true
				}
			}
		}
		return false
	}
}

func normalizePlace(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// SplitPlaces splits a ';'-delimited list of place names, trimming each token
// and discarding empty ones.
func SplitPlaces(raw string) []string {
	parts := strings.Split(raw, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
