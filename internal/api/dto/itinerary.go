package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"

	"itinerary-service/internal/domain"
)

// FlexibleInt accepts a JSON number or a numeric string, since HTML form
// values arrive as strings.
type FlexibleInt int

func (f *FlexibleInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = 0
		return nil
	}

	raw := string(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		raw = strings.TrimSpace(s)
		if raw == "" {
			*f = 0
			return nil
		}
	}

	n, err := strconv.Atoi(raw)
	if err != nil {
		fl, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil || fl != math.Trunc(fl) {
			return fmt.Errorf("invalid integer %q", raw)
		}
		n = int(fl)
	}
	*f = FlexibleInt(n)
	return nil
}

type ItineraryRequest struct {
	Places    string      `json:"places"`
	Duration  FlexibleInt `json:"duration"`
	StartDate string      `json:"startDate"`
	MaxHours  FlexibleInt `json:"maxHours"`
}

type AttractionResponse struct {
	Name      string  `json:"name"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Category  string  `json:"category"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Cluster   *int    `json:"cluster,omitempty"`
	VisitTime int     `json:"visit_time"`
}

type LastLocationResponse struct {
	Name  string `json:"name"`
	City  string `json:"city"`
	State string `json:"state"`
}

type MapPointResponse struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Cluster   int     `json:"cluster"`
	VisitTime int     `json:"visit_time"`
}

type ClusterCenterResponse struct {
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	ClusterID int     `json:"cluster_id"`
}

type MapDataResponse struct {
	Attractions    []MapPointResponse      `json:"attractions"`
	ClusterCenters []ClusterCenterResponse `json:"cluster_centers"`
}

type DayResponse struct {
	Day          int                  `json:"day"`
	Date         string               `json:"date"`
	Destination  string               `json:"destination"`
	Attractions  []AttractionResponse `json:"attractions"`
	TotalTime    int                  `json:"total_time"`
	VisitTime    int                  `json:"visit_time"`
	TravelTime   int                  `json:"travel_time"`
	FoodTime     int                  `json:"food_time"`
	LastLocation LastLocationResponse `json:"last_location"`
	MapData      MapDataResponse      `json:"map_data"`
}

// NaN scores are encoded as null.
type DiagnosticsResponse struct {
	PerDestination map[string]*float64 `json:"per_destination"`
	Overall        *float64            `json:"overall"`
}

type ItineraryResponse struct {
	PlanID         string               `json:"plan_id"`
	Destinations   []string             `json:"destinations"`
	Itinerary      []DayResponse        `json:"itinerary"`
	AllAttractions []AttractionResponse `json:"all_attractions"`
	Diagnostics    *DiagnosticsResponse `json:"diagnostics,omitempty"`
}

type ListAttractionsResponse struct {
	Place       string               `json:"place"`
	Attractions []AttractionResponse `json:"attractions"`
}

type AliasGroupResponse struct {
	Key      string   `json:"key"`
	Variants []string `json:"variants"`
}

type ListAliasesResponse struct {
	Aliases []AliasGroupResponse `json:"aliases"`
}

func NewAttractionResponse(a domain.Attraction) AttractionResponse {
	return AttractionResponse{
		Name:      a.Name,
		City:      a.City,
		State:     a.State,
		Category:  a.Category,
		Latitude:  a.Latitude,
		Longitude: a.Longitude,
		VisitTime: a.VisitMinutes,
	}
}

func NewAttractionsResponse(as []domain.Attraction) []AttractionResponse {
	out := make([]AttractionResponse, 0, len(as))
	for _, a := range as {
		out = append(out, NewAttractionResponse(a))
	}
	return out
}

func newScheduledResponses(as []domain.ScheduledAttraction) []AttractionResponse {
	out := make([]AttractionResponse, 0, len(as))
	for _, sa := range as {
		a := NewAttractionResponse(sa.Attraction)
		cluster := sa.ClusterID
		a.Cluster = &cluster
		out = append(out, a)
	}
	return out
}

func NewItineraryResponse(it *domain.Itinerary) ItineraryResponse {
	res := ItineraryResponse{
		PlanID:         it.PlanID,
		Destinations:   append([]string{}, it.Destinations...),
		Itinerary:      make([]DayResponse, 0, len(it.Days)),
		AllAttractions: newScheduledResponses(it.AllAttractions),
	}

	for _, d := range it.Days {
		attractions := newScheduledResponses(d.Attractions)

		points := make([]MapPointResponse, 0, len(d.MapData.Attractions))
		for _, p := range d.MapData.Attractions {
			points = append(points, MapPointResponse{
				Name:      p.Name,
				Lat:       p.Lat,
				Lng:       p.Lng,
				Cluster:   p.ClusterID,
				VisitTime: p.VisitMinutes,
			})
		}

		centers := make([]ClusterCenterResponse, 0, len(d.MapData.ClusterCenters))
		for _, c := range d.MapData.ClusterCenters {
			centers = append(centers, ClusterCenterResponse{Lat: c.Lat, Lng: c.Lng, ClusterID: c.ClusterID})
		}

		res.Itinerary = append(res.Itinerary, DayResponse{
			Day:         d.DayIndex,
			Date:        d.Date.Format("2006-01-02"),
			Destination: d.Destination,
			Attractions: attractions,
			TotalTime:   d.TotalMinutes,
			VisitTime:   d.VisitMinutes,
			TravelTime:  d.TravelMinutes,
			FoodTime:    d.FoodMinutes,
			LastLocation: LastLocationResponse{
				Name:  d.LastLocation.Name,
				City:  d.LastLocation.City,
				State: d.LastLocation.State,
			},
			MapData: MapDataResponse{Attractions: points, ClusterCenters: centers},
		})
	}

	if it.Diagnostics != nil {
		diag := &DiagnosticsResponse{
			PerDestination: make(map[string]*float64, len(it.Diagnostics.PerDestination)),
			Overall:        finiteOrNil(it.Diagnostics.Overall),
		}
		for place, score := range it.Diagnostics.PerDestination {
			diag.PerDestination[place] = finiteOrNil(score)
		}
		res.Diagnostics = diag
	}

	return res
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
