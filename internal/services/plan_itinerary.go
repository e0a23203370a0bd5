package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	MinDuration = 1
	MaxDuration = 7

	// StartDateLayout is the accepted calendar date format.
	StartDateLayout = "2006-01-02"
)

// planNamespace derives stable plan IDs from request keys.
var planNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("itinerary-service/plans"))

type PlanItineraryRequest struct {
	Places      []string
	Duration    int
	StartDate   string
	MaxHours    int
	Diagnostics bool
}

// Key canonicalizes the request. Equal keys always produce the same schedule
// for the same catalog; places are compared ignoring case, surrounding space
// and repeats, as resolution does.
func (r PlanItineraryRequest) Key() string {
	places := uniquePlaces(r.Places)
	for i, p := range places {
		places[i] = normalizePlace(p)
	}

	return strings.Join([]string{
		strings.Join(places, ";"),
		strconv.Itoa(r.Duration),
		r.StartDate,
		strconv.Itoa(r.MaxHours),
		strconv.FormatBool(r.Diagnostics),
	}, "|")
}

// Validate checks the request fields that make planning impossible.
func (r PlanItineraryRequest) Validate() error {
	if len(r.Places) == 0 {
		return &domain.ValidationError{Field: "places", Reason: "at least one place is required"}
	}
	if strings.TrimSpace(r.StartDate) == "" {
		return &domain.ValidationError{Field: "startDate", Reason: "start date is required"}
	}
	if r.Duration < MinDuration || r.Duration > MaxDuration {
		return &domain.ValidationError{
			Field:  "duration",
			Reason: fmt.Sprintf("must be between %d and %d, got %d", MinDuration, MaxDuration, r.Duration),
		}
	}
	return nil
}

// Itinerary planning contract served by Planner and CachedPlanner.
type ItineraryPlanner interface {
	PlanItinerary(ctx context.Context, req PlanItineraryRequest) (*domain.Itinerary, error)
}

// Planner composes resolution, sequencing, clustering and day packing.
// It holds only read-only state and is safe for concurrent use.
type Planner struct {
	attractions        []domain.Attraction
	gazetteer          *Gazetteer
	clusterCount       int
	diagnosticClusters int
	logger             *slog.Logger
	metrics            *obs.PlannerMetrics
}

type PlannerOption func(*Planner)

func WithGazetteer(g *Gazetteer) PlannerOption {
	return func(p *Planner) { p.gazetteer = g }
}

func WithClusterCounts(packing, diagnostic int) PlannerOption {
	return func(p *Planner) {
		if packing > 0 {
			p.clusterCount = packing
		}
		if diagnostic > 0 {
			p.diagnosticClusters = diagnostic
		}
	}
}

func WithLogger(l *slog.Logger) PlannerOption {
	return func(p *Planner) { p.logger = l }
}

func WithMetrics(m *obs.PlannerMetrics) PlannerOption {
	return func(p *Planner) { p.metrics = m }
}

// NewPlanner returns a Planner over the given catalog snapshot.
func NewPlanner(attractions []domain.Attraction, opts ...PlannerOption) *Planner {
	p := &Planner{
		attractions:        attractions,
		clusterCount:       DefaultClusterCount,
		diagnosticClusters: DefaultDiagnosticClusterCount,
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.gazetteer == nil {
		p.gazetteer = NewGazetteer(nil)
	}
	return p
}

// Attractions returns the catalog snapshot the planner works on.
func (p *Planner) Attractions() []domain.Attraction { return p.attractions }

// Gazetteer returns the resolver the planner matches place names with.
func (p *Planner) Gazetteer() *Gazetteer { return p.gazetteer }

// PlanItinerary builds a day-by-day itinerary.
//
// Any failure aborts the whole request: a *domain.ValidationError for unusable
// input, a *domain.ResolutionError when a place matches nothing, and a wrapped
// error otherwise. No partial itinerary is ever returned.
func (p *Planner) PlanItinerary(ctx context.Context, req PlanItineraryRequest) (_ *domain.Itinerary, err error) {
	ctx, span := otel.Tracer("itinerary-service/services").Start(ctx, "PlanItinerary", trace.WithAttributes(
		attribute.StringSlice("itinerary.places", req.Places),
		attribute.Int("itinerary.duration", req.Duration),
		attribute.Int("itinerary.max_hours", req.MaxHours),
	))
	defer span.End()
	defer obs.Time(ctx, "services.PlanItinerary")(&err)

	start := time.Now()
	defer func() {
		outcome := "ok"
		if err != nil {
			outcome = outcomeOf(err)
			span.RecordError(err)
			span.SetStatus(codes.Error, outcome)
		}
		p.metrics.RecordPlan(ctx, time.Since(start), outcome)
	}()

	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	startDate, err := time.Parse(StartDateLayout, strings.TrimSpace(req.StartDate))
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: parse start date %q: %w", req.StartDate, err)
	}

	places := uniquePlaces(req.Places)

	dests, err := p.gazetteer.ResolveAll(p.attractions, places)
	if err != nil {
		var rErr *domain.ResolutionError
		if errors.As(err, &rErr) {
			p.metrics.RecordResolutionFailure(ctx)
		}
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	ordered, err := SequenceResolved(dests)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	used := make(UsedSet)
	days, err := PackItinerary(ctx, ordered, PackRequest{
		StartDate:    startDate,
		Duration:     req.Duration,
		MaxHours:     req.MaxHours,
		ClusterCount: p.clusterCount,
	}, used)
	if err != nil {
		return nil, fmt.Errorf("plan itinerary: %w", err)
	}

	it := &domain.Itinerary{
		PlanID:       uuid.NewSHA1(planNamespace, []byte(req.Key())).String(),
		Destinations: make([]string, 0, len(ordered)),
		Days:         days,
	}
	for _, d := range ordered {
		it.Destinations = append(it.Destinations, d.Place)
	}
	it.AllAttractions = it.Scheduled()

	if req.Diagnostics {
		diag, err := DiagnoseClusters(ordered, p.diagnosticClusters)
		if err != nil {
			return nil, fmt.Errorf("plan itinerary: %w", err)
		}
		it.Diagnostics = &diag
	}

	p.logger.InfoContext(ctx, "Itinerary planned",
		slog.String("plan_id", it.PlanID),
		slog.Any("destinations", it.Destinations),
		slog.Int("days", len(it.Days)),
		slog.Int("scheduled", len(used)),
	)

	return it, nil
}

// uniquePlaces drops repeated place names, ignoring case and surrounding
// space, and keeps the first spelling.
func uniquePlaces(places []string) []string {
	seen := make(map[string]struct{}, len(places))
	out := make([]string, 0, len(places))
	for _, p := range places {
		n := normalizePlace(p)
		if _, ok := seen[n]; ok {
			continue
		}
		seen[n] = struct{}{}
		out = append(out, p)
	}
	return out
}

func outcomeOf(err error) string {
	var vErr *domain.ValidationError
	var rErr *domain.ResolutionError
	switch {
	case errors.As(err, &vErr):
		return "invalid"
	case errors.As(err, &rErr):
		return "unresolved"
	default:
		return "error"
	}
}

// LoadCatalog reads the catalog once. A failing source is logged and treated
// as an empty catalog so the service still starts; every resolution then fails.
func LoadCatalog(ctx context.Context, catalog ports.AttractionCatalog, logger *slog.Logger) []domain.Attraction {
	attractions, err := catalog.ListAttractions(ctx)
	if err != nil {
		logger.ErrorContext(ctx, "Failed to load attraction catalog", slog.Any("error", err))
		return []domain.Attraction{}
	}
	if len(attractions) == 0 {
		logger.WarnContext(ctx, "Attraction catalog is empty", slog.Any("error", domain.ErrEmptyCatalog))
	}

	logger.InfoContext(ctx, "Attraction catalog loaded", slog.Int("attractions", len(attractions)))
	return attractions
}
