package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"itinerary-service/internal/domain"
	"itinerary-service/internal/platform/obs"
	"itinerary-service/internal/ports"

	"golang.org/x/sync/singleflight"
)

// CachedPlanner serves repeated requests from an ItineraryCache.
//
// Concurrent misses for the same request key are collapsed into one planning
// run that is not tied to any one caller's context; callers sharing a run each
// receive their own copy of the result. Cache failures are logged and never fail a
// request; errors from the wrapped planner are not cached.
type CachedPlanner struct {
	next    ItineraryPlanner
	cache   ports.ItineraryCache
	ttl     time.Duration
	group   singleflight.Group
	logger  *slog.Logger
	metrics *obs.PlannerMetrics
}

func NewCachedPlanner(
	next ItineraryPlanner,
	cache ports.ItineraryCache,
	ttl time.Duration,
	logger *slog.Logger,
	metrics *obs.PlannerMetrics,
) *CachedPlanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &CachedPlanner{next: next, cache: cache, ttl: ttl, logger: logger, metrics: metrics}
}

func (c *CachedPlanner) PlanItinerary(ctx context.Context, req PlanItineraryRequest) (*domain.Itinerary, error) {
	key := req.Key()

	it, ok, err := c.cache.Get(ctx, key)
	if err != nil {
		c.logger.WarnContext(ctx, "Itinerary cache read failed", slog.String("key", key), slog.Any("error", err))
	}
	c.metrics.RecordCacheLookup(ctx, ok)
	if ok {
		return it, nil
	}

	// The shared run outlives any single caller; each caller stops waiting
	// when its own context ends.
	detached := context.WithoutCancel(ctx)
	ch := c.group.DoChan(key, func() (any, error) {
		planned, err := c.next.PlanItinerary(detached, req)
		if err != nil {
			return nil, err
		}

		if err := c.cache.Set(detached, key, planned, c.ttl); err != nil {
			c.logger.WarnContext(detached, "Itinerary cache write failed", slog.String("key", key), slog.Any("error", err))
		}
		return planned, nil
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("cached planner: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, fmt.Errorf("cached planner: %w", res.Err)
		}
		planned := res.Val.(*domain.Itinerary)
		if res.Shared {
			c.logger.DebugContext(ctx, "Itinerary shared with concurrent request", slog.String("key", key))
			return planned.Clone(), nil
		}
		return planned, nil
	}
}
