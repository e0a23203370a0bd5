package obs

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const ServiceName = "itinerary-service"

// InitTelemetry installs global tracer and meter providers. Metrics are
// exported in Prometheus format by the returned handler.
func InitTelemetry() (http.Handler, func(context.Context) error, error) {
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(ServiceName),
	)

	tp := sdktrace.NewTracerProvider(sdktrace.WithResource(res))
	otel.SetTracerProvider(tp)

	exporter, err := prometheus.New()
	if err != nil {
		return nil, nil, fmt.Errorf("init telemetry: prometheus exporter: %w", err)
	}
	mp := sdkmetric.NewMeterProvider(
		sdkmetric.WithReader(exporter),
		sdkmetric.WithResource(res),
	)
	otel.SetMeterProvider(mp)

	shutdown := func(ctx context.Context) error {
		if err := tp.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown tracer provider: %w", err)
		}
		if err := mp.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown meter provider: %w", err)
		}
		return nil
	}

	return promhttp.Handler(), shutdown, nil
}

// PlannerMetrics holds the planner's metric instruments.
// A nil *PlannerMetrics records nothing.
type PlannerMetrics struct {
	PlansTotal         metric.Int64Counter
	PlanDuration       metric.Float64Histogram
	ResolutionFailures metric.Int64Counter
	CacheLookups       metric.Int64Counter
}

func NewPlannerMetrics(meter metric.Meter) (*PlannerMetrics, error) {
	var (
		m   PlannerMetrics
		err error
	)

	m.PlansTotal, err = meter.Int64Counter(
		"itinerary_plans_total",
		metric.WithDescription("Itinerary planning requests by outcome"),
		metric.WithUnit("{plan}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create itinerary_plans_total: %w", err)
	}

	m.PlanDuration, err = meter.Float64Histogram(
		"itinerary_plan_duration_seconds",
		metric.WithDescription("Duration of itinerary planning in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("create itinerary_plan_duration_seconds: %w", err)
	}

	m.ResolutionFailures, err = meter.Int64Counter(
		"itinerary_resolution_failures_total",
		metric.WithDescription("Requested places that matched no attraction"),
		metric.WithUnit("{place}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create itinerary_resolution_failures_total: %w", err)
	}

	m.CacheLookups, err = meter.Int64Counter(
		"itinerary_cache_lookups_total",
		metric.WithDescription("Itinerary cache lookups by result"),
		metric.WithUnit("{lookup}"),
	)
	if err != nil {
		return nil, fmt.Errorf("create itinerary_cache_lookups_total: %w", err)
	}

	return &m, nil
}

func (m *PlannerMetrics) RecordPlan(ctx context.Context, dur time.Duration, outcome string) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(attribute.String("outcome", outcome))
	m.PlansTotal.Add(ctx, 1, attrs)
	m.PlanDuration.Record(ctx, dur.Seconds(), attrs)
}

func (m *PlannerMetrics) RecordResolutionFailure(ctx context.Context) {
	if m == nil {
		return
	}
	m.ResolutionFailures.Add(ctx, 1)
}

func (m *PlannerMetrics) RecordCacheLookup(ctx context.Context, hit bool) {
	if m == nil {
		return
	}
	result := "miss"
	if hit {
		result = "hit"
	}
	m.CacheLookups.Add(ctx, 1, metric.WithAttributes(attribute.String("result", result)))
}
