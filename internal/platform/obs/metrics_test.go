package obs

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"go.opentelemetry.io/otel/metric/noop"
)

func TestPlannerMetricsNilIsSafe(t *testing.T) {
	var m *PlannerMetrics
	ctx := context.Background()

	m.RecordPlan(ctx, time.Millisecond, "ok")
	m.RecordResolutionFailure(ctx)
	m.RecordCacheLookup(ctx, true)
}

func TestNewPlannerMetrics(t *testing.T) {
	m, err := NewPlannerMetrics(noop.NewMeterProvider().Meter("test"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := context.Background()
	m.RecordPlan(ctx, time.Millisecond, "ok")
	m.RecordResolutionFailure(ctx)
	m.RecordCacheLookup(ctx, false)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer

	NewLogger(&buf, "production").Info("hello")
	if !strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected JSON log line, got %q", buf.String())
	}

	buf.Reset()
	NewLogger(&buf, "development").Info("hello")
	if !strings.Contains(buf.String(), "hello") || strings.HasPrefix(buf.String(), "{") {
		t.Fatalf("expected text log line, got %q", buf.String())
	}
}
