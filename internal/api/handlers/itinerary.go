package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"itinerary-service/internal/api/dto"
	"itinerary-service/internal/domain"
	"itinerary-service/internal/services"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

type ItineraryHandler struct {
	Planner services.ItineraryPlanner
	Logger  *slog.Logger
}

// Generate plans an itinerary for the posted trip request.
//
// Planning failures are reported as {"error": "..."} with status 200 so browser
// clients can show the message; only an unreadable body is a 400.
func (h *ItineraryHandler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("ItineraryHandler").Start(r.Context(), "Generate", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/generate_itinerary"),
	))
	defer span.End()

	l := h.logger().With(slog.String("handler", "Generate"))

	var req dto.ItineraryRequest

	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()

	if err := dec.Decode(&req); err != nil {
		l.WarnContext(ctx, "Failed to decode request body", slog.Any("error", err))
		span.SetStatus(codes.Error, "invalid body")
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		span.SetStatus(codes.Error, "invalid body")
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	diagnostics, _ := strconv.ParseBool(r.URL.Query().Get("diagnostics"))

	svcReq := services.PlanItineraryRequest{
		Places:      services.SplitPlaces(req.Places),
		Duration:    int(req.Duration),
		StartDate:   req.StartDate,
		MaxHours:    int(req.MaxHours),
		Diagnostics: diagnostics,
	}

	it, err := h.Planner.PlanItinerary(ctx, svcReq)
	if err != nil {
		l.InfoContext(ctx, "Itinerary request rejected", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "planning failed")
		writeError(w, r, http.StatusOK, domain.UserMessage(err))
		return
	}

	span.SetStatus(codes.Ok, "itinerary planned")
	writeJSON(w, r, http.StatusOK, dto.NewItineraryResponse(it))
}

func (h *ItineraryHandler) logger() *slog.Logger {
	if h.Logger == nil {
		return slog.Default()
	}
	return h.Logger
}
