package api

import (
	"log/slog"
	"net/http"
	"time"

	"itinerary-service/internal/api/handlers"
	"itinerary-service/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

type RouterConfig struct {
	Planner        *services.Planner
	Itineraries    services.ItineraryPlanner
	Logger         *slog.Logger
	AllowedOrigins []string
	RequestTimeout time.Duration
	// MetricsHandler is mounted at /metrics when non-nil.
	MetricsHandler http.Handler
}

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(cfg RouterConfig) http.Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	itineraries := cfg.Itineraries
	if itineraries == nil {
		itineraries = cfg.Planner
	}
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(loggingMiddleware(logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(middleware.Timeout(timeout))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}

	itineraryHandler := &handlers.ItineraryHandler{Planner: itineraries, Logger: logger}
	attractionHandler := &handlers.AttractionHandler{
		Attractions: cfg.Planner.Attractions(),
		Gazetteer:   cfg.Planner.Gazetteer(),
	}

	r.Get("/health", handlers.Health(len(cfg.Planner.Attractions())))
	r.Post("/generate_itinerary", itineraryHandler.Generate)
	r.Get("/attractions", attractionHandler.List)
	r.Get("/aliases", attractionHandler.Aliases)
	if cfg.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", cfg.MetricsHandler)
	}

	return r
}
