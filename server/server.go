// Package server exposes the recommendation service over HTTP.
package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/silverspace/go-silverspace/core"
	"github.com/silverspace/go-silverspace/mail"
	"github.com/silverspace/go-silverspace/monitor"
	"github.com/silverspace/go-silverspace/recommend"
)

var errNoIndex = errors.New("server requires a recommendation index")

// PosterFetcher resolves an external movie ID to a poster URL.
type PosterFetcher interface {
	FetchPoster(ctx context.Context, externalID string) (string, error)
}

// DetailsFetcher resolves a title to its metadata details.
type DetailsFetcher interface {
	Lookup(ctx context.Context, title string) (*core.MovieDetails, error)
}

// TrailerSearcher resolves a title to a trailer watch URL.
type TrailerSearcher interface {
	SearchTrailer(ctx context.Context, title string) (string, error)
}

// Config configures a new Server instance. Index is required; the API
// clients and mailer are optional and the matching endpoints degrade or
// report unavailability when absent.
type Config struct {
	Index    *recommend.Index
	Posters  PosterFetcher
	Details  DetailsFetcher
	Trailers TrailerSearcher
	Mailer   mail.Mailer
	Logger   zerolog.Logger

	// Registry receives the Prometheus collectors. A fresh registry is
	// created when nil.
	Registry *prometheus.Registry
}

// Server is the HTTP server for the recommendation service.
type Server struct {
	index     *recommend.Index
	posters   PosterFetcher
	details   DetailsFetcher
	trailers  TrailerSearcher
	mailer    mail.Mailer
	logger    zerolog.Logger
	validate  *validator.Validate
	collector monitor.Collector
	summary   *monitor.InMemoryCollector
	registry  *prometheus.Registry
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Index == nil {
		return nil, errNoIndex
	}

	registry := cfg.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}

	summary := monitor.NewInMemoryCollector()
	collector := monitor.MultiCollector{summary, monitor.NewPromCollector(registry)}

	return &Server{
		index:     cfg.Index,
		posters:   cfg.Posters,
		details:   cfg.Details,
		trailers:  cfg.Trailers,
		mailer:    cfg.Mailer,
		logger:    cfg.Logger.With().Str("component", "server").Logger(),
		validate:  validator.New(),
		collector: collector,
		summary:   summary,
		registry:  registry,
	}, nil
}

// Handler returns an http.Handler for the API routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("GET /movies", s.handleMovies)
	mux.HandleFunc("GET /movies/{title}", s.handleMovieDetails)
	mux.HandleFunc("GET /recommend", s.handleRecommend)

	mux.HandleFunc("POST /mail/recommendations", s.handleMailRecommendations)
	mux.HandleFunc("POST /bugreport", s.handleBugReport)

	mux.HandleFunc("GET /metrics/summary", s.handleMetricsSummary)
	mux.Handle("GET /metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	return corsMiddleware(mux)
}

func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
