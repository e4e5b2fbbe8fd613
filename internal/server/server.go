package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/pageza/pantrychef/backend/config"
	"github.com/pageza/pantrychef/backend/internal/api"
	"github.com/pageza/pantrychef/backend/internal/metrics"
	"github.com/pageza/pantrychef/backend/internal/middleware"
)

// Deps are the collaborators the server routes to.
type Deps struct {
	Services     api.Services
	RateLimiter  *middleware.RateLimiter
	Metrics      *metrics.Metrics
	Registry     *prometheus.Registry
	HealthChecks map[string]api.HealthCheck
	Logger       zerolog.Logger
}

// Server represents the HTTP server
type Server struct {
	router *gin.Engine
	http   *http.Server
	logger zerolog.Logger
}

// New creates a new server instance
func New(cfg *config.Config, deps Deps) *Server {
	router := gin.New()
	router.Use(
		middleware.RequestLogger(deps.Logger, deps.Metrics),
		middleware.Recovery(),
		middleware.CORS(cfg.CORSAllowedOrigins),
	)
	router.NoRoute(middleware.NotFound())

	if deps.Registry != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{})))
	}

	var generateMiddleware []gin.HandlerFunc
	if deps.RateLimiter.Enabled() {
		generateMiddleware = append(generateMiddleware, deps.RateLimiter.Middleware())
	}
	api.RegisterRoutes(router, deps.Services, api.Options{
		GenerateMiddleware: generateMiddleware,
		HealthChecks:       deps.HealthChecks,
	})

	return &Server{
		router: router,
		http: &http.Server{
			Addr:              cfg.Addr(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: deps.Logger,
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.http.Addr).Msg("starting server")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully stops the HTTP server
func (s *Server) Shutdown(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.http.Shutdown(ctx)
}
