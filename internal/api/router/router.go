package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/teamdispo/dispo/internal/api/handlers"
	"github.com/teamdispo/dispo/internal/api/middleware"
	"github.com/teamdispo/dispo/internal/config"
	"github.com/teamdispo/dispo/internal/pkg/logger"
	"github.com/teamdispo/dispo/internal/pkg/metrics"
)

type Handlers struct {
	Health       *handlers.HealthHandler
	Auth         *handlers.AuthHandler
	Availability *handlers.AvailabilityHandler
	DailyCheck   *handlers.DailyCheckHandler
}

func New(cfg *config.Config, log *logger.Logger, h *Handlers) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(log))
	r.Use(middleware.Recovery(log))
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.DefaultCORS(cfg.Server.FrontendURL))
	r.Use(middleware.RateLimit(100, 200)) // 100 req/sec, burst of 200
	r.Use(metrics.Middleware)

	// Public routes
	r.Group(func(r chi.Router) {
		// Swagger documentation
		r.Get("/swagger/*", httpSwagger.WrapHandler)

		// Prometheus metrics
		r.Handle("/metrics", metrics.Handler())

		// Health checks
		r.Get("/healthz", h.Health.Healthz)
		r.Get("/readyz", h.Health.Readyz)

		// Auth endpoints
		r.Post("/api/v1/auth/register", h.Auth.Register)
		r.Post("/api/v1/auth/login", h.Auth.Login)
		r.Post("/api/v1/auth/logout", h.Auth.Logout)
	})

	// Protected routes (require authentication)
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthMiddleware(cfg.Auth.JWTSecret))

		// Auth
		r.Get("/api/v1/auth/me", h.Auth.Me)

		// Availability declarations
		r.Route("/api/v1/availability", func(r chi.Router) {
			r.Get("/", h.Availability.List)
			r.Post("/", h.Availability.Create)
			r.Get("/mine", h.Availability.Mine)
			r.Delete("/{id}", h.Availability.Delete)
		})

		// Daily stand-up checks
		r.Route("/api/v1/daily-checks", func(r chi.Router) {
			r.Post("/", h.DailyCheck.Submit)
			r.Get("/today", h.DailyCheck.Today)
		})
	})

	return r
}
