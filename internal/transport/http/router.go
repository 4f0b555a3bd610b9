package http

import (
	"net/http"

	"github.com/focus-functions/internal/config"
	"github.com/focus-functions/internal/metrics"
	"github.com/focus-functions/internal/transport/http/handler"
	appmiddleware "github.com/focus-functions/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	if cfg.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	callableRL := appmiddleware.NewRateLimiter(rate.Limit(cfg.RateLimitRPS), cfg.RateLimitBurst)

	healthH := handler.NewHealthHandler()
	emailH := handler.NewEmailHandler(deps.Email)
	taskH := handler.NewTaskHandler(deps.Sweeper)

	r.Handle("/metrics", metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Get("/health-check/{action}", healthH.Ping)

		// ── Callables ────────────────────────────────────────────────────────
		r.With(callableRL.Limit).Post("/sendOtpEmail", emailH.SendOTPEmail)
		r.With(callableRL.Limit).Post("/sendWelcomeEmail", emailH.SendWelcomeEmail)

		// ── Scheduled tasks (manual trigger) ─────────────────────────────────
		if cfg.TaskTokenSecret != "" {
			r.With(appmiddleware.TaskAuth([]byte(cfg.TaskTokenSecret))).
				Post("/cleanupExpiredOtps", taskH.CleanupExpiredOTPs)
		}
	})

	return r
}
