package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/noah-isme/backend-apotek/internal/auth"
	"github.com/noah-isme/backend-apotek/internal/cart"
	"github.com/noah-isme/backend-apotek/internal/catalog"
	"github.com/noah-isme/backend-apotek/internal/checkout"
	"github.com/noah-isme/backend-apotek/internal/common"
	"github.com/noah-isme/backend-apotek/internal/config"
	"github.com/noah-isme/backend-apotek/internal/doctor"
	"github.com/noah-isme/backend-apotek/internal/health"
	"github.com/noah-isme/backend-apotek/internal/obs"
	"github.com/noah-isme/backend-apotek/internal/ratelimit"
	"github.com/noah-isme/backend-apotek/internal/security"
	"github.com/noah-isme/backend-apotek/internal/session"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	sessions := session.NewManager(session.Config{TTL: cfg.SessionTTL})

	users, err := auth.SeedUsers()
	if err != nil {
		logger.Fatal().Err(err).Msg("seed users")
	}
	authService, err := auth.NewService(auth.Config{
		Users:    users,
		Sessions: sessions,
		Secret:   cfg.JWTSecret,
		TokenTTL: cfg.SessionTTL,
	})
	if err != nil {
		logger.Fatal().Err(err).Msg("initialise auth service")
	}
	authMiddleware := auth.Middleware{Service: authService}

	validate := validator.New()

	authHandler := &auth.Handler{Service: authService, Validate: validate}
	catalogHandler := &catalog.Handler{Stores: sessions, Validate: validate}
	cartHandler := &cart.Handler{Sessions: sessions, Validate: validate}
	checkoutHandler := &checkout.Handler{Sessions: sessions, TaxRate: cfg.TaxRate}
	doctorHandler := &doctor.Handler{Stores: sessions}

	var httpMetrics *obs.HTTPMetrics
	var sessionMetrics *obs.SessionMetrics
	if cfg.MetricsEnabled {
		registry := prometheus.DefaultRegisterer
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, nil, registry)
		sessionMetrics = obs.NewSessionMetrics(cfg.MetricsNamespace, func() float64 {
			return float64(sessions.Count())
		}, registry)
	}

	loginLimiter, err := ratelimit.New(cfg.LoginRateLimit)
	if err != nil {
		logger.Fatal().Err(err).Msg("parse login rate limit")
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))
	r.Use(security.Headers{EnableHSTS: cfg.AppEnv == "production"}.Middleware)
	r.Use(security.BodyLimit{Max: cfg.MaxBodyBytes}.Middleware)
	r.Use(obs.RoutePatternMiddleware)
	if httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins(cfg),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	healthHandler := health.Handler{Started: time.Now(), Sessions: sessions}
	r.Get("/healthz", healthHandler.Live)
	r.Get("/readyz", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Route("/auth", func(a chi.Router) {
			a.With(ratelimit.Middleware(loginLimiter)).
				Post("/login", counted(authHandler.Login, sessionMetrics, true))
			a.With(authMiddleware.RequireAuth).
				Post("/logout", counted(authHandler.Logout, sessionMetrics, false))
		})

		v.Group(func(g chi.Router) {
			g.Use(authMiddleware.RequireAuth)

			g.Get("/medicines", catalogHandler.List)
			g.Get("/categories", catalogHandler.Categories)
			g.Get("/doctor/suggestions", doctorHandler.Suggestions)

			g.Get("/cart", cartHandler.Get)
			g.Post("/cart/items", cartHandler.AddItem)
			g.Put("/cart/items/{id}", cartHandler.SetQuantity)
			g.Delete("/cart/items/{id}", cartHandler.RemoveItem)
			g.Delete("/cart", cartHandler.Clear)

			g.Get("/checkout/summary", checkoutHandler.Summary)
			g.Post("/checkout/slip", checkoutHandler.Slip)

			g.Group(func(admin chi.Router) {
				admin.Use(authMiddleware.RequireRole(common.RoleAdmin))
				admin.Post("/medicines", catalogHandler.Create)
				admin.Put("/medicines/{id}", catalogHandler.Update)
				admin.Delete("/medicines/{id}", catalogHandler.Delete)
			})
		})
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"http://localhost:5173"}
	}
	return cfg.CORSAllowedOrigins
}

// counted bumps the login/logout counters when the wrapped handler succeeds.
func counted(next http.HandlerFunc, metrics *obs.SessionMetrics, login bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if metrics == nil {
			next(w, r)
			return
		}
		recorder := obs.NewStatusRecorder(w)
		next(recorder, r)
		if recorder.Status() < 300 {
			if login {
				metrics.LoginsTotal.Inc()
			} else {
				metrics.LogoutsTotal.Inc()
			}
		}
	}
}
