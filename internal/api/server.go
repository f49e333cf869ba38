package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"shoplens/pkg/config"
	"shoplens/pkg/middleware"
)

// Handler builds the HTTP handler with routes and middleware.
func (a *App) Handler(cfg config.Config) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID())
	r.Use(middleware.Recover(a.log))
	r.Use(middleware.Tracing(cfg))
	r.Use(cors(a.cfg.CORSOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok":true}`))
	})
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) { _, _ = w.Write([]byte("pong")) })
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	r.Route("/auth", func(ar chi.Router) {
		ar.Post("/register", a.register)
		ar.Post("/login", a.login)
		ar.Post("/refresh", a.refresh)
		ar.Post("/logout", a.logout)
		ar.With(a.requireTenant).Get("/me", a.me)
	})

	r.Route("/tenant", func(tr chi.Router) {
		tr.Use(a.requireTenant)
		tr.Use(a.recordUsage)
		tr.Get("/settings", a.getSettings)
		tr.Put("/settings", a.putSettings)
		tr.Post("/regenerate-api-key", a.regenerateAPIKey)
		tr.Get("/usage/summary", a.getUsageSummary)
	})

	// Storefront analytics surface, authenticated by tenant API key.
	r.Route("/v1", func(vr chi.Router) {
		vr.Use(a.requireAPIKey)
		vr.Use(a.recordUsage)
		vr.Get("/analytics/overview", a.getAnalyticsOverview)
	})

	return r
}
