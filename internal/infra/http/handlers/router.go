package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/evangelism-crm/internal/infra/http/middleware"
)

type Router struct {
	Auth           *AuthHandler
	Converts       *ConvertHandler
	Dashboard      *DashboardHandler
	Care           *CareHandler
	Voice          *VoiceHandler
	Demo           *DemoHandler
	Health         *HealthHandler
	Authenticator  middleware.Authenticator
	ResetLimiter   *middleware.RateLimiter
	AllowedOrigins []string
}

// Handler mounts every route. Everything under /api needs a bearer token except
// login and the demo endpoints.
func (rt *Router) Handler() http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   rt.origins(),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))
	r.Use(middleware.Metrics)

	r.Get("/health", rt.Health.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", rt.Auth.Login)

		r.Route("/demo", func(r chi.Router) {
			r.Get("/info", rt.Demo.Info)
			r.Get("/stats", rt.Demo.Stats)
			r.With(middleware.RateLimit(rt.ResetLimiter)).Post("/reset", rt.Demo.Reset)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(rt.Authenticator))

			r.Get("/auth/me", rt.Auth.Me)
			r.Get("/users", rt.Auth.ListUsers)
			r.Get("/users/{id}", rt.Auth.GetUser)

			r.Route("/converts", func(r chi.Router) {
				r.Get("/", rt.Converts.List)
				r.Post("/", rt.Converts.Create)
				r.Get("/{id}", rt.Converts.Get)
				r.Patch("/{id}", rt.Converts.Update)
				r.Delete("/{id}", rt.Converts.Delete)
			})
			r.Get("/services", rt.Converts.ListServices)

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/stats", rt.Dashboard.Stats)
				r.Get("/stage-distribution", rt.Dashboard.StageDistribution)
				r.Get("/recent-activity", rt.Dashboard.RecentActivity)
			})
			r.Get("/analytics/converts", rt.Dashboard.ConvertAnalytics)
			r.Get("/analytics/voice-calls", rt.Dashboard.VoiceCallAnalytics)

			r.Get("/health-scores", rt.Care.ListHealthScores)
			r.Get("/health-scores/{convertID}", rt.Care.GetHealthScore)
			r.Post("/health-scores/{convertID}/recalculate", rt.Care.RecalculateHealthScore)

			r.Get("/alerts", rt.Care.ListAlerts)
			r.Get("/alerts/{id}", rt.Care.GetAlert)
			r.Patch("/alerts/{id}", rt.Care.UpdateAlert)

			r.Route("/voice-agent", func(r chi.Router) {
				r.Get("/config", rt.Voice.GetConfig)
				r.Put("/config", rt.Voice.UpdateConfig)
				r.Get("/scripts", rt.Voice.ListScripts)
				r.Post("/scripts", rt.Voice.CreateScript)
				r.Put("/scripts/{id}", rt.Voice.UpdateScript)
				r.Delete("/scripts/{id}", rt.Voice.DeleteScript)
				r.Get("/calls", rt.Voice.ListCalls)
				r.Post("/calls", rt.Voice.ScheduleCall)
				r.Get("/calls/{id}", rt.Voice.GetCall)
				r.Post("/calls/{id}/start", rt.Voice.StartCall)
				r.Post("/calls/{id}/complete", rt.Voice.CompleteCall)
				r.Post("/calls/{id}/simulate", rt.Voice.Simulate)
				r.Post("/make-call", rt.Voice.MakeCall)
			})
		})
	})

	return r
}

func (rt *Router) origins() []string {
	if len(rt.AllowedOrigins) == 0 {
		return []string{"*"}
	}
	return rt.AllowedOrigins
}
