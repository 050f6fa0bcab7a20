package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/xavierca1/calendly-kommo/internal/infra/http/handlers"
	appmw "github.com/xavierca1/calendly-kommo/internal/infra/http/middleware"
)

func newRouter(webhook *handlers.CalendlyWebhookHandler, health *handlers.HealthHandler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(handlers.Recoverer)
	r.Use(appmw.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
	}))

	r.Get("/", health.HandleRoot)
	r.Get("/health", health.Handle)
	r.Post("/webhook/calendly", webhook.Handle)
	r.Handle("/metrics", promhttp.Handler())

	r.NotFound(handlers.NotFound)

	return r
}
