// Package api exposes the chunk inspection service over HTTP. Clients POST
// raw PNG, MNG, or JNG bytes and get back a structured report of the file's
// chunks, header, and validity, optionally persisted for later retrieval.
package api

import (
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/aexlab51/PNG-library/pkg/storage"
)

// NewRouter builds the HTTP router with all routes configured.
func NewRouter(reports *storage.ReportStore, config ServerConfig, metrics *Metrics) chi.Router {
	server := NewServer(reports, config, metrics)

	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Prometheus metrics endpoint (unprotected for scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API key authentication middleware for protected routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(metrics.instrumentAuthMiddleware(apiKeyMiddleware(config.APIKey)))

		r.Get("/health", metrics.InstrumentHandler("GET", "/api/v1/health", server.handleHealth))

		r.Post("/inspect", metrics.InstrumentHandler("POST", "/api/v1/inspect", server.handleInspect))

		r.Get("/reports", metrics.InstrumentHandler("GET", "/api/v1/reports", server.handleListReports))
		r.Get("/reports/{id}", metrics.InstrumentHandler("GET", "/api/v1/reports/{id}", server.handleGetReport))
		r.Delete("/reports/{id}", metrics.InstrumentHandler("DELETE", "/api/v1/reports/{id}", server.handleDeleteReport))
	})

	return r
}

// StartServer starts the HTTP server and blocks until it fails.
func StartServer(reports *storage.ReportStore, config ServerConfig) error {
	metrics := NewMetrics()
	r := NewRouter(reports, config, metrics)

	addr := fmt.Sprintf("%s:%d", config.Bind, config.Port)
	log.Info("starting inspection server", "addr", addr)
	log.Info("metrics endpoint ready", "url", fmt.Sprintf("http://%s/metrics", addr))
	return http.ListenAndServe(addr, r)
}
