package main

import (
	"context"
	"net/http"
	"time"

	"travelogues/internal/catalog"
	"travelogues/internal/config"
	"travelogues/internal/httpx"
	"travelogues/internal/metrics"
	"travelogues/internal/web"
)

const maxRequestBytes = 1 << 20

// NewRouter registers every route and wraps the mux in the middleware chain.
// ctx bounds the rate limiter's background cleanup.
func NewRouter(ctx context.Context, cfg *config.Config, svc *catalog.Service, pages *web.Handler) http.Handler {
	api := catalog.NewHTTPHandler(svc)
	router := http.NewServeMux()

	router.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	router.HandleFunc("GET /readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 500*time.Millisecond)
		defer cancel()
		if err := svc.Ping(ctx); err != nil {
			http.Error(w, "db not ready", http.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})
	router.Handle("GET /metrics", metrics.Handler())

	router.HandleFunc("GET /api/publications/{id}", api.GetPublication)
	router.HandleFunc("GET /api/publications", api.ListPublications)
	router.HandleFunc("GET /api/publications/{$}", api.ListPublications)
	router.HandleFunc("GET /api/decades", api.ListDecades)
	router.HandleFunc("GET /api/decades/{$}", api.ListDecades)
	router.HandleFunc("GET /api/travelers", api.ListTravelers)
	router.HandleFunc("GET /api/travelers/{$}", api.ListTravelers)
	router.HandleFunc("GET /api/searchpagedata", api.SearchPageData)
	router.HandleFunc("GET /api/search", api.Search)

	router.HandleFunc("GET /{$}", pages.Home)
	router.HandleFunc("GET /publications-list", pages.PublicationsList)
	router.HandleFunc("GET /travelers-list", pages.TravelersList)
	router.HandleFunc("GET /decades-list", pages.DecadesList)
	router.HandleFunc("GET /publication", pages.Publication)
	router.HandleFunc("GET /search", pages.Search)
	router.Handle("GET /css/", web.Static())
	router.HandleFunc("/", pages.NotFound)

	middlewares := []func(http.Handler) http.Handler{
		httpx.RequestIDMiddleware,
		httpx.AccessLogMiddleware,
		httpx.RecoveryMiddleware,
		httpx.SecurityHeadersMiddleware(cfg.Security.EnableHSTS),
		httpx.CORSMiddleware(cfg.Security.CORSOrigins),
		httpx.RequestSizeLimitMiddleware(maxRequestBytes),
	}
	if cfg.Security.RateLimitRPS > 0 {
		limiter := httpx.NewRateLimitMiddleware(ctx, cfg.Security.RateLimitRPS, cfg.Security.RateLimitBurst)
		middlewares = append(middlewares, limiter.Middleware)
	}
	middlewares = append(middlewares, httpx.MetricsMiddleware)

	return httpx.Chain(router, middlewares...)
}
