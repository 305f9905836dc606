package api

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"transfer-route-service/internal/api/handlers"
	"transfer-route-service/internal/platform/metrics"
	"transfer-route-service/internal/services"
)

// NewRouter wires HTTP handlers with their dependencies and returns an http.Handler.
// This is the API composition root (handlers stay unaware of concrete adapters).
func NewRouter(svc *services.RouteService) http.Handler {
	mux := http.NewServeMux()

	routeHandler := &handlers.RouteDataHandler{Service: svc}

	mux.HandleFunc("/health", handlers.Health)
	mux.HandleFunc("/route-data", routeHandler.Index)
	mux.HandleFunc("/route-data/", routeHandler.Route)

	metrics.RegisterDefault()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))

	return loggingMiddleware(mux)
}
