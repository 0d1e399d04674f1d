package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"extracurricular/internal/delivery/http/controllers"
	"extracurricular/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(activityController *controllers.ActivityController) *http.ServeMux {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("GET /activities", activityController.ListActivities)
	mux.HandleFunc("POST /activities/{activityName}/signup", activityController.SignUp)
	mux.HandleFunc("DELETE /activities/{activityName}/participants", activityController.Unregister)

	// Operations
	mux.HandleFunc("GET /healthz", controllers.Health)
	mux.Handle("GET /metrics", promhttp.Handler())

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}

// NewHandler wraps the router with request id, logging, metrics and CORS middleware.
func NewHandler(logger *slog.Logger, allowedOrigins []string, mux *http.ServeMux) http.Handler {
	var h http.Handler = mux
	h = middleware.CORS(allowedOrigins, h)
	h = middleware.Metrics(h)
	h = middleware.LoggingMiddleware(logger, h)
	h = middleware.RequestID(h)
	return h
}
