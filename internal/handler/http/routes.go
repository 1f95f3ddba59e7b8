package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// HealthCheckPath is the liveness probe route.
const HealthCheckPath = "/health_check"

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(withLogging)

	router.Get(HealthCheckPath, h.healthCheck)

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
