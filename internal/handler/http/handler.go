package http

import (
	"github.com/MKhiriev/go-health-check/internal/logger"
)

// Handler owns the HTTP route table and its middleware.
type Handler struct {
	logger *logger.Logger
}

func NewHandler(logger *logger.Logger) *Handler {
	return &Handler{
		logger: logger,
	}
}
