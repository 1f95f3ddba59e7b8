package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/go-health-check/internal/logger"
	"github.com/go-resty/resty/v2"
)

const healthCheckPath = "/health_check"

type httpHealthAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPHealthAdapter constructs an HTTP implementation of [HealthAdapter].
// address may be "host:port" or a full URL; a missing scheme defaults to
// http. Every request is bounded by timeout.
//
// Returns an error if address is empty or cannot be parsed as a URL.
func NewHTTPHealthAdapter(address string, timeout time.Duration, logger *logger.Logger) (HealthAdapter, error) {
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid health check address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout)

	return &httpHealthAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Check implements [HealthAdapter].
func (h *httpHealthAdapter) Check(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(healthCheckPath)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUnreachable, err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Str("trace_id", resp.Header().Get("X-Trace-ID")).
		Msg("health check answered")

	return mapHTTPError(resp)
}
