// Command probe performs one GET /health_check against a health-check
// server and exits 0 when it answers 2xx, 1 otherwise. It is meant for
// container HEALTHCHECK instructions where no HTTP client is installed.
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-health-check/internal/adapter"
	"github.com/MKhiriev/go-health-check/internal/config"
	"github.com/MKhiriev/go-health-check/internal/logger"
	"github.com/rs/zerolog"
)

func main() {
	log := logger.NewLogger("health-check-probe", zerolog.InfoLevel)

	if err := run(context.Background(), os.Args[1:], log); err != nil {
		log.Error().Err(err).Msg("probe failed")
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, log *logger.Logger) error {
	cfg, err := config.GetProbeConfig(args)
	if err != nil {
		return err
	}

	healthAdapter, err := adapter.NewHTTPHealthAdapter(cfg.Address, cfg.Timeout, log)
	if err != nil {
		return err
	}

	return healthAdapter.Check(ctx)
}
