package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-health-check/internal/config"
	"github.com/MKhiriev/go-health-check/internal/logger"
	"github.com/MKhiriev/go-health-check/internal/server"
	"github.com/rs/zerolog"
)

const role = "health-check-server"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetStructuredConfig()
	if err != nil {
		logger.NewLogger(role, zerolog.DebugLevel).Fatal().Err(err).Msg("error getting configs")
	}

	// already validated by config.GetStructuredConfig
	level, _ := cfg.Log.ZerologLevel()
	log := logger.NewLogger(role, level)
	log.Debug().Any("config", cfg).Msg("received configs")

	if err := run(cfg, log); err != nil {
		log.Error().Err(err).Msg("server terminated")
		os.Exit(1)
	}
}

func run(cfg *config.StructuredConfig, log *logger.Logger) error {
	listener, err := net.Listen("tcp", cfg.Server.HTTPAddress)
	if err != nil {
		return fmt.Errorf("error binding %s: %w", cfg.Server.HTTPAddress, err)
	}

	srv, err := server.Run(listener, log)
	if err != nil {
		return fmt.Errorf("error creating server: %w", err)
	}

	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	return server.Serve(ctx, srv, cfg.Server.ShutdownTimeout, log)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
