package server

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-health-check/internal/logger"
	"golang.org/x/sync/errgroup"
)

// Serve drives srv until ctx is cancelled or the server fails, then shuts it
// down, allowing in-flight requests up to shutdownTimeout to finish.
//
// A failure of RunServer is returned as is; a failed shutdown is returned
// only if the server itself stopped cleanly.
func Serve(ctx context.Context, srv Server, shutdownTimeout time.Duration, logger *logger.Logger) error {
	g, gCtx := errgroup.WithContext(ctx)
	runCtx, stopped := context.WithCancel(gCtx)
	defer stopped()

	g.Go(func() error {
		defer stopped()
		logger.Info().Str("address", srv.Addr().String()).Msg("Launching HTTP server")
		return srv.RunServer()
	})

	g.Go(func() error {
		<-runCtx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		logger.Info().Msg("HTTP server Shutdown")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("error shutting down server: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		logger.Error().Err(err).Msg("server stopped with error")
		return err
	}

	logger.Info().Msg("server Shutdown gracefully")
	return nil
}
