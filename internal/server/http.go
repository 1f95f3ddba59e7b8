package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync/atomic"
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	started atomic.Bool
}

func newHTTPServer(listener net.Listener, handler http.Handler, server *http.Server) *httpServer {
	server.Handler = handler
	return &httpServer{
		server:   server,
		listener: listener,
	}
}

func (h *httpServer) RunServer() error {
	if !h.started.CompareAndSwap(false, true) {
		return ErrServerAlreadyRunning
	}

	if err := h.server.Serve(h.listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("HTTP server Serve: %w", err)
	}

	return nil
}

func (h *httpServer) Shutdown(ctx context.Context) error {
	err := h.server.Shutdown(ctx)

	// Serve owns the listener once started; before that it is still ours.
	if !h.started.Load() {
		if closeErr := h.listener.Close(); closeErr != nil && !errors.Is(closeErr, net.ErrClosed) {
			err = errors.Join(err, closeErr)
		}
	}

	if err != nil {
		return fmt.Errorf("HTTP server Shutdown: %w", err)
	}
	return nil
}

func (h *httpServer) Addr() net.Addr {
	return h.listener.Addr()
}
