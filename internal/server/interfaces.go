package server

import (
	"context"
	"net"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_mock.go -package=mock

// Server is a constructed, not-yet-driven HTTP server bound to a listening
// socket.
//
// The handle is inert until [RunServer] is called. Construction failures are
// reported by [Run]; everything returned by RunServer is a runtime failure.
type Server interface {
	// RunServer accepts connections on the attached listener and blocks until
	// the server stops. It returns nil after a Shutdown. The listener is
	// consumed by the first call; later calls return ErrServerAlreadyRunning.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight requests
	// until ctx is done. The listener is closed even if RunServer was never
	// called.
	Shutdown(ctx context.Context) error

	// Addr returns the address of the attached listener.
	Addr() net.Addr
}
