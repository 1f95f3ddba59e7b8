package server

import (
	"net"
	"net/http"

	myHTTP "github.com/MKhiriev/go-health-check/internal/handler/http"
	"github.com/MKhiriev/go-health-check/internal/logger"
)

// Run binds listener to a new HTTP server answering GET /health_check and
// returns the server without starting it.
//
// The listener must already be bound and listening. Ownership passes to Run:
// on success it belongs to the returned Server, on failure Run closes it and
// returns an error matching [ErrSocketAttach]. Run spawns no goroutines and
// performs no network I/O of its own.
func Run(listener net.Listener, logger *logger.Logger) (Server, error) {
	if err := attach(listener); err != nil {
		if !isNilListener(listener) {
			_ = listener.Close()
		}
		return nil, err
	}

	router := myHTTP.NewHandler(logger).Init()

	return newHTTPServer(listener, router, &http.Server{
		ErrorLog: logger.StdLogger("http"),
	}), nil
}
