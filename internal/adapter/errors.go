package adapter

import "errors"

var (
	// ErrNotFound means the server answered 404: the address points at
	// something that is not a health-check server.
	ErrNotFound = errors.New("health check route not found")
	// ErrUnhealthy is returned for any other non-2xx answer.
	ErrUnhealthy = errors.New("server is unhealthy")
	// ErrUnreachable wraps transport failures (refused, timeout, DNS).
	ErrUnreachable = errors.New("server is unreachable")
)
