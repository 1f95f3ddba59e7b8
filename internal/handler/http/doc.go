// Package http implements the HTTP transport layer of the health-check
// server.
//
// It exposes the route table and the middleware wrapped around it. Request
// tracing, access logging and panic recovery are handled in this package;
// the only route is the liveness probe GET /health_check.
package http
