// Package server binds a caller-provided listening socket to the
// health-check HTTP server.
//
// [Run] attaches the socket and returns an inert [Server] handle; nothing is
// accepted until the handle is driven, either directly via
// [Server.RunServer] or through [Serve], which also handles shutdown on
// context cancellation.
package server
