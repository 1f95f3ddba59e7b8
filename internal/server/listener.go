package server

import (
	"fmt"
	"net"
	"reflect"
	"syscall"
)

// attach verifies that listener can be handed to an HTTP server: it must be
// a TCP listener whose descriptor is still open and, where the platform lets
// us ask, in listening state. Listeners that hide their descriptor (TLS or
// other wrappers) are accepted after the network check.
func attach(listener net.Listener) error {
	if isNilListener(listener) {
		return fmt.Errorf("%w: %w", ErrSocketAttach, errNilListener)
	}

	switch network := listener.Addr().Network(); network {
	case "tcp", "tcp4", "tcp6":
	default:
		return fmt.Errorf("%w: %w (network %q)", ErrSocketAttach, errUnsupportedNetwork, network)
	}

	sc, ok := listener.(syscall.Conn)
	if !ok {
		return nil
	}

	raw, err := sc.SyscallConn()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSocketAttach, err)
	}

	var sockErr error
	if err := raw.Control(func(fd uintptr) {
		sockErr = checkListening(fd)
	}); err != nil {
		// closed descriptors fail here
		return fmt.Errorf("%w: %w", ErrSocketAttach, err)
	}
	if sockErr != nil {
		return fmt.Errorf("%w: %w", ErrSocketAttach, sockErr)
	}

	return nil
}

// isNilListener reports whether listener is nil or a nil pointer such as
// (*net.TCPListener)(nil), whose methods would dereference a nil descriptor.
func isNilListener(listener net.Listener) bool {
	if listener == nil {
		return true
	}
	v := reflect.ValueOf(listener)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
