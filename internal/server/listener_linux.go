//go:build linux

package server

import (
	"fmt"

	"golang.org/x/sys/unix"
)

func checkListening(fd uintptr) error {
	v, err := unix.GetsockoptInt(int(fd), unix.SOL_SOCKET, unix.SO_ACCEPTCONN)
	if err != nil {
		return fmt.Errorf("getsockopt SO_ACCEPTCONN: %w", err)
	}
	if v == 0 {
		return errSocketNotListening
	}
	return nil
}
