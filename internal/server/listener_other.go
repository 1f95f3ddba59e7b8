//go:build !linux

package server

// checkListening is a no-op where SO_ACCEPTCONN is not portable; an open
// descriptor is all we can verify.
func checkListening(uintptr) error {
	return nil
}
