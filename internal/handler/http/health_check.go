package http

import "net/http"

// healthCheck answers liveness probes with 200 and an empty body.
// The request is never inspected.
func (h *Handler) healthCheck(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
