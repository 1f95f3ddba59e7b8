// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client side of the liveness probe.
//
// [HealthAdapter] decouples callers (the probe binary, tests) from the
// transport. The package ships an HTTP implementation built on resty
// ([NewHTTPHealthAdapter]); non-2xx answers are mapped to the sentinel errors
// in errors.go so callers can use [errors.Is].
package adapter

import "context"

// HealthAdapter checks whether a health-check server is alive.
type HealthAdapter interface {
	// Check performs one GET /health_check. It returns nil only for a 2xx
	// answer; transport failures and other statuses are returned as errors.
	Check(ctx context.Context) error
}
