// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// startup invariants. Every failing group is reported; the result matches
// the corresponding sentinel with [errors.Is].
func (cfg *StructuredConfig) validate() error {
	var errs []error

	var addr NetAddress
	if err := addr.Set(cfg.Server.HTTPAddress); err != nil {
		errs = append(errs, fmt.Errorf("%w: address %q: %w", ErrInvalidServerConfigs, cfg.Server.HTTPAddress, err))
	}

	if cfg.Server.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: shutdown timeout must be positive", ErrInvalidServerConfigs))
	}

	if _, err := cfg.Log.ZerologLevel(); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrInvalidLogConfigs, err))
	}

	return errors.Join(errs...)
}
