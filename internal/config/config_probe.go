package config

import (
	"errors"
	"flag"
	"fmt"
	"time"

	"dario.cat/mergo"
)

// DefaultProbeTimeout bounds a single liveness probe.
const DefaultProbeTimeout = 3 * time.Second

// ProbeConfig configures the liveness probe client (cmd/probe).
type ProbeConfig struct {
	// Address of the server to probe, "host:port" or a URL.
	// Env: PROBE_ADDRESS
	Address string `env:"PROBE_ADDRESS"`

	// Timeout bounds the whole probe request.
	// Env: PROBE_TIMEOUT
	Timeout time.Duration `env:"PROBE_TIMEOUT"`
}

// GetProbeConfig merges defaults, environment variables and args
// (later wins) into a validated [ProbeConfig].
//
// Flags:
//
//	-a server address ([host]:[port] or URL)
//	-timeout probe timeout (e.g., "3s")
func GetProbeConfig(args []string) (*ProbeConfig, error) {
	envCfg := &ProbeConfig{}
	if err := parseEnv(envCfg); err != nil {
		return nil, err
	}

	flagsCfg := &ProbeConfig{}
	fs := flag.NewFlagSet("health-check-probe", flag.ContinueOnError)
	fs.StringVar(&flagsCfg.Address, "a", "", "Server address")
	fs.DurationVar(&flagsCfg.Timeout, "timeout", 0, "Probe timeout (e.g., 3s)")
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	cfg := &ProbeConfig{Address: DefaultHTTPAddress, Timeout: DefaultProbeTimeout}
	for _, src := range []*ProbeConfig{envCfg, flagsCfg} {
		if err := mergo.Merge(cfg, src, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (cfg *ProbeConfig) validate() error {
	var errs []error
	if cfg.Address == "" {
		errs = append(errs, fmt.Errorf("%w: empty address", ErrInvalidProbeConfigs))
	}
	if cfg.Timeout <= 0 {
		errs = append(errs, fmt.Errorf("%w: timeout must be positive", ErrInvalidProbeConfigs))
	}
	return errors.Join(errs...)
}
