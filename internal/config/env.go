package config

import (
	"github.com/caarlos0/env/v11"
)

const envPrefix = "FUNDRAISE_"

// environ is a seam for tests; nil means the process environment.
var environ map[string]string

// parseEnv overlays cfg with FUNDRAISE_* variables. Unset variables leave the
// corresponding field untouched. It panics on parse errors.
func parseEnv(cfg *Config) {
	opts := env.Options{Prefix: envPrefix, Environment: environ}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		panic(err)
	}
}
