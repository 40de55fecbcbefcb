package config

import (
	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every variable name declared in Config's env tags.
const EnvPrefix = "HERBALIST_"

// parseEnv overlays Config with HERBALIST_* environment variables. Unset
// variables leave the field untouched. Panics on malformed values, like the
// other loaders.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
