package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/herbalist/internal/flagx"
	"github.com/dmitrijs2005/herbalist/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields tell "absent" from a zero value, so a partial file only overrides
// what it names. Durations use timex.Duration ("800ms" or nanoseconds).
type JsonConfig struct {
	DatabaseDSN           *string         `json:"database_dsn"`
	SecureStoreDir        *string         `json:"secure_store_dir"`
	SecureStorePassphrase *string         `json:"secure_store_passphrase"`
	SeedDemoUser          *bool           `json:"seed_demo_user"`
	SubmitLockDuration    *timex.Duration `json:"submit_lock_duration"`
	LogLevel              *string         `json:"log_level"`
	LogFormat             *string         `json:"log_format"`
}

// parseJson overlays Config with values loaded from a JSON file named by
// -c or -config. Without either flag nothing is loaded. Panics on read or
// unmarshal errors.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigPath(os.Args[1:])
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.DatabaseDSN != nil {
		cfg.DatabaseDSN = *jc.DatabaseDSN
	}
	if jc.SecureStoreDir != nil {
		cfg.SecureStoreDir = *jc.SecureStoreDir
	}
	if jc.SecureStorePassphrase != nil {
		cfg.SecureStorePassphrase = *jc.SecureStorePassphrase
	}
	if jc.SeedDemoUser != nil {
		cfg.SeedDemoUser = *jc.SeedDemoUser
	}
	if jc.SubmitLockDuration != nil {
		cfg.SubmitLockDuration = jc.SubmitLockDuration.Duration
	}
	if jc.LogLevel != nil {
		cfg.LogLevel = *jc.LogLevel
	}
	if jc.LogFormat != nil {
		cfg.LogFormat = *jc.LogFormat
	}
}
