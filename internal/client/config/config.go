package config

import "time"

// Config holds runtime settings for the herbalist CLI.
//
// Fields:
//   - DatabaseDSN: SQLite DSN of the key-value store; "" keeps everything in memory.
//   - SecureStoreDir: directory of the encrypted session mirror; "" disables it.
//   - SecureStorePassphrase: passphrase the mirror key is derived from.
//   - SeedDemoUser: add the demo account on start-up.
//   - SubmitLockDuration: window in which a repeated form submission is ignored.
//   - LogLevel, LogFormat: slog level name and "text" or "json".
type Config struct {
	DatabaseDSN           string        `env:"DATABASE_DSN"`
	SecureStoreDir        string        `env:"SECURE_STORE_DIR"`
	SecureStorePassphrase string        `env:"SECURE_STORE_PASSPHRASE"`
	SeedDemoUser          bool          `env:"SEED_DEMO_USER"`
	SubmitLockDuration    time.Duration `env:"SUBMIT_LOCK_DURATION"`
	LogLevel              string        `env:"LOG_LEVEL"`
	LogFormat             string        `env:"LOG_FORMAT"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.DatabaseDSN = "herbalist.db"
	c.SecureStoreDir = ".herbalist-secure"
	c.SecureStorePassphrase = "herbalist-device"
	c.SeedDemoUser = true
	c.SubmitLockDuration = 800 * time.Millisecond
	c.LogLevel = "warn"
	c.LogFormat = "text"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
