// Package config loads runtime configuration for the herbalist CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables prefixed with HERBALIST_ (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-d string   SQLite DSN of the key-value store
//	-s string   secure store directory
//	-p string   secure store passphrase
//	-seed       seed the demo account
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "database_dsn": "herbalist.db",
//	  "secure_store_dir": ".herbalist-secure",
//	  "secure_store_passphrase": "herbalist-device",
//	  "seed_demo_user": true,
//	  "submit_lock_duration": "800ms",
//	  "log_level": "warn",
//	  "log_format": "text"
//	}
//
// # Environment
//
//	HERBALIST_DATABASE_DSN, HERBALIST_SECURE_STORE_DIR,
//	HERBALIST_SECURE_STORE_PASSPHRASE, HERBALIST_SEED_DEMO_USER,
//	HERBALIST_SUBMIT_LOCK_DURATION, HERBALIST_LOG_LEVEL, HERBALIST_LOG_FORMAT
package config
