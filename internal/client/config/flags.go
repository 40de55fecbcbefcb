package config

import (
	"flag"
	"os"

	"github.com/dmitrijs2005/herbalist/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-d string   SQLite DSN of the key-value store
//	-s string   secure store directory
//	-p string   secure store passphrase
//	-seed bool  seed the demo account
//	-l string   log level
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-d", "-s", "-p", "-l"}, "-seed")

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "SQLite DSN of the key-value store (empty for in-memory)")
	fs.StringVar(&cfg.SecureStoreDir, "s", cfg.SecureStoreDir, "secure store directory (empty to disable)")
	fs.StringVar(&cfg.SecureStorePassphrase, "p", cfg.SecureStorePassphrase, "secure store passphrase")
	fs.BoolVar(&cfg.SeedDemoUser, "seed", cfg.SeedDemoUser, "seed the demo account")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
