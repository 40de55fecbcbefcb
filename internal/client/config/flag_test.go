package config

import (
	"os"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "all flags", args: []string{"cmd", "-d", "x.db", "-s", "/tmp/sec", "-p", "pw", "-seed", "-l", "debug"},
			expected: &Config{DatabaseDSN: "x.db", SecureStoreDir: "/tmp/sec", SecureStorePassphrase: "pw", SeedDemoUser: true, LogLevel: "debug"}},
		{name: "equals form and unknown flags ignored", args: []string{"cmd", "-d=y.db", "-seed=false", "-x", "1", "-c", "cfg.json"},
			expected: &Config{DatabaseDSN: "y.db"}},
		{name: "empty dsn", args: []string{"cmd", "-d="},
			expected: &Config{}},
		{name: "malformed bool", args: []string{"cmd", "-seed=maybe"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(tt.expected, config))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
