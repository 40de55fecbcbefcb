package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Setenv("HERBALIST_DATABASE_DSN", "file:env.db")
	t.Setenv("HERBALIST_SEED_DEMO_USER", "false")
	t.Setenv("HERBALIST_SUBMIT_LOCK_DURATION", "2s")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	want := &Config{}
	want.LoadDefaults()
	want.DatabaseDSN = "file:env.db"
	want.SeedDemoUser = false
	want.SubmitLockDuration = 2 * time.Second

	assert.Empty(t, cmp.Diff(want, cfg))
}

func TestParseEnv_UnsetKeepsValues(t *testing.T) {
	cfg := &Config{DatabaseDSN: "keep.db", LogLevel: "error"}
	parseEnv(cfg)

	assert.Equal(t, "keep.db", cfg.DatabaseDSN)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestParseEnv_MalformedPanics(t *testing.T) {
	t.Setenv("HERBALIST_SUBMIT_LOCK_DURATION", "soon")

	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}
