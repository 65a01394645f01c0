package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"CONFIG_FILE", "PORT", "DATABASE_URL", "DB_MIGRATE", "REDIS_URL", "LOG_LEVEL",
		"RATE_RPS", "RATE_BURST", "PLAN_TIMEOUT_MS", "PLANNER_MAX_ATTEMPTS", "PLANNER_SEED"} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, 10, cfg.Planner.MaxAttempts)
	assert.Equal(t, 4, cfg.Planner.ShortTourLen)
}

func TestLoadFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "poiroute.yaml")
	body := `
port: "9090"
rate_rps: 5
plan_timeout: 750ms
planner:
  max_attempts: 4
  short_tour_len: 3
  seed: 17
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	clearEnv(t)
	t.Setenv("CONFIG_FILE", path)
	t.Setenv("PORT", "7070")
	t.Setenv("PLANNER_MAX_ATTEMPTS", "6")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7070", cfg.Port, "env beats file")
	assert.Equal(t, 5.0, cfg.RateRPS)
	assert.Equal(t, 750*time.Millisecond, cfg.PlanTimeout)
	assert.Equal(t, 6, cfg.Planner.MaxAttempts)
	assert.Equal(t, 3, cfg.Planner.ShortTourLen)
	assert.Equal(t, int64(17), cfg.Planner.Seed)
	assert.Equal(t, 50, cfg.Planner.TwoOptPasses, "defaults survive a partial file")
}

func TestLoadRejectsBadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("RATE_BURST", "zero")
	_, err := Load()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}
