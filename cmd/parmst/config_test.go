package main

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv removes keys for the duration of the test. godotenv only fills
// variables that are absent, so empty is not enough.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "") // registers restore of the original value
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestConfigFromEnv_Defaults(t *testing.T) {
	unsetEnv(t, envWorkers, envLogLevel, envLogFormat, envPartition, envSlots)

	cfg, err := configFromEnv()
	require.NoError(t, err)
	assert.Equal(t, runtime.GOMAXPROCS(0), cfg.Workers)
	assert.Equal(t, "stride", cfg.Partition)
	assert.Equal(t, "mutex", cfg.Slots)
}

func TestConfigFromEnv_Overrides(t *testing.T) {
	t.Setenv(envWorkers, "3")
	t.Setenv(envSlots, "atomic")
	t.Setenv(envLogFormat, "json")

	cfg, err := configFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, "atomic", cfg.Slots)
	assert.Equal(t, "json", cfg.LogFormat)

	t.Setenv(envWorkers, "zero")
	_, err = configFromEnv()
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	unsetEnv(t, envPartition, envLogLevel)

	dir := t.TempDir()
	local := filepath.Join(dir, ".env.local")
	shared := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(local, []byte("PARMST_PARTITION=blocks\n"), 0o644))
	require.NoError(t, os.WriteFile(shared, []byte("PARMST_PARTITION=stride\nPARMST_LOG_LEVEL=debug\n"), 0o644))

	require.NoError(t, loadDotEnv(filepath.Join(dir, "missing"), local, shared))

	cfg, err := configFromEnv()
	require.NoError(t, err)
	assert.Equal(t, "blocks", cfg.Partition) // first file wins
	assert.Equal(t, "debug", cfg.LogLevel)
}
