package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRuntimeDefaults(t *testing.T) {
	cfg, err := LoadRuntime()
	require.NoError(t, err)

	assert.Zero(t, cfg.Seed)
	assert.Zero(t, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.Histogram)
	assert.True(t, cfg.Sample)
}

func TestLoadRuntimeFromEnv(t *testing.T) {
	t.Setenv("DCSIM_SEED", "1234")
	t.Setenv("DCSIM_WORKERS", "3")
	t.Setenv("DCSIM_LOG_LEVEL", "debug")
	t.Setenv("DCSIM_HISTOGRAM", "true")
	t.Setenv("DCSIM_SAMPLE", "false")

	cfg, err := LoadRuntime()
	require.NoError(t, err)

	assert.Equal(t, int64(1234), cfg.Seed)
	assert.Equal(t, 3, cfg.Workers)
	assert.True(t, cfg.Histogram)
	assert.False(t, cfg.Sample)

	level, err := cfg.Level()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoadRuntimeRejectsBadValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{name: "seed not a number", key: "DCSIM_SEED", value: "lucky"},
		{name: "negative workers", key: "DCSIM_WORKERS", value: "-2"},
		{name: "unknown log level", key: "DCSIM_LOG_LEVEL", value: "chatty"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv(tc.key, tc.value)
			_, err := LoadRuntime()
			assert.Error(t, err)
		})
	}
}
