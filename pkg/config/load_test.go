package config_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto/pkg/config"
)

type testConfig struct {
	Host string `env:"TEST_LOAD_HOST" env-default:"localhost"`
	Port int    `env:"TEST_LOAD_PORT" env-default:"8080"`
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults without env file", func(t *testing.T) {
		cfg, err := config.Load[testConfig](ctx, "test", filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_LOAD_PORT", "9090")

		cfg, err := config.Load[testConfig](ctx, "test", "")
		require.NoError(t, err)

		assert.Equal(t, 9090, cfg.Port)
	})

	t.Run("values from env file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "test.env")
		require.NoError(t, os.WriteFile(path, []byte("TEST_LOAD_HOST=db.internal\n"), 0o600))

		cfg, err := config.Load[testConfig](ctx, "test", path)
		require.NoError(t, err)

		assert.Equal(t, "db.internal", cfg.Host)
	})

	t.Run("invalid value", func(t *testing.T) {
		t.Setenv("TEST_LOAD_PORT", "not-a-number")

		cfg, err := config.Load[testConfig](ctx, "test", "")
		require.Error(t, err)
		assert.Nil(t, cfg)
	})
}
