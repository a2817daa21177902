package db_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesto/internal/mesto/config"
	"mesto/internal/mesto/db"
)

func TestMigrationsURL(t *testing.T) {
	t.Run("absolute path", func(t *testing.T) {
		url, err := db.MigrationsURL("/srv/mesto/migrations")
		require.NoError(t, err)
		assert.Equal(t, "file:///srv/mesto/migrations", url)
	})

	t.Run("relative path", func(t *testing.T) {
		url, err := db.MigrationsURL("migrations/mesto")
		require.NoError(t, err)

		abs, err := filepath.Abs("migrations/mesto")
		require.NoError(t, err)
		assert.Equal(t, "file://"+abs, url)
	})
}

func TestNewFailsOnMissingMigrations(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	cfg := &config.PostgresConfig{
		Host:            "127.0.0.1",
		Port:            1,
		User:            "user",
		Password:        "password",
		Database:        "mesto",
		MigrationsDir:   filepath.Join(t.TempDir(), "missing"),
		ConnectAttempts: 1,
	}

	database, err := db.New(ctx, cfg)
	require.Error(t, err)
	assert.Nil(t, database)
	assert.Contains(t, err.Error(), db.ErrDBMigrations)
}
