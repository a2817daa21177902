// Package db подключает сервис Mesto к PostgreSQL и применяет миграции.
package db

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"mesto/internal/mesto/config"
	"mesto/internal/mesto/resilience"
	"mesto/pkg/db/postgres"
	"mesto/pkg/logger"
)

// Константы для сообщений логгера.
const (
	LogDBInitializing    = "initializing mesto database"
	LogDBInitialized     = "mesto database initialized successfully"
	LogMigrationStarting = "starting database migrations for mesto service"
)

// Константы для сообщений об ошибках.
const (
	ErrDBMigrations = "failed to apply mesto database migrations"
	ErrDBConnection = "failed to connect to mesto database"
	ErrGetPath      = "failed to get path"
)

const maxConnectBackoff = 10 * time.Second

// DB представляет соединение с базой данных сервиса.
type DB struct {
	database *postgres.Database
}

// MigrationsURL возвращает адрес источника миграций для golang-migrate.
func MigrationsURL(migrationsDir string) (string, error) {
	if filepath.IsAbs(migrationsDir) {
		return "file://" + migrationsDir, nil
	}

	absPath, err := filepath.Abs(migrationsDir)
	if err != nil {
		return "", fmt.Errorf("%s: %w", ErrGetPath, err)
	}
	return "file://" + absPath, nil
}

// New применяет миграции и открывает пул соединений. Обе операции
// повторяются до cfg.ConnectAttempts раз, пока база поднимается.
func New(ctx context.Context, cfg *config.PostgresConfig) (*DB, error) {
	log := logger.Log(ctx)

	log.Info(ctx, LogDBInitializing,
		zap.String("host", cfg.Host),
		zap.Int("port", cfg.Port),
		zap.String("database", cfg.Database),
		zap.Int("min_conn", cfg.MinConn),
		zap.Int("max_conn", cfg.MaxConn))

	migrationsURL, err := MigrationsURL(cfg.MigrationsDir)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	retry := resilience.NewRetry("postgres", resilience.RetryConfig{
		MaxAttempts:    cfg.ConnectAttempts,
		InitialBackoff: cfg.ConnectBackoff,
		MaxBackoff:     maxConnectBackoff,
	})

	log.Info(ctx, LogMigrationStarting, zap.String("migrations_path", migrationsURL))
	err = retry.Execute(ctx, func(ctx context.Context) error {
		return postgres.MigrateDSN(ctx, cfg.GetConnectionURL(), migrationsURL)
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBMigrations, err)
	}

	var database *postgres.Database
	err = retry.Execute(ctx, func(ctx context.Context) error {
		var connectErr error
		database, connectErr = postgres.New(ctx, cfg.GetDSN(), cfg.MinConn, cfg.MaxConn)
		return connectErr
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrDBConnection, err)
	}

	log.Info(ctx, LogDBInitialized)

	return &DB{database: database}, nil
}

// Close закрывает соединение с базой данных.
func (db *DB) Close(ctx context.Context) {
	db.database.Close(ctx)
}

// Pool возвращает пул соединений с базой данных.
func (db *DB) Pool() *pgxpool.Pool {
	return db.database.Pool()
}
