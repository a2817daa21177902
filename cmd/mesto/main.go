// Package main реализует точку входа сервиса Mesto.
package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"go.uber.org/zap"

	"mesto/internal/mesto/adapters/cache"
	httpadapter "mesto/internal/mesto/adapters/http"
	"mesto/internal/mesto/adapters/postgres"
	"mesto/internal/mesto/adapters/services"
	"mesto/internal/mesto/app"
	"mesto/internal/mesto/config"
	"mesto/internal/mesto/db"
	portcache "mesto/internal/mesto/ports/cache"
	"mesto/internal/mesto/resilience"
	redisdb "mesto/pkg/db/redis"
	"mesto/pkg/logger"
	"mesto/pkg/shutdown"
)

// Константы для переменных окружения.
const (
	EnvLoggerMode  = "MESTO_LOGGER_MODE"
	EnvLoggerLevel = "MESTO_LOGGER_LEVEL"
	EnvConfigFile  = "MESTO_CONFIG_FILE"

	DefaultConfigFile = ".env"
)

// Константы для сообщений об ошибках.
const (
	ErrInitLogger           = "failed to initialize logger"
	ErrSyncLogger           = "failed to sync logger"
	ErrLoadConfig           = "failed to load configuration"
	ErrInitLoggerWithConfig = "failed to initialize logger with configuration settings"
	ErrInitDB               = "failed to initialize database"
	ErrCreateRedisClient    = "failed to create Redis client, profile cache disabled"
	ErrStartHTTPServer      = "failed to start HTTP server"
)

// Константы для игнорируемых ошибок.
const (
	ErrSyncStderr = "sync /dev/stderr: invalid argument"
	ErrSyncStdout = "sync /dev/stdout: invalid argument"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "mesto service started"
	LogServiceShutdownDone = "mesto service shutdown complete"
	LogClosingDB           = "closing database connections"
	LogClosingCache        = "closing cache connection"
	LogStoppingHTTP        = "stopping HTTP server"
	LogInitRepo            = "initializing repositories"
	LogInitCache           = "initializing cache"
	LogCacheDisabled       = "profile cache disabled"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
)

func main() {
	env := logger.Development
	if strings.ToLower(os.Getenv(EnvLoggerMode)) == "production" {
		env = logger.Production
	}

	log, err := logger.NewLogger(env, os.Getenv(EnvLoggerLevel))
	if err != nil {
		panic(ErrInitLogger + ": " + err.Error())
	}

	logger.SetGlobalLogger(log)

	ctx := logger.NewRequestIDContext(context.Background(), "")

	var exitCode int

	func() {
		defer func() {
			if err := log.Sync(); err != nil {
				errMsg := err.Error()
				if strings.Contains(errMsg, ErrSyncStderr) || strings.Contains(errMsg, ErrSyncStdout) {
					return
				}
				if _, writeErr := fmt.Fprintf(os.Stderr, "%s: %v\n", ErrSyncLogger, err); writeErr != nil {
					panic(writeErr)
				}
			}
		}()

		configFile := os.Getenv(EnvConfigFile)
		if configFile == "" {
			configFile = DefaultConfigFile
		}

		cfg, err := config.Load(ctx, configFile)
		if err != nil {
			log.Error(ctx, ErrLoadConfig, zap.Error(err))
			exitCode = 1
			return
		}

		finalLogger, err := logger.NewLogger(cfg.Logging.GetEnvironment(), cfg.Logging.Level)
		if err != nil {
			log.Error(ctx, ErrInitLoggerWithConfig, zap.Error(err))
			exitCode = 1
			return
		}
		logger.SetGlobalLogger(finalLogger)
		log = finalLogger

		database, err := db.New(ctx, &cfg.Postgres)
		if err != nil {
			log.Error(ctx, ErrInitDB, zap.Error(err))
			exitCode = 1
			return
		}

		log.Info(ctx, LogServiceStarted,
			zap.String("environment", string(cfg.Logging.GetEnvironment())),
			zap.String("log_level", cfg.Logging.Level),
			zap.String("startup_time", time.Now().Format(time.RFC3339)))

		log.Info(ctx, LogInitRepo)
		repoFactory := postgres.NewRepositoryFactory(database.Pool())

		log.Info(ctx, LogInitCache)
		store := newCacheStore(ctx, &cfg.Redis)

		log.Info(ctx, LogInitServices)
		serviceFactory := services.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.TokenTTL, cfg.JWT.BCryptCost)

		log.Info(ctx, LogInitUseCases)
		useCases := httpadapter.UseCases{
			Auth:  app.NewAuthUseCase(repoFactory.UserRepository(), serviceFactory.PasswordService(), serviceFactory.TokenService()),
			Users: app.NewUserUseCase(repoFactory.UserRepository(), cache.NewUserCache(store, cfg.Redis.CacheTTL)),
			Cards: app.NewCardUseCase(repoFactory.CardRepository()),
		}

		log.Info(ctx, LogInitHTTPServer)
		server := httpadapter.NewServer(httpadapter.ServerConfig{
			ReadTimeout:  cfg.HTTP.ReadTimeout,
			WriteTimeout: cfg.HTTP.WriteTimeout,
			IdleTimeout:  cfg.HTTP.IdleTimeout,
			SecureCookie: cfg.JWT.SecureCookie,
		}, useCases)

		log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
		go func() {
			if err := server.Listen(cfg.HTTP.GetAddress()); err != nil {
				log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			}
		}()

		shutdown.Wait(ctx, cfg.Shutdown.GetTimeout(),
			// Остановка HTTP сервера.
			func(ctx context.Context) error {
				log.Info(ctx, LogStoppingHTTP)
				return server.ShutdownWithContext(ctx)
			},
			// Закрытие соединения с Redis.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingCache)
				return store.Close()
			},
			// Закрытие соединений с базой данных.
			func(ctx context.Context) error {
				log.Info(ctx, LogClosingDB)
				database.Close(ctx)
				return nil
			},
		)

		log.Info(ctx, LogServiceShutdownDone)
	}()

	if exitCode != 0 {
		os.Exit(exitCode)
	}
}

// newCacheStore подключает Redis под защитой Circuit Breaker.
// Если кэш выключен или Redis недоступен при старте, сервис работает без кэша.
func newCacheStore(ctx context.Context, cfg *config.RedisConfig) portcache.Cache {
	log := logger.Log(ctx)

	if !cfg.Enabled {
		log.Info(ctx, LogCacheDisabled)
		return cache.NewNoopCache()
	}

	client, err := redisdb.NewClient(ctx, cfg.ClientConfig())
	if err != nil {
		log.Warn(ctx, ErrCreateRedisClient, zap.Error(err))
		return cache.NewNoopCache()
	}

	breaker := resilience.NewCircuitBreaker("redis-cache", cfg.BreakerConfig())
	return cache.NewGuardedCache(cache.NewRedisCache(client, cfg.CacheTTL), breaker)
}
