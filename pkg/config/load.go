// Package config предоставляет загрузку конфигурации из переменных окружения
// и необязательного .env файла.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"go.uber.org/zap"

	"mesto/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgEnvFileNotFound         = "env file not found, using environment only"
	msgFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// Load заполняет структуру T из файла envPath (если он существует) и переменных окружения.
// Переменные окружения имеют приоритет над значениями из файла.
func Load[T any](ctx context.Context, serviceName, envPath string) (*T, error) {
	log := logger.Log(ctx)

	log.Info(ctx, msgLoadingConfiguration,
		zap.String(attrService, serviceName),
		zap.String(attrPath, envPath))

	var cfg T

	err := readConfig(envPath, &cfg)
	if err != nil {
		log.Error(ctx, msgFailedLoadConfiguration,
			zap.String(attrService, serviceName),
			zap.Error(err))
		return nil, fmt.Errorf("%s: %w", msgFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded, zap.String(attrService, serviceName))

	return &cfg, nil
}

func readConfig(envPath string, cfg any) error {
	if envPath == "" {
		return cleanenv.ReadEnv(cfg)
	}

	if _, err := os.Stat(envPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			logger.Log(context.Background()).Debug(context.Background(), msgEnvFileNotFound, zap.String(attrPath, envPath))
			return cleanenv.ReadEnv(cfg)
		}
		return fmt.Errorf("checking env file: %w", err)
	}

	return cleanenv.ReadConfig(envPath, cfg)
}
