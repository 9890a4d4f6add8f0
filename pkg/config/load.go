// Package config предоставляет функциональность для загрузки конфигурации из переменных окружения.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

const (
	msgLoadingConfiguration    = "loading configuration"
	msgConfigurationLoaded     = "configuration loaded successfully"
	msgDotenvSkipped           = "dotenv file not found, using process environment"
	msgFailedLoadConfiguration = "failed to load configuration"

	errFailedReadDotenv        = "failed to read dotenv file"
	errFailedLoadConfiguration = "failed to load configuration"

	attrService = "service"
	attrPath    = "path"
)

// DefaultEnvFile - путь к необязательному .env файлу.
const DefaultEnvFile = ".env"

// Load читает необязательный .env файл (если envFiles пуст, используется DefaultEnvFile),
// затем заполняет T из переменных окружения по тегам cleanenv.
// Уже заданные переменные окружения не перезаписываются.
func Load[T any](ctx context.Context, serviceName string, envFiles ...string) (*T, error) {
	log := logger.Log(ctx).With(zap.String(attrService, serviceName))

	if len(envFiles) == 0 {
		envFiles = []string{DefaultEnvFile}
	}

	for _, path := range envFiles {
		log.Info(ctx, msgLoadingConfiguration, zap.String(attrPath, path))
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.Debug(ctx, msgDotenvSkipped, zap.String(attrPath, path))
				continue
			}
			log.Error(ctx, errFailedReadDotenv, zap.String(attrPath, path), zap.Error(err))
			return nil, fmt.Errorf("%s: %w", errFailedReadDotenv, err)
		}
	}

	var cfg T
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		log.Error(ctx, msgFailedLoadConfiguration, zap.Error(err))
		return nil, fmt.Errorf("%s: %w", errFailedLoadConfiguration, err)
	}

	log.Info(ctx, msgConfigurationLoaded)
	return &cfg, nil
}
