package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"gonotes/internal/adapters/cache"
	httpapi "gonotes/internal/adapters/http"
	"gonotes/internal/adapters/postgres"
	adapters "gonotes/internal/adapters/services"
	"gonotes/internal/app"
	"gonotes/internal/config"
	"gonotes/internal/db"
	"gonotes/internal/domain/services"
	"gonotes/internal/ports/repositories"
	"gonotes/internal/resilience"
	redisdb "gonotes/pkg/db/redis"
	"gonotes/pkg/logger"
	"gonotes/pkg/shutdown"
)

// Константы для сообщений об ошибках.
const (
	ErrInitDB          = "failed to initialize database"
	ErrCreateRedis     = "failed to create Redis client"
	ErrStartHTTPServer = "failed to start HTTP server"
	ErrShutdown        = "graceful shutdown finished with errors"
)

// Константы для сообщений сервиса.
const (
	LogServiceStarted      = "notes service started"
	LogServiceShutdownDone = "notes service shutdown complete"
	LogInitRepo            = "initializing repositories"
	LogInitCache           = "initializing user cache"
	LogInitServices        = "initializing services"
	LogInitUseCases        = "initializing use cases"
	LogInitHTTPServer      = "initializing HTTP server"
	LogStartingHTTP        = "starting HTTP server"
	LogStoppingHTTP        = "stopping HTTP server"
	LogClosingRedis        = "closing Redis connection"
	LogClosingDB           = "closing database connections"

	userCacheBreaker = "redis-user-cache"
)

func newServeCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Запустить HTTP сервер",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve(cmd.Context(), *envFile)
		},
	}
}

// serve собирает зависимости и обслуживает HTTP до сигнала завершения.
func serve(ctx context.Context, envFile string) error {
	cfg, err := setup(ctx, envFile)
	if err != nil {
		return err
	}
	log := logger.Log(ctx)

	log.Info(ctx, LogServiceStarted,
		zap.String("environment", string(cfg.Logging.GetEnvironment())),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("startup_time", time.Now().Format(time.RFC3339)))

	database, err := db.New(ctx, &cfg.Postgres)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrInitDB, err)
	}

	log.Info(ctx, LogInitRepo)
	repoFactory := postgres.NewRepositoryFactory(database.Pool())
	userRepo := repoFactory.UserRepository()

	var redisClient *redisdb.Client
	if cfg.Redis.Enabled {
		log.Info(ctx, LogInitCache, zap.Duration("ttl", cfg.Redis.UserTTL))
		redisClient, err = redisdb.NewClient(ctx, cfg.Redis.ClientConfig())
		if err != nil {
			database.Close(ctx)
			return fmt.Errorf("%s: %w", ErrCreateRedis, err)
		}
		userRepo = cachedUsers(userRepo, redisClient, &cfg.Redis)
	}

	log.Info(ctx, LogInitServices)
	serviceFactory := adapters.NewServiceFactory(cfg.JWT.SecretKey, cfg.JWT.TokenTTL, services.PasswordCost)
	tokenService := serviceFactory.TokenService()

	log.Info(ctx, LogInitUseCases)
	authUseCase := app.NewAuthUseCase(userRepo, serviceFactory.PasswordService(), tokenService)
	noteUseCase := app.NewNoteUseCase(repoFactory.NoteRepository(), userRepo, tokenService, cfg.Notes.StampDate)

	log.Info(ctx, LogInitHTTPServer)
	server := fiber.New(fiber.Config{
		AppName:      config.ServiceName,
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
	})
	httpapi.SetupRouter(server, authUseCase, noteUseCase)

	// Ошибка Listen завершает процесс так же, как сигнал.
	waitCtx, stopWaiting := context.WithCancel(ctx)
	defer stopWaiting()

	listenErr := make(chan error, 1)
	log.Info(ctx, LogStartingHTTP, zap.String("address", cfg.HTTP.GetAddress()))
	go func() {
		if err := server.Listen(cfg.HTTP.GetAddress(), fiber.ListenConfig{DisableStartupMessage: true}); err != nil {
			log.Error(ctx, ErrStartHTTPServer, zap.Error(err))
			listenErr <- err
			stopWaiting()
		}
	}()

	err = shutdown.Wait(waitCtx, cfg.Shutdown.GetTimeout(), shutdown.Sequence(
		func(ctx context.Context) error {
			log.Info(ctx, LogStoppingHTTP)
			return server.ShutdownWithContext(ctx)
		},
		func(ctx context.Context) error {
			if redisClient == nil {
				return nil
			}
			log.Info(ctx, LogClosingRedis)
			return redisClient.Close()
		},
		func(ctx context.Context) error {
			log.Info(ctx, LogClosingDB)
			database.Close(ctx)
			return nil
		},
	))
	if err != nil {
		log.Warn(ctx, ErrShutdown, zap.Error(err))
	}

	log.Info(ctx, LogServiceShutdownDone)

	select {
	case lErr := <-listenErr:
		return errors.Join(fmt.Errorf("%s: %w", ErrStartHTTPServer, lErr), err)
	default:
		return nil
	}
}

func cachedUsers(next repositories.UserRepository, client *redisdb.Client, cfg *config.RedisConfig) repositories.UserRepository {
	breaker := resilience.NewCircuitBreaker(userCacheBreaker, resilience.DefaultCircuitBreakerConfig())
	return cache.NewCachedUserRepository(next, cache.NewRedisCache(client, cfg.UserTTL), cfg.UserTTL, breaker)
}
