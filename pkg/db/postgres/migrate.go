package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"gonotes/pkg/logger"
)

// Константы для сообщений об ошибках миграций.
const (
	ErrCreateMigrationInstance = "failed to create migration instance"
	ErrApplyMigrations         = "failed to apply migrations"
	ErrRollbackMigrations      = "failed to roll back migrations"
	ErrCloseMigrationInstance  = "failed to close migration instance"
)

// Migrator - подмножество *migrate.Migrate, используемое пакетом.
type Migrator interface {
	Up() error
	Down() error
	Close() (error, error)
}

// MigrationEngine создает Migrator по адресу источника и DSN.
type MigrationEngine func(sourceURL, databaseURL string) (Migrator, error)

// DefaultEngine открывает миграции через golang-migrate.
func DefaultEngine(sourceURL, databaseURL string) (Migrator, error) {
	return migrate.New(sourceURL, databaseURL)
}

// MigrateDSN применяет все миграции из migrationsPath.
func MigrateDSN(ctx context.Context, dsn string, migrationsPath string) error {
	return MigrateWith(ctx, DefaultEngine, dsn, migrationsPath)
}

// MigrateWith применяет миграции с помощью переданного engine.
func MigrateWith(ctx context.Context, engine MigrationEngine, dsn, migrationsPath string) error {
	return run(ctx, engine, dsn, migrationsPath, func(m Migrator) error {
		if upErr := m.Up(); upErr != nil && !errors.Is(upErr, migrate.ErrNoChange) {
			return fmt.Errorf("%s: %w", ErrApplyMigrations, upErr)
		}
		logger.Log(ctx).Info(ctx, LogMigrationsApplied)
		return nil
	})
}

// RollbackWith откатывает все миграции.
func RollbackWith(ctx context.Context, engine MigrationEngine, dsn, migrationsPath string) error {
	return run(ctx, engine, dsn, migrationsPath, func(m Migrator) error {
		if downErr := m.Down(); downErr != nil && !errors.Is(downErr, migrate.ErrNoChange) {
			return fmt.Errorf("%s: %w", ErrRollbackMigrations, downErr)
		}
		logger.Log(ctx).Info(ctx, LogMigrationsRolledBack)
		return nil
	})
}

func run(ctx context.Context, engine MigrationEngine, dsn, migrationsPath string, step func(Migrator) error) (err error) {
	log := logger.Log(ctx).With(zap.String("path", migrationsPath))

	m, err := engine(migrationsPath, dsn)
	if err != nil {
		log.Error(ctx, ErrCreateMigrationInstance, zap.Error(err))
		return fmt.Errorf("%s: %w", ErrCreateMigrationInstance, err)
	}
	defer func() {
		srcErr, dbErr := m.Close()
		if closeErr := multierr.Combine(srcErr, dbErr); closeErr != nil {
			log.Warn(ctx, ErrCloseMigrationInstance, zap.Error(closeErr))
			err = multierr.Append(err, fmt.Errorf("%s: %w", ErrCloseMigrationInstance, closeErr))
		}
	}()

	if err := step(m); err != nil {
		log.Error(ctx, err.Error())
		return err
	}
	return nil
}
