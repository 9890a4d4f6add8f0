package db_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gonotes/internal/config"
	"gonotes/internal/db"
	"gonotes/pkg/db/postgres"
)

var errUp = errors.New("dirty database")

type stubMigrator struct {
	upErr    error
	up, down bool
}

func (s *stubMigrator) Up() error             { s.up = true; return s.upErr }
func (s *stubMigrator) Down() error           { s.down = true; return nil }
func (s *stubMigrator) Close() (error, error) { return nil, nil }

func TestMigrationsSource(t *testing.T) {
	abs, err := filepath.Abs("migrations")
	require.NoError(t, err)

	got, err := db.MigrationsSource("migrations")
	require.NoError(t, err)
	assert.Equal(t, "file://"+abs, got)

	got, err = db.MigrationsSource("file:///srv/migrations")
	require.NoError(t, err)
	assert.Equal(t, "file:///srv/migrations", got)
}

func TestMigrate(t *testing.T) {
	cfg := &config.PostgresConfig{URL: "postgres://u:p@db:5432/notes", MigrationsDir: "file:///srv/migrations"}

	t.Run("passes source and dsn to the engine", func(t *testing.T) {
		m := &stubMigrator{}
		var gotSource, gotDSN string
		engine := func(source, dsn string) (postgres.Migrator, error) {
			gotSource, gotDSN = source, dsn
			return m, nil
		}

		require.NoError(t, db.Migrate(context.Background(), cfg, engine))
		assert.True(t, m.up)
		assert.Equal(t, "file:///srv/migrations", gotSource)
		assert.Equal(t, "postgres://u:p@db:5432/notes", gotDSN)
	})

	t.Run("wraps migration failure", func(t *testing.T) {
		engine := func(string, string) (postgres.Migrator, error) {
			return &stubMigrator{upErr: errUp}, nil
		}

		err := db.Migrate(context.Background(), cfg, engine)
		require.Error(t, err)
		assert.ErrorIs(t, err, errUp)
		assert.Contains(t, err.Error(), db.ErrDBMigrations)
	})
}

func TestRollback(t *testing.T) {
	cfg := &config.PostgresConfig{URL: "postgres://u:p@db:5432/notes", MigrationsDir: "migrations"}
	m := &stubMigrator{}

	err := db.Rollback(context.Background(), cfg, func(string, string) (postgres.Migrator, error) { return m, nil })
	require.NoError(t, err)
	assert.True(t, m.down)
}
