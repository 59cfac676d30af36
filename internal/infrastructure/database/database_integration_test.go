package database_test

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/marcos-nsantos/asset-store/internal/infrastructure/config"
	"github.com/marcos-nsantos/asset-store/internal/infrastructure/database"
)

func setupPostgres(t *testing.T) config.DatabaseConfig {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:17-alpine",
		postgres.WithDatabase("assets_test"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)

	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	return config.DatabaseConfig{
		Host:            host,
		Port:            port.Int(),
		User:            "test",
		Password:        "test",
		Name:            "assets_test",
		SSLMode:         "disable",
		MaxOpenConns:    4,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}
}

func migrationsPath() string {
	_, filename, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "migrations")
}

func TestPostgres_Integration(t *testing.T) {
	cfg := setupPostgres(t)
	ctx := context.Background()

	pool, err := database.NewPostgresPool(ctx, cfg)
	require.NoError(t, err)
	defer pool.Close()

	t.Run("sets application name", func(t *testing.T) {
		var name string
		require.NoError(t, pool.QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&name))
		assert.Equal(t, "asset-store", name)
	})

	t.Run("applies migrations once", func(t *testing.T) {
		ran, err := database.RunMigrations(ctx, pool, migrationsPath())
		require.NoError(t, err)
		assert.Equal(t, []string{"000001_create_assets"}, ran)

		ran, err = database.RunMigrations(ctx, pool, migrationsPath())
		require.NoError(t, err)
		assert.Empty(t, ran)

		var exists bool
		require.NoError(t, pool.QueryRow(ctx, `SELECT to_regclass('assets') IS NOT NULL`).Scan(&exists))
		assert.True(t, exists)
	})

	t.Run("failed migration is rolled back", func(t *testing.T) {
		dir := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000001_ok.up.sql"),
			[]byte(`CREATE TABLE rollback_ok (id INT);`), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(dir, "000002_broken.up.sql"),
			[]byte(`CREATE TABLE rollback_broken (id INT); SELECT * FROM missing_table;`), 0o600))

		ran, err := database.RunMigrations(ctx, pool, dir)
		require.Error(t, err)
		assert.Equal(t, []string{"000001_ok"}, ran)

		var exists bool
		require.NoError(t, pool.QueryRow(ctx, `SELECT to_regclass('rollback_broken') IS NOT NULL`).Scan(&exists))
		assert.False(t, exists)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := database.RunMigrations(ctx, pool, filepath.Join(t.TempDir(), "absent"))
		assert.Error(t, err)
	})
}

func TestNewPostgresPool_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := database.NewPostgresPool(ctx, config.DatabaseConfig{
		Host:         "127.0.0.1",
		Port:         1,
		User:         "nobody",
		Password:     "nothing",
		Name:         "none",
		SSLMode:      "disable",
		MaxOpenConns: 1,
	})

	assert.Error(t, err)
}
