package main

import (
	"context"
	"errors"
	"os"
	"testing"

	"weekly-todo/internal/bootstrap"
	"weekly-todo/internal/cache"
	"weekly-todo/internal/database"
	"weekly-todo/internal/rollover"
	"weekly-todo/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restoreGlobals(t *testing.T) {
	t.Cleanup(func() {
		newPgxPool = database.NewPgxPool
		newRedisClient = cache.NewRedisClient
		runMigrationsFn = database.RunMigrations
		ensureDefaults = bootstrap.EnsureDefaults
		newScheduler = rollover.NewScheduler
		startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
		newWorkerPool = worker.NewPool
	})
}

func setBaseEnv(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/app")
	t.Setenv("REDIS_ADDR", "localhost:6379")
	t.Setenv("REDIS_DB", "0")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("WORKER_COUNT", "")
	t.Setenv("ROLLOVER_AT", "")
}

func stubInfra(t *testing.T) {
	restoreGlobals(t)
	newPgxPool = func(context.Context, string) (database.DB, error) {
		return &database.FakeDB{}, nil
	}
	newRedisClient = func(string, string, int) (cache.Cache, error) {
		return &cache.FakeCache{}, nil
	}
	runMigrationsFn = func(string) error { return nil }
	ensureDefaults = func(context.Context, database.DB) error { return nil }
}

func TestRunEnvValidation(t *testing.T) {
	setBaseEnv(t)

	t.Setenv("DATABASE_URL", "")
	require.Error(t, run())

	setBaseEnv(t)
	t.Setenv("REDIS_ADDR", "")
	require.Error(t, run())

	setBaseEnv(t)
	t.Setenv("REDIS_DB", "")
	require.Error(t, run())

	setBaseEnv(t)
	t.Setenv("REDIS_DB", "abc")
	require.Error(t, run())

	setBaseEnv(t)
	t.Setenv("JWT_SECRET", "")
	require.Error(t, run())

	setBaseEnv(t)
	t.Setenv("WORKER_COUNT", "0")
	require.Error(t, run())
}

func TestRunInfraErrors(t *testing.T) {
	setBaseEnv(t)

	stubInfra(t)
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	stubInfra(t)
	newRedisClient = func(string, string, int) (cache.Cache, error) { return nil, errors.New("redis") }
	require.Error(t, run())

	stubInfra(t)
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	stubInfra(t)
	ensureDefaults = func(context.Context, database.DB) error { return errors.New("bootstrap") }
	require.Error(t, run())

	stubInfra(t)
	t.Setenv("ROLLOVER_AT", "25:99")
	require.Error(t, run())
}

func TestRunSuccess(t *testing.T) {
	setBaseEnv(t)
	stubInfra(t)

	var gotAddr string
	startServer = func(e *echo.Echo, addr string) error {
		gotAddr = addr
		require.NotNil(t, e.Validator)
		return nil
	}
	require.NoError(t, run())
	require.Equal(t, ":8080", gotAddr)
}

func TestMainExitsOnError(t *testing.T) {
	setBaseEnv(t)
	t.Setenv("DATABASE_URL", "")

	code := 0
	exitFunc = func(c int) { code = c }
	t.Cleanup(func() { exitFunc = os.Exit })
	main()
	require.Equal(t, 1, code)
}
