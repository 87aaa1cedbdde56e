package main

import (
	"context"
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"storefront/internal/config"
	"storefront/internal/database"
)

func restoreGlobals() {
	loadConfig = config.NewAuth
	newPgxPool = database.NewPgxPool
	runMigrationsFn = database.RunMigrations
	startServer = func(e *echo.Echo, addr string) error { return e.Start(addr) }
	exitFunc = func(code int) {}
}

func TestCustomValidator(t *testing.T) {
	cv := &CustomValidator{validator: validator.New()}
	type s struct {
		Name string `validate:"required"`
	}
	require.NoError(t, cv.Validate(&s{Name: "ok"}))
	require.Error(t, cv.Validate(&s{}))
}

func TestRunSuccess(t *testing.T) {
	t.Cleanup(restoreGlobals)
	called := make(map[string]bool)
	newPgxPool = func(ctx context.Context, url string) (database.DB, error) {
		called["pgx"] = true
		require.Equal(t, "postgres://db", url)
		return &database.FakeDB{CloseFn: func() { called["dbClose"] = true }}, nil
	}
	runMigrationsFn = func(url string) error { called["migrate"] = true; return nil }
	startServer = func(e *echo.Echo, addr string) error {
		called["start"] = true
		require.Equal(t, ":5000", addr)
		return nil
	}

	t.Setenv("DATABASE_URL", "postgres://db")

	require.NoError(t, run())
	require.True(t, called["pgx"])
	require.True(t, called["migrate"])
	require.True(t, called["start"])
	require.True(t, called["dbClose"])
}

func TestRunErrors(t *testing.T) {
	t.Cleanup(restoreGlobals)
	t.Setenv("DATABASE_URL", "")
	require.ErrorIs(t, run(), config.ErrNoDatabaseURL)

	t.Setenv("DATABASE_URL", "postgres://db")
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("db") }
	require.Error(t, run())

	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	runMigrationsFn = func(string) error { return errors.New("migrate") }
	require.Error(t, run())

	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return errors.New("start") }
	require.Error(t, run())
}

func TestMainFunction(t *testing.T) {
	t.Cleanup(restoreGlobals)
	newPgxPool = func(context.Context, string) (database.DB, error) { return &database.FakeDB{}, nil }
	runMigrationsFn = func(string) error { return nil }
	startServer = func(*echo.Echo, string) error { return nil }
	t.Setenv("DATABASE_URL", "postgres://db")
	main()
}

func TestMainExit(t *testing.T) {
	t.Cleanup(restoreGlobals)
	exitCode := 0
	exitFunc = func(code int) { exitCode = code }
	newPgxPool = func(context.Context, string) (database.DB, error) { return nil, errors.New("fail") }
	t.Setenv("DATABASE_URL", "postgres://db")
	main()
	require.Equal(t, 1, exitCode)
}
