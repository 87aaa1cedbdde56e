package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// unset clears a variable for the test while keeping t.Setenv's restore.
func unset(t *testing.T, key string) {
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestNewAuth(t *testing.T) {
	unset(t, "DATABASE_URL")
	_, err := NewAuth()
	require.ErrorIs(t, err, ErrNoDatabaseURL)

	t.Setenv("DATABASE_URL", "postgres://db")
	unset(t, "PORT")
	cfg, err := NewAuth()
	require.NoError(t, err)
	require.Equal(t, "5000", cfg.Port)
	require.Equal(t, "postgres://db", cfg.DatabaseURL)

	t.Setenv("PORT", "8080")
	cfg, err = NewAuth()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
}

func TestNewProduct(t *testing.T) {
	unset(t, "DATABASE_URL")
	_, err := NewProduct()
	require.ErrorIs(t, err, ErrNoDatabaseURL)

	t.Setenv("DATABASE_URL", "postgres://db")
	unset(t, "PORT")
	unset(t, "REDIS_ADDR")
	unset(t, "REDIS_PASSWORD")
	unset(t, "REDIS_DB")
	unset(t, "CATALOG_CACHE_TTL")
	unset(t, "WORKER_COUNT")
	cfg, err := NewProduct()
	require.NoError(t, err)
	require.Equal(t, "5001", cfg.Port)
	require.Equal(t, "localhost:6379", cfg.RedisAddr)
	require.Equal(t, 0, cfg.RedisDB)
	require.Equal(t, 30*time.Second, cfg.CatalogTTL)
	require.Equal(t, 1, cfg.Workers)

	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("CATALOG_CACHE_TTL", "5m")
	t.Setenv("WORKER_COUNT", "4")
	cfg, err = NewProduct()
	require.NoError(t, err)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
	require.Equal(t, 2, cfg.RedisDB)
	require.Equal(t, 5*time.Minute, cfg.CatalogTTL)
	require.Equal(t, 4, cfg.Workers)

	t.Setenv("REDIS_DB", "bad")
	_, err = NewProduct()
	require.Error(t, err)
}

func TestNewOrder(t *testing.T) {
	unset(t, "DATABASE_URL")
	_, err := NewOrder()
	require.ErrorIs(t, err, ErrNoDatabaseURL)

	t.Setenv("DATABASE_URL", "postgres://db")
	unset(t, "PORT")
	cfg, err := NewOrder()
	require.NoError(t, err)
	require.Equal(t, "5002", cfg.Port)
}
