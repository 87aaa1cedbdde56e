package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// ErrNoDatabaseURL is fatal at startup: a service must not come up without
// storage behind it.
var ErrNoDatabaseURL = errors.New("DATABASE_URL is not set")

// Auth holds the auth service configuration.
type Auth struct {
	Port        string `env:"PORT" envDefault:"5000"`
	DatabaseURL string `env:"DATABASE_URL"`
}

// Product holds the product catalog service configuration.
type Product struct {
	Port          string        `env:"PORT" envDefault:"5001"`
	DatabaseURL   string        `env:"DATABASE_URL"`
	RedisAddr     string        `env:"REDIS_ADDR" envDefault:"localhost:6379"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	CatalogTTL    time.Duration `env:"CATALOG_CACHE_TTL" envDefault:"30s"`
	Workers       int           `env:"WORKER_COUNT" envDefault:"1"`
}

// Order holds the order service configuration.
type Order struct {
	Port        string `env:"PORT" envDefault:"5002"`
	DatabaseURL string `env:"DATABASE_URL"`
}

func NewAuth() (*Auth, error) {
	cfg := Auth{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrNoDatabaseURL
	}
	return &cfg, nil
}

func NewProduct() (*Product, error) {
	cfg := Product{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrNoDatabaseURL
	}
	return &cfg, nil
}

func NewOrder() (*Order, error) {
	cfg := Order{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrNoDatabaseURL
	}
	return &cfg, nil
}
