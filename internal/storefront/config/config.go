// Package config loads the storefront's configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is the full runtime configuration. Everything has a sensible local
// default; only TOYSHOP_API_URL usually needs setting in a real deployment.
type Config struct {
	// ListenAddr is the address the storefront gateway binds to.
	ListenAddr string `envconfig:"LISTEN_ADDR" default:":8080"`

	// ToyshopAPIURL is the base URL of the remote toy-shop API.
	ToyshopAPIURL string `envconfig:"TOYSHOP_API_URL" default:"http://localhost:8000"`

	// HTTPTimeout bounds every call to the remote API.
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`

	// RedisAddr enables the catalog response cache when set.
	RedisAddr string `envconfig:"REDIS_ADDR"`

	// CatalogCacheTTL is how long a filtered toy list stays cached.
	CatalogCacheTTL time.Duration `envconfig:"CATALOG_CACHE_TTL" default:"30s"`

	// OrderLogPath is the SQLite file for the checkout audit log.
	// Empty disables the log.
	OrderLogPath string `envconfig:"ORDER_LOG_PATH"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return c, nil
}
