// Package config loads storefront settings from the environment.
package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Environment names the deployment environment of the service.
type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

// ParseEnvironment normalizes the provided value. Unknown values fall back to
// development so the app still starts with sensible defaults.
func ParseEnvironment(v string) Environment {
	switch Environment(v) {
	case Production:
		return Production
	case Staging:
		return Staging
	default:
		return Development
	}
}

func (e Environment) IsProduction() bool { return e == Production }

// Config carries every tunable of the storefront web process.
type Config struct {
	Env  string `envconfig:"LFARMA_WEB_ENV" default:"development"`
	Addr string `envconfig:"LFARMA_WEB_ADDR" default:":8080"`

	// BackendURL is the base URL of the pharmacy backend. Empty serves the
	// built-in demo catalog.
	BackendURL string `envconfig:"LFARMA_BACKEND_URL"`

	// RedisAddr enables catalog payload caching when set.
	RedisAddr       string        `envconfig:"LFARMA_REDIS_ADDR"`
	CatalogCacheTTL time.Duration `envconfig:"LFARMA_CATALOG_CACHE_TTL" default:"2m"`

	// AuthSecret verifies the visitor token cookie; empty disables local
	// verification and the raw token is still forwarded to the backend.
	AuthSecret string `envconfig:"LFARMA_WEB_AUTH_SECRET"`

	TemplatesDir string `envconfig:"LFARMA_WEB_TEMPLATES" default:"templates"`
	PublicDir    string `envconfig:"LFARMA_WEB_PUBLIC" default:"public"`
	LocalesDir   string `envconfig:"LFARMA_WEB_LOCALES" default:"locales"`
}

// Load reads .env when present, then the process environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Environment returns the parsed deployment environment.
func (c Config) Environment() Environment {
	return ParseEnvironment(c.Env)
}
