package config

import (
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"go.uber.org/dig"

	"github.com/davidbz/estimator/internal/cache/redis"
	"github.com/davidbz/estimator/internal/observability"
	"github.com/davidbz/estimator/internal/summary/openai"
)

// Config represents the estimator service configuration.
type Config struct {
	Server ServerConfig
	CORS   CORSConfig
	Quote  QuoteConfig
	Log    observability.LogConfig
	Redis  redis.Config
	OpenAI openai.Config
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int `env:"SERVER_PORT"             envDefault:"8080"`
	ReadTimeout     int `env:"SERVER_READ_TIMEOUT"     envDefault:"30"`
	WriteTimeout    int `env:"SERVER_WRITE_TIMEOUT"    envDefault:"30"`
	ShutdownTimeout int `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10"`
}

// CORSConfig contains CORS policy settings.
type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   envSeparator:"," envDefault:"*"`
	AllowedMethods   []string `env:"CORS_ALLOWED_METHODS"   envSeparator:"," envDefault:"GET,POST,OPTIONS"`
	AllowedHeaders   []string `env:"CORS_ALLOWED_HEADERS"   envSeparator:"," envDefault:"Content-Type,Authorization"`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS"                  envDefault:"false"`
	MaxAge           int      `env:"CORS_MAX_AGE"                            envDefault:"86400"`
}

// QuoteConfig contains quote presentation and caching settings.
type QuoteConfig struct {
	DefaultSummarizer string        `env:"QUOTE_SUMMARIZER" envDefault:"echo"`
	CacheTTL          time.Duration `env:"QUOTE_CACHE_TTL"  envDefault:"1h"`
}

// DepConfig is used for dependency injection with dig.
type DepConfig struct {
	dig.Out

	Server *ServerConfig
	CORS   *CORSConfig
	Quote  *QuoteConfig
	Log    *observability.LogConfig
	Redis  *redis.Config
	OpenAI *openai.Config
}

// Load loads environment files and parses configuration.
func Load() *Config {
	for _, file := range []string{".env"} {
		_ = godotenv.Load(file)
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		panic(err)
	}

	return &cfg
}

// ParseDependenciesConfig returns pointers to sub-configs for dependency injection.
func ParseDependenciesConfig(cfg *Config) DepConfig {
	return DepConfig{
		Out:    dig.Out{},
		Server: &cfg.Server,
		CORS:   &cfg.CORS,
		Quote:  &cfg.Quote,
		Log:    &cfg.Log,
		Redis:  &cfg.Redis,
		OpenAI: &cfg.OpenAI,
	}
}
