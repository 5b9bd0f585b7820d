package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// DefaultJWTSecret is the insecure built-in signing secret used when
// JWT_SECRET is not set. Startup logs a warning whenever it is active.
const DefaultJWTSecret = "ddc-default-secret"

type Config struct {
	Port       string `env:"PORT,        default=8080"`
	Env        string `env:"ENV,         default=development"`
	LogLevel   string `env:"LOG_LEVEL,   default=info"`
	JWTSecret  string `env:"JWT_SECRET"`
	CORSOrigin string `env:"CORS_ORIGIN, default=*"`

	SQLite SQLiteConfig
	Redis  RedisConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=ddc.db"`
}

// RedisConfig is optional: an empty Addr disables login rate limiting.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}

// SigningSecret returns the effective token signing secret and whether it
// was explicitly configured.
func (c *Config) SigningSecret() (string, bool) {
	if c.JWTSecret != "" {
		return c.JWTSecret, true
	}
	return DefaultJWTSecret, false
}
