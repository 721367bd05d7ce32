package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port       string        `env:"PORT,         default=8080"`
	Env        string        `env:"ENV,          default=development"`
	JWTSecret  string        `env:"JWT_SECRET,   required"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,    default=24h"`
	LogLevel   string        `env:"LOG_LEVEL,    default=info"`
	AppBaseURL string        `env:"APP_BASE_URL, default=http://localhost:5173"`

	Database DatabaseConfig
	Redis    RedisConfig
}

type DatabaseConfig struct {
	URL string `env:"DATABASE_URL, required"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables. Missing required
// variables fail here, at startup, instead of surfacing as silent no-ops on
// the first request.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
