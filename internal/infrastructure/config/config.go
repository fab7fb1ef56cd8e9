package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=8080"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET, default=mimisupply-demo-secret"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// LoginDelay is the simulated network round-trip applied to every
	// login attempt.
	LoginDelay time.Duration `env:"LOGIN_DELAY, default=1s"`
	TokenTTL   time.Duration `env:"TOKEN_TTL,   default=24h"`

	Redis    RedisConfig
	Throttle ThrottleConfig
}

// RedisConfig is optional: an empty Addr disables the login throttle.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

type ThrottleConfig struct {
	MaxFailures int           `env:"LOGIN_MAX_FAILURES,   default=5"`
	Window      time.Duration `env:"LOGIN_FAILURE_WINDOW, default=1m"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
