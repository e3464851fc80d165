package config

import (
	"log/slog"
	"time"
)

type LogLeveler string

func (l LogLeveler) Level() slog.Level {
	var level slog.Level

	_ = level.UnmarshalText([]byte(l))

	return level
}

// Config holds the server configuration.
type Config struct {
	LogLevel      LogLeveler    `mapstructure:"LOG_LEVEL"`
	HTTP          HTTP          `mapstructure:",squash"`
	DB            DB            `mapstructure:",squash"`
	Redis         Redis         `mapstructure:",squash"`
	Amadeus       Amadeus       `mapstructure:",squash"`
	Archive       Archive       `mapstructure:",squash"`
	Normalization Normalization `mapstructure:",squash"`
}

type HTTP struct {
	Port    int           `mapstructure:"HTTP_PORT"`
	Timeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
}

type DB struct {
	DSN                   string        `mapstructure:"DB_DSN"`
	MaxOpenConnections    int           `mapstructure:"DB_MAX_OPEN_CONNECTIONS"`
	MaxIdleConnections    int           `mapstructure:"DB_MAX_IDLE_CONNECTIONS"`
	MaxConnectionLifetime time.Duration `mapstructure:"DB_MAX_CONNECTIONS_LIFETIME"`
	MaxConnectionIdleTime time.Duration `mapstructure:"DB_MAX_CONNECTION_IDLE_TIME"`
}

// Redis backs the provider rate limiter only; offer results are never
// cached.
type Redis struct {
	Addr     string `mapstructure:"REDIS_ADDR"`
	Password string `mapstructure:"REDIS_PASSWORD"`
	DB       int    `mapstructure:"REDIS_DB"`
}

// Amadeus configures the flight-offers provider client.
type Amadeus struct {
	BaseURL      string        `mapstructure:"AMADEUS_BASE_URL"`
	TokenURL     string        `mapstructure:"AMADEUS_TOKEN_URL"`
	APIKey       string        `mapstructure:"AMADEUS_API_KEY"`
	APISecret    string        `mapstructure:"AMADEUS_API_SECRET"`
	Timeout      time.Duration `mapstructure:"AMADEUS_TIMEOUT"`
	MaxRetries   int           `mapstructure:"AMADEUS_MAX_RETRIES"`
	RateLimitRPS int           `mapstructure:"AMADEUS_RATE_LIMIT"`
}

// Archive is where raw offer payloads are written for audit.
type Archive struct {
	Dir string `mapstructure:"ARCHIVE_DIR"`
}

type Normalization struct {
	// Lenient makes malformed offers skip-and-log instead of failing
	// the whole result set.
	Lenient bool `mapstructure:"NORMALIZATION_LENIENT"`
}
