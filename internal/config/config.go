package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

// Config holds all runtime configuration loaded from environment variables.
// Every field has a sensible default.
type Config struct {
	// Server
	HTTPPort        string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration

	// Length of the simulated I/O step in the sample operation
	OperationDelay time.Duration

	// Rate limiting: maximum requests per second across the HTTP surface (0 disables)
	RateLimit int

	LogLevel zapcore.Level
}

func Load() (*Config, error) {
	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("LOG_LEVEL: %w", err)
	}

	cfg := &Config{
		HTTPPort:        getEnv("HTTP_PORT", "8080"),
		ReadTimeout:     getDuration("READ_TIMEOUT", 5*time.Second),
		WriteTimeout:    getDuration("WRITE_TIMEOUT", 10*time.Second),
		ShutdownTimeout: getDuration("SHUTDOWN_TIMEOUT", 30*time.Second),

		OperationDelay: getDuration("OPERATION_DELAY", time.Second),

		RateLimit: getInt("RATE_LIMIT", 100),

		LogLevel: level,
	}

	if cfg.OperationDelay < 0 {
		return nil, fmt.Errorf("OPERATION_DELAY must not be negative, got %s", cfg.OperationDelay)
	}
	if cfg.WriteTimeout > 0 && cfg.OperationDelay >= cfg.WriteTimeout {
		return nil, fmt.Errorf("OPERATION_DELAY (%s) must be shorter than WRITE_TIMEOUT (%s)", cfg.OperationDelay, cfg.WriteTimeout)
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
