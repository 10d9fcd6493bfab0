package config_test

import (
	"testing"
	"time"

	"go.uber.org/zap/zapcore"

	"github.com/ricirt/notification-pattern/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"HTTP_PORT", "READ_TIMEOUT", "WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT", "OPERATION_DELAY", "RATE_LIMIT", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.OperationDelay != time.Second {
		t.Fatalf("expected 1s delay, got %s", cfg.OperationDelay)
	}
	if cfg.RateLimit != 100 {
		t.Fatalf("expected rate limit 100, got %d", cfg.RateLimit)
	}
	if cfg.LogLevel != zapcore.InfoLevel {
		t.Fatalf("expected info level, got %s", cfg.LogLevel)
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("OPERATION_DELAY", "250ms")
	t.Setenv("RATE_LIMIT", "0")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("READ_TIMEOUT", "not-a-duration")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "9090" {
		t.Fatalf("expected port 9090, got %s", cfg.HTTPPort)
	}
	if cfg.OperationDelay != 250*time.Millisecond {
		t.Fatalf("expected 250ms delay, got %s", cfg.OperationDelay)
	}
	if cfg.RateLimit != 0 {
		t.Fatalf("expected rate limit 0, got %d", cfg.RateLimit)
	}
	if cfg.LogLevel != zapcore.DebugLevel {
		t.Fatalf("expected debug level, got %s", cfg.LogLevel)
	}
	if cfg.ReadTimeout != 5*time.Second {
		t.Fatalf("expected unparsable READ_TIMEOUT to fall back to 5s, got %s", cfg.ReadTimeout)
	}
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		if _, err := config.Load(); err == nil {
			t.Fatal("expected error for unknown log level")
		}
	})

	t.Run("negative delay", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("OPERATION_DELAY", "-1s")
		if _, err := config.Load(); err == nil {
			t.Fatal("expected error for negative delay")
		}
	})
}

func TestLoad_DelayMustFitWriteTimeout(t *testing.T) {
	t.Setenv("LOG_LEVEL", "")

	tests := []struct {
		name    string
		delay   string
		timeout string
		wantErr bool
	}{
		{"shorter", "1s", "10s", false},
		{"equal", "10s", "10s", true},
		{"longer", "30s", "10s", true},
		{"no write timeout", "30s", "0s", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("OPERATION_DELAY", tc.delay)
			t.Setenv("WRITE_TIMEOUT", tc.timeout)

			_, err := config.Load()
			if (err != nil) != tc.wantErr {
				t.Fatalf("delay=%s timeout=%s: expected error=%v, got %v", tc.delay, tc.timeout, tc.wantErr, err)
			}
		})
	}
}
