package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries the process-level knobs. The core enforces no timeout of
// its own; CallTimeout, when set, bounds each osascript subprocess.
type Config struct {
	OsascriptBin string
	DefaultList  string
	CallTimeout  time.Duration
}

func Load() (*Config, error) {
	// .env file is optional
	_ = godotenv.Load()

	cfg := &Config{
		OsascriptBin: getEnvOrDefault("REMINDERS_OSASCRIPT_BIN", "/usr/bin/osascript"),
		DefaultList:  os.Getenv("REMINDERS_DEFAULT_LIST"),
	}
	if raw := os.Getenv("REMINDERS_CALL_TIMEOUT"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("config: invalid REMINDERS_CALL_TIMEOUT %q: %w", raw, err)
		}
		cfg.CallTimeout = d
	}
	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
