package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	hjson "github.com/hjson/hjson-go/v4"
)

// Config holds the service configuration. Values resolve in order:
// defaults, then the HJSON config file, then environment variables.
type Config struct {
	Addr               string `json:"addr"`
	ShutdownTimeoutSec int    `json:"shutdown_timeout_sec"`
	LogLevel           string `json:"log_level"`
	LogPretty          bool   `json:"log_pretty"`
	// PersistReports enables the Postgres report store. Requires
	// DATABASE_URL; the API runs without persistence when false.
	PersistReports bool `json:"persist_reports"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Addr:               ":8080",
		ShutdownTimeoutSec: 10,
		LogLevel:           "info",
	}
}

// Load reads the optional HJSON config file at path and applies environment
// overrides. A missing file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
			// optional file
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := hjson.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	if v := os.Getenv("BIZLENS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("BIZLENS_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("BIZLENS_LOG_PRETTY"); v != "" {
		cfg.LogPretty = v == "1" || v == "true"
	}
	if v := os.Getenv("BIZLENS_PERSIST_REPORTS"); v != "" {
		cfg.PersistReports = v == "1" || v == "true"
	}
	if v := os.Getenv("BIZLENS_SHUTDOWN_TIMEOUT_SEC"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid BIZLENS_SHUTDOWN_TIMEOUT_SEC %q: %w", v, err)
		}
		cfg.ShutdownTimeoutSec = n
	}

	return cfg, nil
}

// ShutdownTimeout returns the graceful-shutdown deadline as a duration.
func (c Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSec) * time.Second
}
