package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP server (the dashboard itself)
	Port string

	// Remote REST backend
	APIBaseURL  string
	HTTPTimeout time.Duration

	// Google sign-in
	GoogleClientID string

	// Session token persistence (the only client-side state kept on disk)
	SessionFile string

	// Color picker commit delay
	DebounceInterval time.Duration

	// Logging
	LogLevel string
}

// Load reads configuration from the environment, sourcing a .env file first
// when one is present.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8080"),
		APIBaseURL:       getEnv("API_BASE_URL", "http://localhost:3000/api"),
		HTTPTimeout:      getEnvDuration("HTTP_TIMEOUT", 15*time.Second),
		GoogleClientID:   getEnv("GOOGLE_CLIENT_ID", ""),
		SessionFile:      getEnv("SESSION_FILE", "./data/session"),
		DebounceInterval: getEnvDuration("DEBOUNCE_INTERVAL", time.Second),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks the configuration and returns all problems as one error.
func (c *Config) Validate() error {
	var errs []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		errs = append(errs, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errs = append(errs, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if c.APIBaseURL == "" {
		errs = append(errs, "API base URL cannot be empty")
	} else if u, err := url.Parse(c.APIBaseURL); err != nil {
		errs = append(errs, fmt.Sprintf("invalid API base URL '%s': %v", c.APIBaseURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errs = append(errs, fmt.Sprintf("invalid API base URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	if c.HTTPTimeout < time.Second {
		errs = append(errs, fmt.Sprintf("invalid HTTP timeout %v: must be at least 1 second", c.HTTPTimeout))
	} else if c.HTTPTimeout > 5*time.Minute {
		errs = append(errs, fmt.Sprintf("invalid HTTP timeout %v: must be at most 5 minutes", c.HTTPTimeout))
	}

	if c.SessionFile == "" {
		errs = append(errs, "session file path cannot be empty")
	} else if dir := filepath.Dir(c.SessionFile); dir != "." && dir != "" {
		if _, err := os.Stat(dir); os.IsNotExist(err) {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				errs = append(errs, fmt.Sprintf("cannot create session directory '%s': %v", dir, err))
			}
		}
	}

	if c.DebounceInterval < 50*time.Millisecond {
		errs = append(errs, fmt.Sprintf("invalid debounce interval %v: must be at least 50ms", c.DebounceInterval))
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid log level '%s': must be one of [debug info warn error]", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errs, "\n- "))
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
