package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"

	"github.com/envelope-zero/expenses/pkg/ledger"
	"github.com/joho/godotenv"
)

type Config struct {
	// HTTP Server
	APIURL           string
	Port             string
	GinMode          string
	CORSAllowOrigins []string
	EnablePprof      bool

	// Logging
	LogFormat string

	// Database
	DBPath string

	// Ledger
	DefaultCategories []string
}

// Load reads the configuration from the environment. Variables set in the
// given .env files, or ".env" if none are given, are added to the
// environment first. Existing variables are never overwritten and missing
// files are ignored.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}

	for _, file := range files {
		err := godotenv.Load(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("could not load %s: %w", file, err)
		}
	}

	cfg := &Config{
		APIURL:           getEnv("API_URL", ""),
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "release"),
		CORSAllowOrigins: strings.Fields(getEnv("CORS_ALLOW_ORIGINS", "")),
		EnablePprof:      getEnvBool("ENABLE_PPROF", false),

		LogFormat: getEnv("LOG_FORMAT", ""),

		DBPath: getEnv("DB_PATH", "data/expenses.db"),

		DefaultCategories: getEnvList("DEFAULT_CATEGORIES", ledger.DefaultCategories),
	}

	return cfg, nil
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate API URL
	if c.APIURL == "" {
		errors = append(errors, "API_URL must be set")
	} else if u, err := url.Parse(c.APIURL); err != nil {
		errors = append(errors, fmt.Sprintf("invalid API URL '%s': %v", c.APIURL, err))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		errors = append(errors, fmt.Sprintf("invalid API URL scheme '%s': must be 'http' or 'https'", u.Scheme))
	}

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		errors = append(errors, fmt.Sprintf("invalid gin mode '%s': must be one of debug, release, test", c.GinMode))
	}

	switch c.LogFormat {
	case "", "human", "json":
	default:
		errors = append(errors, fmt.Sprintf("invalid log format '%s': must be 'human' or 'json'", c.LogFormat))
	}

	if c.DBPath == "" {
		errors = append(errors, "database path cannot be empty")
	}

	if len(c.DefaultCategories) == 0 {
		errors = append(errors, "at least one default category is required")
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

// URL returns the parsed API URL. It must only be called on a valid configuration.
func (c *Config) URL() *url.URL {
	u, _ := url.Parse(c.APIURL)
	return u
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

// getEnvList splits a comma separated variable. Empty items are dropped.
func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}
