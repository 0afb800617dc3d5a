// Package config provides application configuration management with support for environment variables, command-line flags, and .env files.
package config

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	App      AppConfig
	Logger   LoggerConfig
	Server   ServerConfig
	Database DatabaseConfig
	Public   PublicConfig
	Carousel CarouselConfig
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Environment string
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level string
}

// ServerConfig holds server configuration.
type ServerConfig struct {
	Port         string        // Server port (default: 8080)
	ReadTimeout  time.Duration // HTTP read timeout (default: 15s)
	WriteTimeout time.Duration // HTTP write timeout (default: 15s)
	IdleTimeout  time.Duration // HTTP idle timeout (default: 60s)
}

// DatabaseConfig holds SQLite storage configuration.
type DatabaseConfig struct {
	Path string // Path to the SQLite database file
}

// PublicConfig tunes the public profile endpoint.
type PublicConfig struct {
	// FetchTimeout bounds the whole aggregate fetch; past it the load
	// reports UNAVAILABLE instead of hanging (default: 10s).
	FetchTimeout time.Duration
	// RateLimit is requests per second per client IP on the public
	// endpoint (default: 10). RateBurst is the burst allowance.
	RateLimit float64
	RateBurst int
}

// CarouselConfig holds the slide rotation cadences.
type CarouselConfig struct {
	OffersInterval  time.Duration // default: 6s
	GalleryInterval time.Duration // default: 4s
}

// LoadConfig loads configuration from multiple sources with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables.
// 3. .env file.
// 4. Default values (lowest priority).
func LoadConfig() (*Config, error) {
	// Define command-line flags.
	env := flag.String("env", "", "Environment (development, staging, production)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	dbPath := flag.String("db-path", "", "Path to the SQLite database file")

	// Server flags
	serverPort := flag.String("port", "", "Server port (default: 8080)")
	readTimeout := flag.String("read-timeout", "", "HTTP read timeout (default: 15s)")
	writeTimeout := flag.String("write-timeout", "", "HTTP write timeout (default: 15s)")
	idleTimeout := flag.String("idle-timeout", "", "HTTP idle timeout (default: 60s)")

	// Public endpoint flags
	fetchTimeout := flag.String("fetch-timeout", "", "Profile aggregate fetch timeout (default: 10s)")
	rateLimit := flag.String("rate-limit", "", "Public endpoint requests per second per IP (default: 10)")
	rateBurst := flag.String("rate-burst", "", "Public endpoint burst allowance (default: 20)")

	// Carousel flags
	offersInterval := flag.String("offers-interval", "", "Offers carousel rotation interval (default: 6s)")
	galleryInterval := flag.String("gallery-interval", "", "Gallery carousel rotation interval (default: 4s)")

	envFile := flag.String("env-file", ".env", "Path to .env file")

	flag.Parse()

	// Load .env file if it exists (silently ignore if not found).
	_ = loadEnvFile(*envFile)

	// Build config with proper precedence.
	cfg := &Config{
		App: AppConfig{
			Environment: getConfigValue(*env, "ENV", "development"),
		},
		Logger: LoggerConfig{
			Level: getConfigValue(*logLevel, "LOG_LEVEL", "info"),
		},
		Server: ServerConfig{
			Port: getConfigValue(*serverPort, "SERVER_PORT", "8080"),
		},
		Database: DatabaseConfig{
			Path: getConfigValue(*dbPath, "DB_PATH", ""),
		},
		Public: PublicConfig{
			RateLimit: getFloatConfigValue(*rateLimit, "PUBLIC_RATE_LIMIT", 10),
			RateBurst: getIntConfigValue(*rateBurst, "PUBLIC_RATE_BURST", 20),
		},
	}

	// Parse server timeouts.
	var err error
	if cfg.Server.ReadTimeout, err = parseDurationValue(*readTimeout, "SERVER_READ_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid read timeout: %w", err)
	}
	if cfg.Server.WriteTimeout, err = parseDurationValue(*writeTimeout, "SERVER_WRITE_TIMEOUT", "15s"); err != nil {
		return nil, fmt.Errorf("invalid write timeout: %w", err)
	}
	if cfg.Server.IdleTimeout, err = parseDurationValue(*idleTimeout, "SERVER_IDLE_TIMEOUT", "60s"); err != nil {
		return nil, fmt.Errorf("invalid idle timeout: %w", err)
	}

	if cfg.Public.FetchTimeout, err = parseDurationValue(*fetchTimeout, "PUBLIC_FETCH_TIMEOUT", "10s"); err != nil {
		return nil, fmt.Errorf("invalid fetch timeout: %w", err)
	}

	if cfg.Carousel.OffersInterval, err = parseDurationValue(*offersInterval, "OFFERS_INTERVAL", "6s"); err != nil {
		return nil, fmt.Errorf("invalid offers interval: %w", err)
	}
	if cfg.Carousel.GalleryInterval, err = parseDurationValue(*galleryInterval, "GALLERY_INTERVAL", "4s"); err != nil {
		return nil, fmt.Errorf("invalid gallery interval: %w", err)
	}

	// Expand and validate the database path.
	if err := cfg.expandDatabasePath(); err != nil {
		return nil, fmt.Errorf("invalid database path: %w", err)
	}

	// Validate configuration.
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required config values are present and valid.
func (c *Config) Validate() error {
	if c.App.Environment == "" {
		return errors.New("ENV is required")
	}

	validEnvs := map[string]bool{
		"development": true,
		"staging":     true,
		"production":  true,
	}
	if !validEnvs[c.App.Environment] {
		return fmt.Errorf("invalid environment: %s (must be development, staging, or production)", c.App.Environment)
	}

	validLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLevels[strings.ToLower(c.Logger.Level)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Database.Path == "" {
		return errors.New("database path cannot be empty after expansion")
	}

	if c.Public.FetchTimeout <= 0 {
		return errors.New("fetch timeout must be positive")
	}
	if c.Public.RateLimit <= 0 {
		return errors.New("rate limit must be positive")
	}
	if c.Carousel.OffersInterval <= 0 || c.Carousel.GalleryInterval <= 0 {
		return errors.New("carousel intervals must be positive")
	}

	return nil
}

// expandPath expands ~ and makes the path absolute.
// If path is empty and defaultPath is provided, uses the default.
func expandPath(path, defaultPath string) (string, error) {
	if path == "" {
		return defaultPath, nil
	}

	// Expand tilde.
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(homeDir, path[2:])
	}

	// Make absolute if needed.
	if !filepath.IsAbs(path) {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return "", fmt.Errorf("failed to get absolute path: %w", err)
		}
		path = absPath
	}

	return filepath.Clean(path), nil
}

// expandDatabasePath expands ~ and makes the path absolute. Defaults to
// ~/RestaurantProfiles/profiles.db.
func (c *Config) expandDatabasePath() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	defaultPath := filepath.Join(homeDir, "RestaurantProfiles", "profiles.db")

	expanded, err := expandPath(c.Database.Path, defaultPath)
	if err != nil {
		return err
	}
	c.Database.Path = expanded
	return nil
}

// parseDurationValue resolves flag/env/default precedence and parses the
// result as a duration.
func parseDurationValue(flagValue, envKey, defaultValue string) (time.Duration, error) {
	str := getConfigValue(flagValue, envKey, defaultValue)
	d, err := time.ParseDuration(str)
	if err != nil {
		return 0, fmt.Errorf("%q: %w", str, err)
	}
	return d, nil
}

// getConfigValue returns the first non-empty value from flag, env var, or default.
func getConfigValue(flagValue, envKey, defaultValue string) string {
	// Priority 1: Command-line flag.
	if flagValue != "" {
		return flagValue
	}

	// Priority 2: Environment variable.
	if envValue := os.Getenv(envKey); envValue != "" {
		return envValue
	}

	// Priority 3: Default value.
	return defaultValue
}

// getIntConfigValue returns an int from flag, env var, or default.
func getIntConfigValue(flagValue, envKey string, defaultValue int) int {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result int
	if _, err := fmt.Sscanf(strValue, "%d", &result); err != nil {
		return defaultValue
	}
	return result
}

// getFloatConfigValue returns a float64 from flag, env var, or default.
func getFloatConfigValue(flagValue, envKey string, defaultValue float64) float64 {
	strValue := getConfigValue(flagValue, envKey, "")
	if strValue == "" {
		return defaultValue
	}
	var result float64
	if _, err := fmt.Sscanf(strValue, "%g", &result); err != nil {
		return defaultValue
	}
	return result
}

// loadEnvFile loads environment variables from a .env file.
// Format: KEY=value (one per line, # for comments).
func loadEnvFile(path string) error {
	file, err := os.Open(path) //#nosec G304 -- Config file path from user input is expected
	if err != nil {
		return err
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments.
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Parse KEY=value.
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			return fmt.Errorf("invalid format at line %d: %s", lineNum, line)
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		// Remove quotes if present.
		value = strings.Trim(value, `"'`)

		// Only set if not already set (env vars take precedence over .env file).
		if os.Getenv(key) == "" {
			if err := os.Setenv(key, value); err != nil {
				return fmt.Errorf("failed to set env var %s: %w", key, err)
			}
		}
	}

	return scanner.Err()
}
