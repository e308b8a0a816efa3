package config

import (
	"fmt"
	"strings"
	"time"

	"court-scheduling-backend/internal/calendar"

	"github.com/spf13/viper"
)

const defaultJWTSecret = "your-secret-key-change-in-production"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// JWT configuration
	JWTSecret        string `mapstructure:"JWT_SECRET"`
	JWTExpirySeconds int    `mapstructure:"JWT_EXPIRY_SEC"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Scheduling configuration
	ConflictMode      string `mapstructure:"CONFLICT_MODE"`
	CourtTimezone     string `mapstructure:"COURT_TIMEZONE"`
	RequestTimeoutSec int    `mapstructure:"REQUEST_TIMEOUT_SEC"`
	TxMaxRetries      int    `mapstructure:"TX_MAX_RETRIES"`

	// Hearing reminder jobs
	ReminderCron      string   `mapstructure:"REMINDER_CRON"`
	ReminderDistricts []string `mapstructure:"REMINDER_DISTRICTS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	config.ConflictMode = strings.ToLower(strings.TrimSpace(config.ConflictMode))
	config.ReminderDistricts = splitList(config.ReminderDistricts)
	config.AllowedOrigins = splitList(config.AllowedOrigins)

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "court_scheduling")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// JWT defaults
	viper.SetDefault("JWT_SECRET", defaultJWTSecret)
	viper.SetDefault("JWT_EXPIRY_SEC", 8*60*60)

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Scheduling defaults
	viper.SetDefault("CONFLICT_MODE", string(calendar.ConflictModeOverlap))
	viper.SetDefault("COURT_TIMEZONE", "Asia/Colombo")
	viper.SetDefault("REQUEST_TIMEOUT_SEC", 15)
	viper.SetDefault("TX_MAX_RETRIES", 3)

	// Reminder defaults: every day at 18:00 court time
	viper.SetDefault("REMINDER_CRON", "0 18 * * *")
	viper.SetDefault("REMINDER_DISTRICTS", []string{})
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

// splitList accepts both YAML lists and comma separated env values
func splitList(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func validate(config *Config) error {
	if config.Environment == "production" {
		if config.JWTSecret == defaultJWTSecret {
			return fmt.Errorf("JWT_SECRET must be set in production")
		}
	}

	if config.DatabaseName == "" && config.DatabaseURL == "" {
		return fmt.Errorf("database name is required")
	}

	if !calendar.ConflictMode(config.ConflictMode).IsValid() {
		return fmt.Errorf("CONFLICT_MODE must be %q or %q, got %q",
			calendar.ConflictModeOverlap, calendar.ConflictModeLegacy, config.ConflictMode)
	}

	if _, err := time.LoadLocation(config.CourtTimezone); err != nil {
		return fmt.Errorf("COURT_TIMEZONE %q is not a valid timezone: %w", config.CourtTimezone, err)
	}

	if config.RequestTimeoutSec < 0 {
		return fmt.Errorf("REQUEST_TIMEOUT_SEC must not be negative")
	}
	if config.TxMaxRetries < 0 {
		return fmt.Errorf("TX_MAX_RETRIES must not be negative")
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// Location returns the court's fixed timezone, falling back to UTC
func (c *Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.CourtTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// RequestTimeout returns the per-request deadline, zero meaning none
func (c *Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSec) * time.Second
}

// JWTExpiry returns the lifetime of issued tokens
func (c *Config) JWTExpiry() time.Duration {
	return time.Duration(c.JWTExpirySeconds) * time.Second
}

// Policy returns the conflict policy selected by CONFLICT_MODE
func (c *Config) Policy() calendar.Policy {
	return calendar.NewPolicy(calendar.ConflictMode(c.ConflictMode))
}
