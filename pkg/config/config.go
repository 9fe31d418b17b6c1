// ABOUTME: Configuration management for the bot with environment variable support
// ABOUTME: Defines configuration structures for telegram, fetching, HTTP server and logging

package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Fetch backends
const (
	BackendStandard = "standard"
	BackendColly    = "colly"
)

// Config holds all application configuration
type Config struct {
	// Bot contains Telegram bot configuration
	Bot BotConfig

	// Source contains configuration of the instructions site
	Source SourceConfig

	// Server contains HTTP server configuration
	Server ServerConfig

	// Log contains logging configuration
	Log LogConfig
}

// BotConfig holds Telegram bot configuration
type BotConfig struct {
	// Token is the Bot API token
	Token string

	// Disabled runs the process without the bot, serving only HTTP
	Disabled bool

	// FullMessageDefault selects full mode for plain text dates
	FullMessageDefault bool

	// APIEndpoint overrides the Bot API endpoint format
	APIEndpoint string

	// PollTimeout is the long-poll timeout in seconds
	PollTimeout int

	// SendRate is the maximum number of outbound Bot API calls per second
	SendRate float64
}

// SourceConfig holds configuration of the instructions site
type SourceConfig struct {
	// BaseURL is the address pages are fetched under as {BaseURL}/{YYYY-MM-DD}
	BaseURL string

	// Backend selects the HTTP transport (standard/colly)
	Backend string

	// Timeout is the fetch timeout in seconds
	Timeout int
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	// Port is the HTTP server port
	Port string

	// RateLimit is the number of requests per minute allowed per client IP, 0 disables limiting
	RateLimit int
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// LoadFromEnv loads configuration from environment variables
func LoadFromEnv() (*Config, error) {
	cfg := &Config{
		Bot: BotConfig{
			Token:              getEnvOrDefault("BOT_TOKEN", ""),
			Disabled:           getEnvAsBoolOrDefault("BOT_DISABLED", false),
			FullMessageDefault: getEnvAsBoolOrDefault("FULL_MESSAGE_DEFAULT", false),
			APIEndpoint:        getEnvOrDefault("TELEGRAM_API_ENDPOINT", ""),
			PollTimeout:        getEnvAsIntOrDefault("TELEGRAM_POLL_TIMEOUT", 60),
			SendRate:           getEnvAsFloatOrDefault("TELEGRAM_SEND_RATE", 25),
		},
		Source: SourceConfig{
			BaseURL: strings.TrimRight(getEnvOrDefault("BASE_URL", "http://www.patriarchia.ru/bu"), "/"),
			Backend: strings.ToLower(getEnvOrDefault("FETCH_BACKEND", BackendStandard)),
			Timeout: getEnvAsIntOrDefault("FETCH_TIMEOUT", 30),
		},
		Server: ServerConfig{
			Port:      getEnvOrDefault("PORT", "8000"),
			RateLimit: getEnvAsIntOrDefault("HTTP_RATE_LIMIT", 30),
		},
		Log: LogConfig{
			Level:  getEnvOrDefault("LOG_LEVEL", "info"),
			Format: getEnvOrDefault("LOG_FORMAT", "text"),
			File:   getEnvOrDefault("LOG_FILE", ""),
		},
	}

	return cfg, nil
}

// FetchTimeout returns the fetch timeout as a duration
func (c *Config) FetchTimeout() time.Duration {
	return time.Duration(c.Source.Timeout) * time.Second
}

// getEnvOrDefault returns the environment variable value or a default
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsIntOrDefault returns the environment variable as int or a default
func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsFloatOrDefault returns the environment variable as float64 or a default
func getEnvAsFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvAsBoolOrDefault returns the environment variable as bool or a default
func getEnvAsBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if !c.Bot.Disabled && c.Bot.Token == "" {
		return errors.New("BOT_TOKEN is required unless BOT_DISABLED is set")
	}

	if c.Bot.PollTimeout < 1 {
		return errors.New("telegram poll timeout must be at least 1 second")
	}

	if c.Bot.SendRate <= 0 {
		return errors.New("telegram send rate must be positive")
	}

	if c.Source.BaseURL == "" {
		return errors.New("base URL cannot be empty")
	}

	if c.Source.Backend != BackendStandard && c.Source.Backend != BackendColly {
		return fmt.Errorf("fetch backend must be '%s' or '%s'", BackendStandard, BackendColly)
	}

	if c.Source.Timeout < 1 {
		return errors.New("fetch timeout must be at least 1 second")
	}

	if c.Server.Port == "" {
		return errors.New("port cannot be empty")
	}

	if c.Server.RateLimit < 0 {
		return errors.New("HTTP rate limit cannot be negative")
	}

	return nil
}
