package config

import (
	"os"

	"docstudio/internal/logger"
)

type Config struct {
	// OpenAI Configuration (only needed for the generate command)
	OpenAIAPIKey string
	OpenAIModel  string

	// Display defaults for rendering
	Locale   string
	Currency string

	// Logging Configuration
	LogLevel      string
	LogFormat     string
	LogTimeFormat string
	LogOutput     string
}

// Load reads configuration from the environment. Nothing is strictly
// required at load time: rendering and validation work offline, and the
// assistant checks for its API key when it is actually constructed.
func Load() (*Config, error) {
	config := &Config{
		OpenAIAPIKey:  getEnv("OPENAI_API_KEY", ""),
		OpenAIModel:   getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		Locale:        getEnv("DOCSTUDIO_LOCALE", "en"),
		Currency:      getEnv("DOCSTUDIO_CURRENCY", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFormat:     getEnv("LOG_FORMAT", "console"),
		LogTimeFormat: getEnv("LOG_TIME_FORMAT", "2006-01-02T15:04:05Z07:00"),
		LogOutput:     getEnv("LOG_OUTPUT", "stderr"),
	}
	return config, nil
}

// GetLoggerConfig returns a logger configuration from the main config
func (c *Config) GetLoggerConfig() logger.LogConfig {
	return logger.LogConfig{
		Level:      c.LogLevel,
		Format:     c.LogFormat,
		TimeFormat: c.LogTimeFormat,
		Output:     c.LogOutput,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
