package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds the application configuration.
type Config struct {
	LogLevel    string `envconfig:"ADVGAME_LOG_LEVEL" default:"info"`
	LogEncoding string `envconfig:"ADVGAME_LOG_ENCODING" default:"console"`
	// LogFile receives the debug log. The terminal belongs to the game, so
	// nothing is logged when it is empty.
	LogFile string `envconfig:"ADVGAME_LOG_FILE"`
	Watch   bool   `envconfig:"ADVGAME_WATCH" default:"false"`

	GeminiAPIKey string `envconfig:"GEMINI_API_KEY"`
	GeminiModel  string `envconfig:"GEMINI_MODEL" default:"gemini-2.5-flash"`
}

// LoadConfig loads the configuration from environment variables.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return &cfg, nil
}

// RequireGemini fails when the Gemini-backed tools cannot run.
func (c *Config) RequireGemini() error {
	if c.GeminiAPIKey == "" {
		return errors.New("GEMINI_API_KEY environment variable is not set")
	}
	return nil
}
