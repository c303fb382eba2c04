package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Server
	Port     string `env:"PORT" envDefault:"8080"`
	Env      string `env:"ENV" envDefault:"development"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Frontend
	FrontendURL string `env:"FRONTEND_URL" envDefault:"http://localhost:3000"`

	// OpenRouter. An empty key puts the chat endpoint in local-only mode.
	OpenRouterAPIKey  string        `env:"OPENROUTER_API_KEY"`
	OpenRouterBaseURL string        `env:"OPENROUTER_BASE_URL" envDefault:"https://openrouter.ai/api/v1"`
	SiteURL           string        `env:"NEXT_PUBLIC_SITE_URL" envDefault:"https://localhost:3000"`
	ChatTimeout       time.Duration `env:"CHAT_REQUEST_TIMEOUT" envDefault:"15s"`

	// Resend
	ResendAPIKey  string `env:"RESEND_API_KEY"`
	ContactTo     string `env:"MY_EMAIL_ADDRESS"`
	ContactFrom   string `env:"CONTACT_FROM" envDefault:"Portfolio Contact <onboarding@resend.dev>"`
	ResendBaseURL string `env:"RESEND_BASE_URL"`

	// Redis reply cache, disabled when REDIS_URL is empty
	RedisURL     string        `env:"REDIS_URL"`
	ChatCacheTTL time.Duration `env:"CHAT_CACHE_TTL" envDefault:"10m"`
}

// Load reads .env files if present and parses the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env", ".env.local"}
	}
	var existing []string
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) > 0 {
		if err := godotenv.Load(existing...); err != nil {
			return nil, fmt.Errorf("failed to load env files: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func (c *Config) ChatConfigured() bool {
	return c.OpenRouterAPIKey != ""
}

func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func (c *Config) LogrusLevel() logrus.Level {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return logrus.InfoLevel
	}
	return level
}

// NewLogger builds the process logger. Production emits JSON.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetLevel(c.LogrusLevel())
	if c.IsProduction() {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return logger
}
