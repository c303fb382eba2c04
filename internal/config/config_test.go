package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("OPENROUTER_API_KEY", "")
	t.Setenv("RESEND_API_KEY", "")
	t.Setenv("REDIS_URL", "")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "https://openrouter.ai/api/v1", cfg.OpenRouterBaseURL)
	assert.Equal(t, "https://localhost:3000", cfg.SiteURL)
	assert.Equal(t, 15*time.Second, cfg.ChatTimeout)
	assert.Equal(t, 10*time.Minute, cfg.ChatCacheTTL)
	assert.Equal(t, "Portfolio Contact <onboarding@resend.dev>", cfg.ContactFrom)
	assert.False(t, cfg.ChatConfigured())
	assert.False(t, cfg.CacheEnabled())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("OPENROUTER_API_KEY", "sk-or-test")
	t.Setenv("CHAT_REQUEST_TIMEOUT", "3s")
	t.Setenv("MY_EMAIL_ADDRESS", "owner@example.com")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 3*time.Second, cfg.ChatTimeout)
	assert.Equal(t, "owner@example.com", cfg.ContactTo)
	assert.True(t, cfg.ChatConfigured())
}

func TestLoad_ReadsDotEnvFile(t *testing.T) {
	t.Setenv("RESEND_API_KEY", "")
	os.Unsetenv("RESEND_API_KEY")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("RESEND_API_KEY=re_from_file\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "re_from_file", cfg.ResendAPIKey)
}

func TestLoad_InvalidDuration(t *testing.T) {
	t.Setenv("CHAT_CACHE_TTL", "soon")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLogrusLevel(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected logrus.Level
	}{
		{"parses debug", "debug", logrus.DebugLevel},
		{"parses warn", "warn", logrus.WarnLevel},
		{"falls back to info", "chatty", logrus.InfoLevel},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := &Config{LogLevel: tc.level}
			assert.Equal(t, tc.expected, cfg.LogrusLevel())
		})
	}
}

func TestNewLogger_ProductionUsesJSON(t *testing.T) {
	cfg := &Config{Env: "production", LogLevel: "info"}
	logger := cfg.NewLogger()
	_, ok := logger.Formatter.(*logrus.JSONFormatter)
	assert.True(t, ok)
}
