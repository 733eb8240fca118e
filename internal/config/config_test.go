package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("ADVGAME_LOG_LEVEL", "")
	t.Setenv("GEMINI_API_KEY", "")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "console", cfg.LogEncoding)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.False(t, cfg.Watch)
	assert.Error(t, cfg.RequireGemini())
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("ADVGAME_LOG_LEVEL", "debug")
	t.Setenv("ADVGAME_LOG_FILE", "/tmp/advgame.log")
	t.Setenv("ADVGAME_WATCH", "true")
	t.Setenv("GEMINI_API_KEY", "k")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/tmp/advgame.log", cfg.LogFile)
	assert.True(t, cfg.Watch)
	assert.NoError(t, cfg.RequireGemini())
}

func TestLoadConfigRejectsBadBool(t *testing.T) {
	t.Setenv("ADVGAME_WATCH", "sometimes")

	_, err := LoadConfig()
	assert.Error(t, err)
}
