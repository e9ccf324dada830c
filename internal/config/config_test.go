package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "ENV", "GEMINI_API_KEY", "GOOGLE_API_KEY", "GEMINI_MODEL", "GEMINI_BASE_URL",
		"GEMINI_TIMEOUT", "MAX_FILE_SIZE", "MIN_RESUME_CHARS", "ANALYSIS_LOG_ENABLED",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(10485760), cfg.Storage.MaxFileSize)
	assert.Equal(t, 100, cfg.Analysis.MinResumeChars)
	assert.False(t, cfg.AnalysisLog.Enabled)
}

func TestLoadGeminiKeyFallsBackToGoogleKey(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GOOGLE_API_KEY", "google-key")

	assert.Equal(t, "google-key", Load().Gemini.APIKey)

	t.Setenv("GEMINI_API_KEY", "gemini-key")
	assert.Equal(t, "gemini-key", Load().Gemini.APIKey)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GEMINI_TIMEOUT", "5s")
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("ANALYSIS_LOG_ENABLED", "true")
	t.Setenv("MIN_RESUME_CHARS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 5*time.Second, cfg.Gemini.Timeout)
	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.True(t, cfg.AnalysisLog.Enabled)
	assert.Equal(t, 100, cfg.Analysis.MinResumeChars)
}

func TestHasAPIKey(t *testing.T) {
	tests := []struct {
		name string
		key  string
		want bool
	}{
		{name: "empty", key: "", want: false},
		{name: "whitespace", key: "   ", want: false},
		{name: "placeholder", key: PlaceholderAPIKey, want: false},
		{name: "real", key: "AIzaSy-test", want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, GeminiConfig{APIKey: tt.key}.HasAPIKey())
		})
	}
}
