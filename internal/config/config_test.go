package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"PORT", "GEMINI_API_KEY", "GEMINI_MODEL", "ATTACHMENT_MODE", "REQUEST_TIMEOUT_SEC"} {
		// t.Setenv registers the restore; Unsetenv makes the var truly
		// absent so envDefault values apply.
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Empty(t, cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.GeminiModel)
	assert.Equal(t, ModeUpload, cfg.AttachmentMode)
	assert.Equal(t, 180, cfg.RequestTimeoutSec)
}

func TestLoad_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "secret")
	t.Setenv("GEMINI_MODEL", "gemini-2.5-flash")
	t.Setenv("ATTACHMENT_MODE", ModeInline)
	t.Setenv("REQUEST_TIMEOUT_SEC", "30")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "secret", cfg.GeminiAPIKey)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
	assert.Equal(t, ModeInline, cfg.AttachmentMode)
	assert.Equal(t, 30, cfg.RequestTimeoutSec)
}

func TestLoad_InvalidAttachmentMode(t *testing.T) {
	clearEnv(t)
	t.Setenv("ATTACHMENT_MODE", "carrier-pigeon")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "ATTACHMENT_MODE")
}

func TestLoad_InvalidTimeout(t *testing.T) {
	clearEnv(t)
	t.Setenv("REQUEST_TIMEOUT_SEC", "-5")

	_, err := Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "REQUEST_TIMEOUT_SEC")
}
