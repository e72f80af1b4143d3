package config

import (
	"fmt"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Attachment transport modes for the Gemini call.
const (
	ModeUpload = "upload" // stage bytes through the File API, reference by URI
	ModeInline = "inline" // send raw bytes inside the request
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// GeminiAPIKey may be empty: the server still starts and every
	// /generate-post request answers 500 until the key is provided.
	GeminiAPIKey string `env:"GEMINI_API_KEY"`
	GeminiModel  string `env:"GEMINI_MODEL" envDefault:"gemini-2.0-flash"`

	AttachmentMode    string `env:"ATTACHMENT_MODE" envDefault:"upload"`
	RequestTimeoutSec int    `env:"REQUEST_TIMEOUT_SEC" envDefault:"180"`
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.AttachmentMode {
	case ModeUpload, ModeInline:
	default:
		return nil, fmt.Errorf("ATTACHMENT_MODE must be %q or %q, got %q", ModeUpload, ModeInline, cfg.AttachmentMode)
	}
	if cfg.RequestTimeoutSec <= 0 {
		return nil, fmt.Errorf("REQUEST_TIMEOUT_SEC must be positive, got %d", cfg.RequestTimeoutSec)
	}
	return cfg, nil
}
