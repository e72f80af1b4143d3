package main

import (
	"log"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/abhyasttechno/awagen-api/internal/config"
	"github.com/abhyasttechno/awagen-api/internal/gen/gemini"
	"github.com/abhyasttechno/awagen-api/internal/handle"
	"github.com/abhyasttechno/awagen-api/internal/httpserver"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer logger.Sync()
	sugar := logger.Sugar()

	if cfg.GeminiAPIKey == "" {
		sugar.Error("GEMINI_API_KEY is not set; /generate-post will answer 500 until it is")
	}

	engine := gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.AttachmentMode, sugar)
	h := handle.New(engine, time.Duration(cfg.RequestTimeoutSec)*time.Second, sugar)
	mux := httpserver.New(h)

	addr := ":" + cfg.Port
	sugar.Infow("awagen-api listening", "addr", addr, "model", cfg.GeminiModel, "attachmentMode", cfg.AttachmentMode)
	if err := http.ListenAndServe(addr, mux); err != nil {
		sugar.Fatalw("server stopped", "error", err)
	}
}
