package handle

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/abhyasttechno/awagen-api/internal/gen"
)

type Handle struct {
	engine  gen.Engine
	timeout time.Duration
	log     *zap.SugaredLogger
}

func New(engine gen.Engine, timeout time.Duration, log *zap.SugaredLogger) *Handle {
	return &Handle{
		engine:  engine,
		timeout: timeout,
		log:     log,
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
