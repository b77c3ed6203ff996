package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

const livenessTimeout = 3 * time.Second

// sessionCounter is what the liveness probe asks the registry.
type sessionCounter interface {
	Counts(ctx context.Context) (lobbies, games int, err error)
}

type livenessResult struct {
	Status  string `json:"status"`
	Lobbies int    `json:"lobbies"`
	Games   int    `json:"games"`
}

func newAdminRouter(reg *prometheus.Registry, counter sessionCounter, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		ctx, cancel := context.WithTimeout(req.Context(), livenessTimeout)
		defer cancel()

		res := livenessResult{Status: "ok"}
		code := http.StatusOK
		lobbies, games, err := counter.Counts(ctx)
		if err != nil {
			logger.Warn("liveness probe failed", zap.Error(err))
			res.Status = "error"
			code = http.StatusServiceUnavailable
		}
		res.Lobbies, res.Games = lobbies, games

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(res)
	})
	return r
}
