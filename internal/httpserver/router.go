package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"humanize-engine/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type RouterDeps struct {
	Logger         *slog.Logger
	RequestTimeout time.Duration
	Humanize       http.HandlerFunc
	ProductBrief   http.HandlerFunc
	Health         http.HandlerFunc
}

// NewRouter собирает chi-роутер с общими middleware.
func NewRouter(deps RouterDeps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(deps.Logger))
	r.Use(middleware.Logging(deps.Logger))
	if deps.RequestTimeout > 0 {
		r.Use(chimw.Timeout(deps.RequestTimeout))
	}

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	if deps.Health != nil {
		r.Get("/healthz", deps.Health)
	}

	r.Post("/humanize", deps.Humanize)
	r.Post("/product-brief", deps.ProductBrief)

	return r
}
