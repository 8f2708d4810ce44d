package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"humanize-engine/internal/api"
	"humanize-engine/internal/config"
	"humanize-engine/internal/httpserver"
	"humanize-engine/internal/llm"
	"humanize-engine/internal/proxy"
	"humanize-engine/internal/transport"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := newLogger(cfg.LogLevel)
	modelName := cfg.OpenAI.Model
	if info := llm.GetModelByID(cfg.OpenAI.Model); info != nil {
		modelName = info.Name
	} else {
		logger.Warn("model is not in the known list", slog.String("model", cfg.OpenAI.Model))
	}

	httpClient := transport.NewHTTPClient(cfg.ClientTimeout)
	llmClient := llm.NewOpenAIClient(cfg.OpenAI, httpClient, logger)

	service := proxy.NewService(proxy.ServiceConfig{
		Client: llmClient,
		Model:  cfg.OpenAI.Model,
		Logger: logger,
	})
	handler := api.NewHandler(api.HandlerDeps{
		Proxy:  service,
		Model:  cfg.OpenAI.Model,
		Logger: logger,
	})

	router := httpserver.NewRouter(httpserver.RouterDeps{
		Logger:         logger,
		RequestTimeout: cfg.RequestTimeout,
		Humanize:       handler.Humanize,
		ProductBrief:   handler.ProductBrief,
		Health:         handler.Health,
	})

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("server starting",
			slog.String("addr", cfg.HTTPAddr),
			slog.String("model", cfg.OpenAI.Model),
			slog.String("model_name", modelName),
			slog.Int("llm_max_attempts", cfg.OpenAI.MaxAttempts),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", slog.String("error", err.Error()))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutdown initiated")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown error", slog.String("error", err.Error()))
	}

	logger.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	slogLevel := slog.LevelInfo
	switch level {
	case "debug":
		slogLevel = slog.LevelDebug
	case "info":
		slogLevel = slog.LevelInfo
	case "warn":
		slogLevel = slog.LevelWarn
	case "error":
		slogLevel = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slogLevel}))
}
