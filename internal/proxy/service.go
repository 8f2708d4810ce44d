package proxy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"humanize-engine/internal/llm"
	"humanize-engine/internal/prompts"
)

// ErrEmptyInput возвращается, если после обрезки пробелов текст пуст.
var ErrEmptyInput = errors.New("input is empty")

// UpstreamError оборачивает любую ошибку вызова провайдера.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: upstream: %v", e.Op, e.Err)
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

type ServiceConfig struct {
	Client llm.Client
	Model  string
	Logger *slog.Logger
}

// Service строит промпт по шаблону и делает ровно один вызов провайдера.
// Состояния между вызовами нет, сервис безопасен для конкурентного использования.
type Service struct {
	client llm.Client
	model  string
	logger *slog.Logger
}

func NewService(cfg ServiceConfig) *Service {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		client: cfg.Client,
		model:  cfg.Model,
		logger: logger,
	}
}

// Humanize переписывает text так, чтобы он звучал естественно.
func (s *Service) Humanize(ctx context.Context, text string) (string, error) {
	return s.run(ctx, prompts.Humanize, text)
}

// ProductBrief генерирует продуктовый бриф по короткому описанию идеи.
func (s *Service) ProductBrief(ctx context.Context, idea string) (string, error) {
	brief, err := s.run(ctx, prompts.ProductBrief, idea)
	if err != nil {
		return "", err
	}
	if missing := prompts.MissingSections(brief); len(missing) > 0 {
		s.logger.Warn("brief is missing sections", slog.Any("sections", missing))
	}
	return brief, nil
}

func (s *Service) run(ctx context.Context, name string, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyInput
	}

	tmpl, err := prompts.Get(name)
	if err != nil {
		return "", err
	}

	out, err := s.client.Complete(ctx, llm.Request{
		Model:       s.model,
		System:      tmpl.System,
		User:        tmpl.UserMessage(input),
		Temperature: tmpl.Temperature,
	})
	if err != nil {
		return "", &UpstreamError{Op: name, Err: err}
	}
	return strings.TrimSpace(out), nil
}
