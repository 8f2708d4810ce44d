package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"humanize-engine/internal/config"
)

const maxResponseBytes = 4 << 20

// OpenAIClient вызывает OpenAI-совместимый endpoint /chat/completions.
type OpenAIClient struct {
	apiKey       string
	baseURL      string
	defaultModel string
	maxAttempts  int
	httpClient   *http.Client
	logger       *slog.Logger
}

func NewOpenAIClient(cfg config.OpenAIConfig, httpClient *http.Client, logger *slog.Logger) *OpenAIClient {
	return &OpenAIClient{
		apiKey:       cfg.APIKey,
		baseURL:      cfg.BaseURL,
		defaultModel: cfg.Model,
		maxAttempts:  max(cfg.MaxAttempts, 1),
		httpClient:   httpClient,
		logger:       logger,
	}
}

func (c *OpenAIClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", ErrMissingAPIKey
	}
	model := req.Model
	if model == "" {
		model = c.defaultModel
	}
	if model == "" {
		return "", ErrInvalidModel
	}

	messages := make([]message, 0, 2)
	if req.System != "" {
		messages = append(messages, message{Role: "system", Content: req.System})
	}
	messages = append(messages, message{Role: "user", Content: req.User})

	buf, err := json.Marshal(chatRequest{
		Model:       model,
		Messages:    messages,
		Temperature: req.Temperature,
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	var answer string
	err = c.withRetry(ctx, func(ctx context.Context) error {
		var err error
		answer, err = c.doRequest(ctx, buf)
		return err
	})
	if err != nil {
		return "", err
	}
	return answer, nil
}

func (c *OpenAIClient) doRequest(ctx context.Context, payload []byte) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/chat/completions", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", &StatusError{
			StatusCode: resp.StatusCode,
			Body:       snippet(body, 200),
			RetryAfter: parseRetryAfter(resp.Header),
		}
	}

	var parsed chatResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(parsed.Choices) == 0 {
		return "", ErrEmptyCompletion
	}
	return parsed.Choices[0].Message.Content, nil
}

type chatRequest struct {
	Model       string    `json:"model"`
	Messages    []message `json:"messages"`
	Temperature float64   `json:"temperature"`
}

type message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message message `json:"message"`
	} `json:"choices"`
}
