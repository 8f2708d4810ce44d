// Package engineclient вызывает humanize-engine по HTTP. Поведение повторяет
// плагин для WordPress: короткие тексты не отправляются, при ошибке можно
// вернуть исходный текст.
package engineclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

const (
	DefaultTimeout = 30 * time.Second
	// MinTextBytes тексты короче этого порога возвращаются без изменений.
	MinTextBytes = 50

	maxResponseBytes = 4 << 20
)

var ErrEmptyResult = errors.New("engine returned empty result")

// StatusError возвращается при ответе сервиса не 200.
type StatusError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *StatusError) Error() string {
	detail := strings.TrimSpace(e.Code + " " + e.Message)
	if detail == "" {
		return fmt.Sprintf("engine returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("engine returned status %d: %s", e.StatusCode, detail)
}

type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New создает клиента. Если httpClient nil, используется клиент с DefaultTimeout.
func New(baseURL string, httpClient *http.Client, logger *slog.Logger) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: DefaultTimeout}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// Humanize отправляет text в /humanize. Пустые и короткие тексты возвращаются как есть.
func (c *Client) Humanize(ctx context.Context, text string) (string, error) {
	if len(text) < MinTextBytes {
		return text, nil
	}
	var resp struct {
		HumanizedText string `json:"humanized_text"`
	}
	if err := c.post(ctx, "/humanize", map[string]string{"text": text}, &resp); err != nil {
		return "", err
	}
	if resp.HumanizedText == "" {
		return "", ErrEmptyResult
	}
	return resp.HumanizedText, nil
}

// HumanizeOrOriginal никогда не падает: при любой ошибке возвращает исходный текст.
func (c *Client) HumanizeOrOriginal(ctx context.Context, text string) string {
	out, err := c.Humanize(ctx, text)
	if err != nil {
		c.logger.Warn("humanize failed, keeping original text", slog.String("error", err.Error()))
		return text
	}
	return out
}

// ProductBrief отправляет idea в /product-brief.
func (c *Client) ProductBrief(ctx context.Context, idea string) (string, error) {
	var resp struct {
		Brief string `json:"brief"`
	}
	if err := c.post(ctx, "/product-brief", map[string]string{"idea": idea}, &resp); err != nil {
		return "", err
	}
	if resp.Brief == "" {
		return "", ErrEmptyResult
	}
	return resp.Brief, nil
}

func (c *Client) post(ctx context.Context, path string, payload any, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal engine request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build engine request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("execute engine request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read engine response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		statusErr := &StatusError{StatusCode: resp.StatusCode}
		var envelope struct {
			Error struct {
				Code    string `json:"code"`
				Message string `json:"message"`
			} `json:"error"`
		}
		if json.Unmarshal(respBody, &envelope) == nil {
			statusErr.Code = envelope.Error.Code
			statusErr.Message = envelope.Error.Message
		} else {
			statusErr.Message = snippet(respBody, 200)
		}
		return statusErr
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode engine response: %w", err)
	}
	return nil
}

func snippet(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}
