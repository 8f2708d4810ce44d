package llm

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

var (
	ErrMissingAPIKey   = errors.New("api key is not configured")
	ErrInvalidModel    = errors.New("model is required")
	ErrEmptyCompletion = errors.New("empty response from model")
)

// StatusError возвращается, когда провайдер ответил не-2xx статусом.
// Body содержит только обрезанный фрагмент ответа.
type StatusError struct {
	StatusCode int
	Body       string
	RetryAfter time.Duration
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("provider returned status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider returned status %d: %s", e.StatusCode, e.Body)
}

// Temporary сообщает, может ли повтор того же запроса пройти успешно.
func (e *StatusError) Temporary() bool {
	switch e.StatusCode {
	case http.StatusRequestTimeout,
		http.StatusTooManyRequests,
		http.StatusInternalServerError,
		http.StatusBadGateway,
		http.StatusServiceUnavailable,
		http.StatusGatewayTimeout:
		return true
	}
	return false
}

func snippet(body []byte, limit int) string {
	if len(body) <= limit {
		return string(body)
	}
	return string(body[:limit])
}
