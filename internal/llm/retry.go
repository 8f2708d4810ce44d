package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"strings"
	"syscall"
	"time"
)

// Повторы включаются только при LLM_MAX_ATTEMPTS > 1.
var (
	retryBaseDelay = 500 * time.Millisecond
	retryMaxDelay  = 8 * time.Second
	retrySleep     = sleepContext
)

// withRetry вызывает call до maxAttempts раз, пока ошибка временная.
func (c *OpenAIClient) withRetry(ctx context.Context, call func(context.Context) error) error {
	for attempt := 1; ; attempt++ {
		err := call(ctx)
		if err == nil {
			return nil
		}
		if attempt >= c.maxAttempts || !retryable(ctx, err) {
			if attempt > 1 {
				return fmt.Errorf("after %d attempts: %w", attempt, err)
			}
			return err
		}

		delay := retryDelay(attempt, err)
		if c.logger != nil {
			c.logger.Warn("retrying provider request",
				slog.Int("attempt", attempt+1),
				slog.Int("max_attempts", c.maxAttempts),
				slog.Duration("retry_in", delay),
				slog.String("error", err.Error()),
			)
		}
		if err := retrySleep(ctx, delay); err != nil {
			return err
		}
	}
}

func retryable(ctx context.Context, err error) bool {
	if ctx.Err() != nil {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	return errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, syscall.ECONNRESET)
}

// retryDelay удваивает задержку с каждой попыткой и добавляет джиттер в
// верхнюю половину интервала. Retry-After провайдера имеет приоритет.
func retryDelay(attempt int, err error) time.Duration {
	var statusErr *StatusError
	if errors.As(err, &statusErr) && statusErr.RetryAfter > 0 {
		return min(statusErr.RetryAfter, retryMaxDelay)
	}
	delay := retryMaxDelay
	if attempt < 16 {
		delay = min(retryBaseDelay<<(attempt-1), retryMaxDelay)
	}
	half := int64(delay / 2)
	return time.Duration(half + rand.Int63n(half+1))
}

func parseRetryAfter(h http.Header) time.Duration {
	value := strings.TrimSpace(h.Get("Retry-After"))
	if value == "" {
		return 0
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(value); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
