package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// ErrMissingAPIKey возвращается, если OPENAI_API_KEY не задан.
var ErrMissingAPIKey = errors.New("OPENAI_API_KEY is required")

type Config struct {
	HTTPAddr       string
	LogLevel       string
	RequestTimeout time.Duration
	ClientTimeout  time.Duration
	OpenAI         OpenAIConfig
}

type OpenAIConfig struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxAttempts int
}

// Load читает конфигурацию из окружения. Значения из .env не перекрывают
// уже заданные переменные.
func Load() (Config, error) {
	if err := loadEnvFile(getEnv("ENV_FILE", ".env")); err != nil {
		return Config{}, err
	}

	var cfg Config

	cfg.HTTPAddr = getEnv("HTTP_ADDR", ":8080")
	cfg.LogLevel = strings.ToLower(getEnv("LOG_LEVEL", "info"))

	reqTimeout, err := parseDuration(getEnv("REQUEST_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse REQUEST_TIMEOUT: %w", err)
	}
	cfg.RequestTimeout = reqTimeout

	clientTimeout, err := parseDuration(getEnv("HTTP_CLIENT_TIMEOUT", "30s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse HTTP_CLIENT_TIMEOUT: %w", err)
	}
	cfg.ClientTimeout = clientTimeout

	maxAttempts, err := parseIntDefault(getEnv("LLM_MAX_ATTEMPTS", ""), 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse LLM_MAX_ATTEMPTS: %w", err)
	}
	if maxAttempts < 1 {
		return Config{}, fmt.Errorf("LLM_MAX_ATTEMPTS must be >= 1, got %d", maxAttempts)
	}

	cfg.OpenAI = OpenAIConfig{
		APIKey:      strings.TrimSpace(getEnv("OPENAI_API_KEY", "")),
		BaseURL:     strings.TrimSuffix(getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"), "/"),
		Model:       getEnv("OPENAI_MODEL", "gpt-4.1-mini"),
		MaxAttempts: maxAttempts,
	}
	if cfg.OpenAI.APIKey == "" {
		return Config{}, ErrMissingAPIKey
	}

	return cfg, nil
}

func loadEnvFile(path string) error {
	if path == "" {
		return nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// parseDuration разбирает таймаут; ноль и отрицательные значения запрещены.
func parseDuration(value string) (time.Duration, error) {
	if value == "" {
		return 0, fmt.Errorf("duration is empty")
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("duration must be positive, got %s", d)
	}
	return d, nil
}

func getEnv(key, def string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return def
}

// parseIntDefault parses optional integer with default value.
func parseIntDefault(value string, def int) (int, error) {
	if value == "" {
		return def, nil
	}
	return strconv.Atoi(strings.TrimSpace(value))
}
