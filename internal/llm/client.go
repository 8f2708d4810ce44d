package llm

import "context"

// Request описывает один вызов chat completion: системная и пользовательская
// инструкции плюс параметры сэмплирования.
type Request struct {
	Model       string
	System      string
	User        string
	Temperature float64
}

// Client минимальный публичный интерфейс LLM клиента.
type Client interface {
	Complete(ctx context.Context, req Request) (string, error)
}
