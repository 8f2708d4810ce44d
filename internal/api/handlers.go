package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"strings"

	"humanize-engine/internal/httpserver"
	"humanize-engine/internal/middleware"
	"humanize-engine/internal/proxy"
)

const maxBodyBytes = 1 << 20

// Proxy выполняет промпт-шаблонные вызовы провайдера.
type Proxy interface {
	Humanize(ctx context.Context, text string) (string, error)
	ProductBrief(ctx context.Context, idea string) (string, error)
}

type HandlerDeps struct {
	Proxy  Proxy
	Model  string
	Logger *slog.Logger
}

type Handler struct {
	proxy  Proxy
	model  string
	logger *slog.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{
		proxy:  deps.Proxy,
		model:  deps.Model,
		logger: deps.Logger,
	}
}

// validationError несет сообщение, безопасное для клиента.
type validationError struct {
	status  int
	message string
}

func (e *validationError) Error() string {
	return e.message
}

func (h *Handler) Humanize(w http.ResponseWriter, r *http.Request) {
	var req RewriteRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeValidationError(w, err)
		return
	}
	text, err := requiredString("text", req.Text)
	if err != nil {
		h.writeValidationError(w, err)
		return
	}

	out, err := h.proxy.Humanize(r.Context(), text)
	if err != nil {
		h.writeProxyError(w, r, "humanize", err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, RewriteResponse{HumanizedText: out})
}

func (h *Handler) ProductBrief(w http.ResponseWriter, r *http.Request) {
	var req BriefRequest
	if err := decodeJSON(w, r, &req); err != nil {
		h.writeValidationError(w, err)
		return
	}
	idea, err := requiredString("idea", req.Idea)
	if err != nil {
		h.writeValidationError(w, err)
		return
	}

	out, err := h.proxy.ProductBrief(r.Context(), idea)
	if err != nil {
		h.writeProxyError(w, r, "product-brief", err)
		return
	}
	httpserver.WriteJSON(w, http.StatusOK, BriefResponse{Brief: out})
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	httpserver.WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok", Model: h.model})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		var typeErr *json.UnmarshalTypeError
		switch {
		case errors.As(err, &tooLarge):
			return &validationError{status: http.StatusRequestEntityTooLarge, message: "request body is too large"}
		case errors.Is(err, io.EOF):
			return &validationError{status: http.StatusUnprocessableEntity, message: "request body is empty"}
		case errors.As(err, &typeErr) && typeErr.Field != "":
			return &validationError{status: http.StatusUnprocessableEntity, message: fmt.Sprintf("field %q must be a %s", typeErr.Field, typeErr.Type)}
		default:
			return &validationError{status: http.StatusUnprocessableEntity, message: "request body must be a valid JSON object"}
		}
	}
	if dec.More() {
		return &validationError{status: http.StatusUnprocessableEntity, message: "request body must contain a single JSON object"}
	}
	return nil
}

func requiredString(field string, value *string) (string, error) {
	if value == nil {
		return "", &validationError{status: http.StatusUnprocessableEntity, message: fmt.Sprintf("field %q is required", field)}
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return "", &validationError{status: http.StatusUnprocessableEntity, message: fmt.Sprintf("field %q must not be empty", field)}
	}
	return trimmed, nil
}

func (h *Handler) writeValidationError(w http.ResponseWriter, err error) {
	var verr *validationError
	if !errors.As(err, &verr) {
		verr = &validationError{status: http.StatusUnprocessableEntity, message: "invalid request"}
	}
	httpserver.WriteJSONError(w, verr.status, "validation_error", verr.message)
}

// writeProxyError пишет ошибку провайдера в лог, клиенту отдает только код.
func (h *Handler) writeProxyError(w http.ResponseWriter, r *http.Request, endpoint string, err error) {
	if errors.Is(err, proxy.ErrEmptyInput) {
		httpserver.WriteJSONError(w, http.StatusUnprocessableEntity, "validation_error", "input must not be empty")
		return
	}

	h.logger.Error("upstream call failed",
		slog.String("endpoint", endpoint),
		slog.String("request_id", middleware.GetRequestID(r)),
		slog.String("error", err.Error()),
	)

	switch {
	case isTimeout(err):
		httpserver.WriteJSONError(w, http.StatusGatewayTimeout, "upstream_timeout", "text provider did not respond in time")
	case errors.Is(err, context.Canceled):
		// Клиент ушел, отвечать некому.
		w.WriteHeader(http.StatusServiceUnavailable)
	default:
		httpserver.WriteJSONError(w, http.StatusBadGateway, "upstream_error", "text provider request failed")
	}
}

// isTimeout покрывает дедлайн контекста и http.Client.Timeout, который не во
// всех версиях Go оборачивает context.DeadlineExceeded.
func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
