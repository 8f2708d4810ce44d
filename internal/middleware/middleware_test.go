package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestRequestIDKeepsIncomingHeader(t *testing.T) {
	var seen string
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetRequestID(r)
	}))

	req := httptest.NewRequest(http.MethodPost, "/humanize", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if seen != "abc-123" || rr.Header().Get("X-Request-ID") != "abc-123" {
		t.Fatalf("expected incoming id to be kept, got %q / %q", seen, rr.Header().Get("X-Request-ID"))
	}
}

func TestRequestIDGenerated(t *testing.T) {
	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/humanize", nil))

	if len(rr.Header().Get("X-Request-ID")) != 36 {
		t.Fatalf("expected uuid request id, got %q", rr.Header().Get("X-Request-ID"))
	}
}

func TestLoggingRecordsFirstStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.WriteHeader(http.StatusGatewayTimeout)
		_, _ = w.Write([]byte("x"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/humanize", nil))

	if rr.Code != http.StatusBadGateway {
		t.Fatalf("expected first status to win, got %d", rr.Code)
	}
	if !strings.Contains(buf.String(), `"status":502`) {
		t.Fatalf("expected status in log line, got %s", buf.String())
	}
}

func TestLoggingSkipsProbes(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	handler := Logging(logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if buf.Len() != 0 {
		t.Fatalf("expected no log for probe, got %s", buf.String())
	}
}
