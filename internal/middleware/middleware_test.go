package middleware

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hospital-intake/internal/platform/logger"

	chimw "github.com/go-chi/chi/v5/middleware"
)

func newJSONLogger(buf *bytes.Buffer) logger.Logger {
	return logger.New(logger.Options{Level: logger.Debug, Format: logger.FormatJSON, Output: buf})
}

func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[len(lines)-1]), &entry); err != nil {
		t.Fatalf("log line is not json: %v (%q)", err, buf.String())
	}
	return entry
}

func TestRequestLogger_StatusAndRequestID(t *testing.T) {
	var buf bytes.Buffer
	h := chimw.RequestID(RequestLogger(newJSONLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if RequestIDFrom(r.Context()) == "" {
			t.Errorf("expected request id in context")
		}
		w.WriteHeader(http.StatusNotFound)
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/prescription?patientId=x", nil))

	e := lastEntry(t, &buf)
	if e["level"] != "warn" || e["message"] != "request" {
		t.Fatalf("expected warn request line, got %#v", e)
	}
	if e["path"] != "/prescription" || e["status"] != float64(http.StatusNotFound) {
		t.Fatalf("unexpected fields %#v", e)
	}
	if rid, _ := e["request_id"].(string); rid == "" {
		t.Fatalf("expected request_id, got %#v", e)
	}
}

func TestRequestLogger_DefaultsTo200(t *testing.T) {
	var buf bytes.Buffer
	h := RequestLogger(newJSONLogger(&buf))(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	}))
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/health", nil))

	e := lastEntry(t, &buf)
	if e["level"] != "info" || e["status"] != float64(http.StatusOK) {
		t.Fatalf("unexpected entry %#v", e)
	}
}

func TestRecover_Returns500AndLogs(t *testing.T) {
	var buf bytes.Buffer
	h := Sentry(Recover(newJSONLogger(&buf))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})))

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}
	e := lastEntry(t, &buf)
	if e["message"] != "panic recovered" || e["panic"] != "boom" {
		t.Fatalf("unexpected entry %#v", e)
	}
}

func TestRecover_RepanicsOnAbortHandler(t *testing.T) {
	h := Recover(logger.Nop())(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	defer func() {
		if rec := recover(); rec != http.ErrAbortHandler {
			t.Fatalf("expected ErrAbortHandler to propagate, got %v", rec)
		}
	}()
	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
}

func TestReportError_WithoutClientIsNoop(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	ReportError(r, errors.New("db down"))
	ReportError(r, nil)
}
