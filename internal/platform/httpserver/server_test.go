package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestRouter_Healthz(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewRouter(stubPinger{err: errors.New("down")}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRouter_Readyz(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		err    error
		code   int
		status string
	}{
		{name: "ready", code: http.StatusOK, status: "ready"},
		{name: "database down", err: errors.New("connection refused"), code: http.StatusServiceUnavailable, status: "unavailable"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := httptest.NewRecorder()
			NewRouter(stubPinger{err: tt.err}).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			if rec.Code != tt.code {
				t.Fatalf("expected %d, got %d", tt.code, rec.Code)
			}

			var body map[string]string
			if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
				t.Fatalf("decode body: %v", err)
			}
			if body["status"] != tt.status {
				t.Fatalf("expected status %q, got %q", tt.status, body["status"])
			}
		})
	}
}

func TestRouter_RejectsOtherMethods(t *testing.T) {
	t.Parallel()

	rec := httptest.NewRecorder()
	NewRouter(stubPinger{}).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/healthz", nil))

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", rec.Code)
	}
}

func TestServer_RunStopsOnCancel(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	srv := New("127.0.0.1:0", stubPinger{}, nil)

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()
	cancel()

	if err := <-done; err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
}
