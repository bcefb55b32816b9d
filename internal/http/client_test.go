package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/handiism/chord-compiler/internal/model"
)

func TestClient_Get(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.Header.Get("User-Agent")
		w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	client := NewClient(WithUserAgent("test-agent"))
	body, err := client.GetString(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if body != "<html>ok</html>" {
		t.Errorf("body = %q", body)
	}
	if gotAgent != "test-agent" {
		t.Errorf("User-Agent = %q, want %q", gotAgent, "test-agent")
	}
}

func TestClient_Get_Errors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	client := NewClient()

	tests := []struct {
		name string
		url  string
	}{
		{"non-200 status", srv.URL + "/missing"},
		{"connection refused", "http://127.0.0.1:1/"},
		{"malformed url", "://nope"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := client.Get(context.Background(), tt.url)
			if !errors.Is(err, model.ErrNetwork) {
				t.Errorf("Get() error = %v, want NetworkError", err)
			}
		})
	}
}

func TestClient_RateLimitCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	client := NewClient(WithRateLimit(0.01))

	// The first request consumes the single burst token.
	if _, err := client.Get(context.Background(), srv.URL); err != nil {
		t.Fatalf("first request failed: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := client.Get(ctx, srv.URL)
	if !errors.Is(err, model.ErrNetwork) {
		t.Errorf("Get() error = %v, want NetworkError", err)
	}
}
