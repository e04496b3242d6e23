package sandbox

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sganguly/teacher-avatars/backend/internal/config"
)

func testConfig(url string) config.SandboxConfig {
	return config.SandboxConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      url,
		Timeout:      2 * time.Second,
	}
}

func TestExecuteAppliesDefaultsAndCredentials(t *testing.T) {
	var received map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := json.NewDecoder(r.Body).Decode(&received); err != nil {
			t.Errorf("decode request: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]any{"output": "ok", "statusCode": 200})
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	result, err := client.Execute(context.Background(), Request{Code: "class Main {}"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}

	if result.Output != "ok" {
		t.Fatalf("unexpected output: %q", result.Output)
	}
	if received["language"] != "java" || received["versionIndex"] != "3" {
		t.Fatalf("defaults not applied: %v", received)
	}
	if received["clientId"] != "client-id" || received["clientSecret"] != "client-secret" {
		t.Fatalf("credentials missing: %v", received)
	}
	if received["script"] != "class Main {}" {
		t.Fatalf("code not forwarded: %v", received)
	}
}

func TestExecuteNon2xxIsUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
	}))
	defer srv.Close()

	client := NewClient(testConfig(srv.URL))
	if _, err := client.Execute(context.Background(), Request{Code: "x"}); !errors.Is(err, ErrUpstream) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
}

func TestExecuteHonorsTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.Timeout = 10 * time.Millisecond

	client := NewClient(cfg)
	if _, err := client.Execute(context.Background(), Request{Code: "x"}); err == nil {
		t.Fatal("expected a timeout error")
	}
}
