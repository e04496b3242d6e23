package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
	"github.com/sganguly/teacher-avatars/backend/internal/service/ai"
	"github.com/sganguly/teacher-avatars/backend/internal/service/fallback"
	"github.com/sganguly/teacher-avatars/backend/internal/service/session"
	turnService "github.com/sganguly/teacher-avatars/backend/internal/service/turn"
)

type fixedSession struct {
	reply string
}

func (s *fixedSession) Send(ctx context.Context, text string) (string, error) {
	return s.reply, nil
}

func newTestRouter(reply string) http.Handler {
	avatars := avatar.NewMemoryStore(avatar.Seed())
	store := session.NewStore(func(avatarType string) (session.ModelSession, error) {
		return &fixedSession{reply: reply}, nil
	})
	turns := turnService.NewService(store, avatars, ai.NewPromptCache(avatars), fallback.NewService(), time.Second)
	return NewRouter(avatars, turns, nil, nil)
}

func TestChatTurnEndToEnd(t *testing.T) {
	router := newTestRouter("PART1: Photosynthesis converts light into chemical energy.")

	body := `{"prompt":"explain photosynthesis","avatarType":"biology-teacher","sessionId":"s1"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Part1           string `json:"part1"`
		Success         bool   `json:"success"`
		AvatarType      string `json:"avatarType"`
		SessionID       string `json:"sessionId"`
		RelatedArticles []any  `json:"relatedArticles"`
		RelatedVideos   []any  `json:"relatedVideos"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success {
		t.Fatalf("expected success, body = %s", rec.Body.String())
	}
	if resp.Part1 != "Photosynthesis converts light into chemical energy." {
		t.Fatalf("unexpected part1: %q", resp.Part1)
	}
	if resp.AvatarType != "biology-teacher" || resp.SessionID != "s1" {
		t.Fatalf("echo fields wrong: %+v", resp)
	}
	if len(resp.RelatedArticles) == 0 || len(resp.RelatedVideos) == 0 {
		t.Fatal("suggestions should be backfilled")
	}
}

func TestChatTurnValidationReturns400(t *testing.T) {
	router := newTestRouter("PART1: hi")

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{"prompt":"hi","avatarType":"astronomy-teacher"}`))
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}

	var resp struct {
		Error            string   `json:"error"`
		Reason           string   `json:"reason"`
		AvailableAvatars []string `json:"availableAvatars"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Reason != "unknown_avatar_type" {
		t.Fatalf("reason = %q", resp.Reason)
	}
	if len(resp.AvailableAvatars) == 0 {
		t.Fatal("expected availableAvatars in rejection")
	}
}

func TestMethodNotAllowedIsJSON(t *testing.T) {
	router := newTestRouter("PART1: hi")

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want 405", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["error"] != "Method not allowed" {
		t.Fatalf("unexpected body: %v", resp)
	}
}

func TestAvatarsList(t *testing.T) {
	router := newTestRouter("PART1: hi")

	req := httptest.NewRequest(http.MethodGet, "/api/avatars", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var avatars []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &avatars); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(avatars) != 12 {
		t.Fatalf("expected 12 avatars, got %d", len(avatars))
	}
	if _, ok := avatars[0]["prompt"]; ok {
		t.Fatal("system prompts must not be exposed over HTTP")
	}
}

func TestUnconfiguredServicesReturn503(t *testing.T) {
	router := newTestRouter("PART1: hi")

	for _, path := range []string{"/api/tts", "/api/execute"} {
		req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(`{}`))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusServiceUnavailable {
			t.Fatalf("%s status = %d, want 503", path, rec.Code)
		}
	}
}

func TestVisitorCounter(t *testing.T) {
	router := newTestRouter("PART1: hi")

	post := httptest.NewRequest(http.MethodPost, "/api/visitors", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, post)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	get := httptest.NewRequest(http.MethodGet, "/api/visitors", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, get)

	var resp map[string]int64
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["count"] != 1 {
		t.Fatalf("count = %d, want 1", resp["count"])
	}
}

func TestHealth(t *testing.T) {
	router := newTestRouter("PART1: hi")

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "healthy") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
