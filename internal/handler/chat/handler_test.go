package chat

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
	"github.com/sganguly/teacher-avatars/backend/internal/service/ai"
	"github.com/sganguly/teacher-avatars/backend/internal/service/fallback"
	"github.com/sganguly/teacher-avatars/backend/internal/service/session"
	turnService "github.com/sganguly/teacher-avatars/backend/internal/service/turn"
)

func newTestHandler() http.Handler {
	avatars := avatar.NewMemoryStore(avatar.Seed())
	store := session.NewStore(nil)
	turns := turnService.NewService(store, avatars, ai.NewPromptCache(avatars), fallback.NewService(), time.Second)

	r := chi.NewRouter()
	New(turns, avatars).RegisterRoutes(r)
	return r
}

func TestCreateSessionMintsID(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/chat/session", strings.NewReader(`{"avatarType":"biology-teacher"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["sessionId"] == "" {
		t.Fatal("expected a minted session id")
	}
	if resp["avatarType"] != "biology-teacher" {
		t.Fatalf("unexpected avatarType: %q", resp["avatarType"])
	}
}

func TestCreateSessionIDsAreUnique(t *testing.T) {
	h := newTestHandler()

	seen := map[string]bool{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodPost, "/chat/session", strings.NewReader(`{"avatarType":"biology-teacher"}`))
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)

		var resp map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("decode response: %v", err)
		}
		if seen[resp["sessionId"]] {
			t.Fatalf("duplicate session id %q", resp["sessionId"])
		}
		seen[resp["sessionId"]] = true
	}
}

func TestCreateSessionRejectsUnknownAvatar(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/chat/session", strings.NewReader(`{"avatarType":"astronomy-teacher"}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestCreateSessionRequiresAvatar(t *testing.T) {
	h := newTestHandler()

	req := httptest.NewRequest(http.MethodPost, "/chat/session", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestChatTurnOfflineFallback(t *testing.T) {
	// No session factory configured: every turn answers from the offline
	// knowledge base with success=false.
	h := newTestHandler()

	body := `{"prompt":"tell me about the brain","avatarType":"biology-teacher"}`
	req := httptest.NewRequest(http.MethodPost, "/chat", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		Part1   string `json:"part1"`
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Success {
		t.Fatal("expected success=false without a model backend")
	}
	if resp.Part1 == "" || resp.Error == "" {
		t.Fatalf("fallback body incomplete: %+v", resp)
	}
}
