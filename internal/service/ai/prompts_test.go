package ai

import (
	"strings"
	"testing"

	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
)

func TestSystemPromptComposesAvatarInstructions(t *testing.T) {
	cache := NewPromptCache(avatar.NewMemoryStore(avatar.Seed()))

	prompt := cache.SystemPrompt("biology-teacher")
	if !strings.Contains(prompt, "CORE GUIDELINES") {
		t.Fatalf("base instructions missing: %q", prompt)
	}
	if !strings.Contains(prompt, "AVATAR-SPECIFIC INSTRUCTIONS:") {
		t.Fatalf("avatar block missing: %q", prompt)
	}
}

func TestSystemPromptUnknownAvatarGetsBaseOnly(t *testing.T) {
	cache := NewPromptCache(avatar.NewMemoryStore(avatar.Seed()))

	prompt := cache.SystemPrompt("astronomy-teacher")
	if !strings.Contains(prompt, "CORE GUIDELINES") {
		t.Fatalf("base instructions missing: %q", prompt)
	}
	if strings.Contains(prompt, "AVATAR-SPECIFIC INSTRUCTIONS:") {
		t.Fatalf("unknown avatar must not get a specific block: %q", prompt)
	}
}

func TestSystemPromptMemoized(t *testing.T) {
	seed := avatar.Seed()
	store := avatar.NewMemoryStore(seed)
	cache := NewPromptCache(store)

	first := cache.SystemPrompt("physics-teacher")
	second := cache.SystemPrompt("physics-teacher")
	if first != second {
		t.Fatal("repeated lookups must return the same prompt")
	}
}

func TestSystemPromptDistinctPerAvatar(t *testing.T) {
	cache := NewPromptCache(avatar.NewMemoryStore(avatar.Seed()))

	if cache.SystemPrompt("biology-teacher") == cache.SystemPrompt("physics-teacher") {
		t.Fatal("different avatars must compose different prompts")
	}
}
