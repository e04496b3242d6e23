package ai

import (
	"sync"

	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
)

// baseSystemPrompt is shared by every avatar; the avatar-specific block from
// the registry is appended to it.
const baseSystemPrompt = `You are an AI assistant designed to be a helpful, educational, and positive teacher avatar.

CORE GUIDELINES:
- Maintain a friendly, encouraging, and positive tone
- Provide clear, educational explanations with practical examples
- Avoid negative, offensive, or inappropriate content
- Use simple, straightforward language that's easy to follow
- Break down complex concepts into smaller, digestible parts
- Provide step-by-step explanations when possible
- While you have specialized knowledge in your domain, you can help with any subject

RESPONSE FORMAT:
- Provide comprehensive, detailed explanations
- Give thorough answers with examples, step-by-step breakdowns, and practical applications
- Structure responses logically with clear explanations and supporting details
- Always suggest relevant educational content and resources
- Maintain conversational context and refer back to earlier messages when relevant`

// PromptCache memoizes the fully composed system prompt per avatar type.
// Entries are immutable once computed; there is no invalidation path.
type PromptCache struct {
	avatars avatar.Store

	mu    sync.Mutex
	cache map[string]string
}

// NewPromptCache returns a cache backed by the avatar registry.
func NewPromptCache(avatars avatar.Store) *PromptCache {
	return &PromptCache{
		avatars: avatars,
		cache:   make(map[string]string),
	}
}

// SystemPrompt returns the composed system prompt for the avatar type,
// computing it at most once per process lifetime. Unknown avatar types get
// the base instructions alone.
func (p *PromptCache) SystemPrompt(avatarType string) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	if prompt, ok := p.cache[avatarType]; ok {
		return prompt
	}

	prompt := baseSystemPrompt
	if av, ok := p.avatars.FindByID(avatarType); ok && av.Prompt != "" {
		prompt = baseSystemPrompt + "\n\nAVATAR-SPECIFIC INSTRUCTIONS:\n\n" + av.Prompt
	}

	p.cache[avatarType] = prompt
	return prompt
}
