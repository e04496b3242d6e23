// Package ai wraps the upstream language model. The backend speaks to Gemini
// through its OpenAI-compatible endpoint via the eino openai component.
package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/sganguly/teacher-avatars/backend/internal/config"
)

// ErrEmptyReply is returned when the model responds with no usable text.
var ErrEmptyReply = errors.New("empty reply from model")

// Service owns the chat model shared by all sessions.
type Service struct {
	chatModel model.ChatModel
	cfg       config.AIConfig
}

// NewService creates the AI service from configuration.
func NewService(ctx context.Context, cfg config.AIConfig) (*Service, error) {
	chatModel, err := cfg.NewChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model: %w", err)
	}

	return &Service{chatModel: chatModel, cfg: cfg}, nil
}

// NewSession creates a stateful chat context. Generation parameters are fixed
// at model construction; each session only accumulates its own history.
func (s *Service) NewSession(avatarType string) (*Session, error) {
	if s == nil || s.chatModel == nil {
		return nil, errors.New("ai service unavailable")
	}
	_ = avatarType // sampling is uniform across avatars
	return &Session{chatModel: s.chatModel}, nil
}

// Session is one multi-turn chat context with the model. It is reused across
// turns for a conversation key and never explicitly closed; eviction of the
// owning conversation drops it.
type Session struct {
	mu        sync.Mutex
	chatModel model.ChatModel
	history   []*schema.Message
}

// Send submits one composed prompt and returns the model's reply text. The
// exchange is appended to the session history only on success.
func (s *Session) Send(ctx context.Context, text string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	messages := make([]*schema.Message, 0, len(s.history)+1)
	messages = append(messages, s.history...)
	messages = append(messages, schema.UserMessage(text))

	resp, err := s.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("failed to generate model reply: %w", err)
	}

	content := strings.TrimSpace(resp.Content)
	if content == "" {
		return "", ErrEmptyReply
	}

	s.history = append(s.history, schema.UserMessage(text), schema.AssistantMessage(content, nil))
	return content, nil
}
