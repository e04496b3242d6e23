// Package turn drives one chat exchange end to end: validation, history
// bookkeeping, the model call, reply decomposition, and offline fallback.
// Upstream failures never escape this package; every turn produces a result.
package turn

import (
	"context"
	"errors"
	"log"
	"net"
	"strings"
	"time"

	"github.com/sganguly/teacher-avatars/backend/internal/analysis/reply"
	"github.com/sganguly/teacher-avatars/backend/internal/model/avatar"
	"github.com/sganguly/teacher-avatars/backend/internal/model/chat"
	"github.com/sganguly/teacher-avatars/backend/internal/service/ai"
	"github.com/sganguly/teacher-avatars/backend/internal/service/fallback"
	"github.com/sganguly/teacher-avatars/backend/internal/service/session"
)

// ErrorKind classifies upstream failures for the response's error field.
type ErrorKind string

const (
	ErrorQuota   ErrorKind = "API quota exceeded"
	ErrorTimeout ErrorKind = "Request timeout"
	ErrorNetwork ErrorKind = "Network error"
	ErrorGeneric ErrorKind = "Service temporarily unavailable"
)

// contextTurns is how many trailing history turns are forwarded to the model.
const contextTurns = 5

// Service orchestrates chat turns.
type Service struct {
	store    *session.Store
	avatars  avatar.Store
	prompts  *ai.PromptCache
	fallback *fallback.Service
	timeout  time.Duration
}

// NewService wires the orchestrator. timeout bounds the model call; zero
// selects the 25s default.
func NewService(store *session.Store, avatars avatar.Store, prompts *ai.PromptCache, fb *fallback.Service, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 25 * time.Second
	}
	return &Service{
		store:    store,
		avatars:  avatars,
		prompts:  prompts,
		fallback: fb,
		timeout:  timeout,
	}
}

// HandleTurn processes one raw chat payload. A non-nil ValidationError means
// the request was rejected before any state changed; otherwise a TurnResult
// is always returned, falling back to offline content on upstream failure.
func (s *Service) HandleTurn(ctx context.Context, raw []byte) (*chat.TurnResult, *ValidationError) {
	s.store.SweepExpired(time.Now())

	req, verr := validate(raw, s.avatars)
	if verr != nil {
		return nil, verr
	}

	key := chat.Key{AvatarType: req.AvatarType, SessionID: req.SessionID}

	// Only a suffix of the stored history is forwarded to the model.
	history := s.store.History(key)
	if len(history) > contextTurns {
		history = history[len(history)-contextTurns:]
	}

	s.store.AppendTurn(key, chat.RoleUser, req.Prompt)

	answer, err := s.callModel(ctx, key, req, history)
	if err != nil {
		kind := classify(err)
		log.Printf("[turn] model call failed for avatar=%s session=%s: %v (%s)", req.AvatarType, req.SessionID, err, kind)
		return s.fallbackResult(req, kind), nil
	}

	s.store.AppendTurn(key, chat.RoleAssistant, answer)

	parts := reply.Decompose(answer)
	result := &chat.TurnResult{
		Part1:           parts.Answer,
		Part2:           parts.Code,
		AvatarType:      req.AvatarType,
		SessionID:       req.SessionID,
		RelatedArticles: parts.Articles,
		RelatedVideos:   parts.Videos,
		Success:         true,
	}

	// Suggestion lists are never empty; backfill from the static tables.
	if len(result.RelatedArticles) == 0 {
		result.RelatedArticles = s.fallback.Articles(req.AvatarType)
	}
	if len(result.RelatedVideos) == 0 {
		result.RelatedVideos = s.fallback.Videos(req.AvatarType)
	}

	log.Printf("[turn] answered avatar=%s session=%s part1=%d part2=%d articles=%d videos=%d",
		req.AvatarType, req.SessionID, len(result.Part1), len(result.Part2),
		len(result.RelatedArticles), len(result.RelatedVideos))

	return result, nil
}

// callModel resolves the model session for the key and submits the composed
// prompt under the hard timeout.
func (s *Service) callModel(ctx context.Context, key chat.Key, req Request, history []chat.Turn) (string, error) {
	sess, err := s.store.ModelSession(key, req.AvatarType)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(s.prompts.SystemPrompt(req.AvatarType))
	if len(history) > 0 {
		b.WriteString("\n\nRecent conversation:")
		for _, t := range history {
			b.WriteString("\n")
			b.WriteString(t.Role)
			b.WriteString(": ")
			b.WriteString(t.Content)
		}
	}
	b.WriteString("\n\nUser Question: ")
	b.WriteString(req.Prompt)
	b.WriteString("\n\nPlease provide a comprehensive, educational response with examples and step-by-step explanations when appropriate.")

	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	return sess.Send(callCtx, b.String())
}

// fallbackResult builds the success=false response carrying offline content.
// The failed exchange is not recorded in history.
func (s *Service) fallbackResult(req Request, kind ErrorKind) *chat.TurnResult {
	var answer string
	switch kind {
	case ErrorQuota:
		answer = s.fallback.QuotaMessage()
	case ErrorTimeout:
		answer = s.fallback.TimeoutMessage()
	case ErrorNetwork:
		answer = s.fallback.NetworkMessage()
	default:
		answer = s.fallback.Synthesize(req.AvatarType, req.Prompt)
	}

	return &chat.TurnResult{
		Part1:           answer,
		Part2:           "",
		AvatarType:      req.AvatarType,
		SessionID:       req.SessionID,
		RelatedArticles: s.fallback.Articles(req.AvatarType),
		RelatedVideos:   s.fallback.Videos(req.AvatarType),
		Success:         false,
		Error:           string(kind),
	}
}

// classify maps an upstream failure to its error kind. Quota detection leans
// on status text because the OpenAI-compatible surface reports 429s as
// stringly-typed errors.
func classify(err error) ErrorKind {
	if err == nil {
		return ErrorGeneric
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return ErrorTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		if netErr.Timeout() {
			return ErrorTimeout
		}
		return ErrorNetwork
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "429"), strings.Contains(msg, "quota"), strings.Contains(msg, "rate limit"):
		return ErrorQuota
	case strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline"):
		return ErrorTimeout
	case strings.Contains(msg, "connection"), strings.Contains(msg, "no such host"), strings.Contains(msg, "network"):
		return ErrorNetwork
	default:
		return ErrorGeneric
	}
}
