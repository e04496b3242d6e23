// Package session keeps all per-conversation state: message histories and the
// model chat contexts bound to them. State is process-local and evicted by a
// lazy, request-triggered TTL sweep.
package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/sganguly/teacher-avatars/backend/internal/model/chat"
)

// ErrNoFactory is returned when a model session is requested but no language
// model backend was configured.
var ErrNoFactory = errors.New("model session factory unavailable")

const (
	// maxHistory caps stored turns per conversation; the oldest entries are
	// dropped first when the cap is exceeded.
	maxHistory = 10

	// ttl is how long a conversation may sit idle before a sweep drops it.
	ttl = time.Hour
)

// ModelSession is one stateful chat context with the model backend.
type ModelSession interface {
	Send(ctx context.Context, text string) (string, error)
}

// Factory creates a model session for an avatar type. Nil means the model
// backend is unavailable and every turn falls back to offline answers.
type Factory func(avatarType string) (ModelSession, error)

// Store holds conversation histories and model sessions keyed by
// (avatarType, sessionId). The mutex guards map integrity only; concurrent
// turns for the same key interleave last-write-wins, which is accepted for
// advisory chat history.
type Store struct {
	factory Factory

	mu        sync.RWMutex
	histories map[chat.Key][]chat.Turn
	models    map[chat.Key]ModelSession
}

// NewStore returns an empty store. factory may be nil.
func NewStore(factory Factory) *Store {
	return &Store{
		factory:   factory,
		histories: make(map[chat.Key][]chat.Turn),
		models:    make(map[chat.Key]ModelSession),
	}
}

// History returns a copy of the stored turns for the key, empty if absent.
func (s *Store) History(key chat.Key) []chat.Turn {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := s.histories[key]
	copied := make([]chat.Turn, len(turns))
	copy(copied, turns)
	return copied
}

// AppendTurn records one turn with the current timestamp, truncating from the
// front when the history exceeds the cap.
func (s *Store) AppendTurn(key chat.Key, role, content string) {
	turn := chat.Turn{Role: role, Content: content, Timestamp: time.Now().UnixMilli()}

	s.mu.Lock()
	defer s.mu.Unlock()

	history := append(s.histories[key], turn)
	if len(history) > maxHistory {
		history = history[len(history)-maxHistory:]
	}
	s.histories[key] = history
}

// ModelSession returns the chat context for the key, creating it on first
// use. The created session keeps its generation parameters for its lifetime.
func (s *Store) ModelSession(key chat.Key, avatarType string) (ModelSession, error) {
	s.mu.RLock()
	existing, ok := s.models[key]
	s.mu.RUnlock()
	if ok {
		return existing, nil
	}

	if s.factory == nil {
		return nil, ErrNoFactory
	}

	created, err := s.factory(avatarType)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// Another request may have raced us here; keep the stored one.
	if existing, ok := s.models[key]; ok {
		return existing, nil
	}
	s.models[key] = created
	return created, nil
}

// SweepExpired drops every conversation whose last turn is older than the TTL
// relative to now, removing both history and model session.
func (s *Store) SweepExpired(now time.Time) {
	cutoff := now.UnixMilli() - ttl.Milliseconds()

	s.mu.Lock()
	defer s.mu.Unlock()

	for key, history := range s.histories {
		if len(history) == 0 {
			continue
		}
		if history[len(history)-1].Timestamp < cutoff {
			delete(s.histories, key)
			delete(s.models, key)
		}
	}
}

// Len reports how many conversations are currently stored.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.histories)
}
