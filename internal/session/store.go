// Package session provides the conversation context store: an
// append-only transcript per session from which dialogue focus is
// derived. Two backends exist, in-memory and Redis.
package session

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
)

// Store is the conversation context store contract. Focus is always a
// pure function of the transcript; no backend stores it independently.
type Store interface {
	Append(ctx context.Context, sessionID string, turns ...models.Turn) error
	History(ctx context.Context, sessionID string) ([]models.Turn, error)
	TranscriptContains(ctx context.Context, sessionID, term string) (bool, error)
	CurrentFocus(ctx context.Context, sessionID string) (models.Focus, error)
}

// NewSessionID generates a fresh session identifier.
func NewSessionID() string {
	return uuid.NewString()
}

// transcriptContains is the shared containment predicate: lowercased
// substring match over all turn texts.
func transcriptContains(turns []models.Turn, term string) bool {
	lower := strings.ToLower(term)
	for _, t := range turns {
		if strings.Contains(strings.ToLower(t.Text), lower) {
			return true
		}
	}
	return false
}

// MemoryStore keeps transcripts in process memory. Suitable for a
// single worker instance; history is bounded per session but the
// sequence counter keeps growing so ordering survives trimming.
type MemoryStore struct {
	mu         sync.RWMutex
	sessions   map[string][]models.Turn
	nextSeq    map[string]int
	maxHistory int
}

// NewMemoryStore creates an in-memory store. maxHistory <= 0 means
// unbounded.
func NewMemoryStore(maxHistory int) *MemoryStore {
	return &MemoryStore{
		sessions:   make(map[string][]models.Turn),
		nextSeq:    make(map[string]int),
		maxHistory: maxHistory,
	}
}

func (s *MemoryStore) Append(ctx context.Context, sessionID string, turns ...models.Turn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.sessions[sessionID]
	for _, t := range turns {
		t.Seq = s.nextSeq[sessionID]
		s.nextSeq[sessionID]++
		history = append(history, t)
	}
	if s.maxHistory > 0 && len(history) > s.maxHistory {
		history = history[len(history)-s.maxHistory:]
	}
	s.sessions[sessionID] = history
	return nil
}

func (s *MemoryStore) History(ctx context.Context, sessionID string) ([]models.Turn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	history := s.sessions[sessionID]
	out := make([]models.Turn, len(history))
	copy(out, history)
	return out, nil
}

func (s *MemoryStore) TranscriptContains(ctx context.Context, sessionID, term string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return transcriptContains(s.sessions[sessionID], term), nil
}

func (s *MemoryStore) CurrentFocus(ctx context.Context, sessionID string) (models.Focus, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return models.DeriveFocus(s.sessions[sessionID]), nil
}

// Delete discards a session's transcript.
func (s *MemoryStore) Delete(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, sessionID)
	delete(s.nextSeq, sessionID)
}

// KeyedMutex serializes access per session: classify reads the focus
// and then appends, so only one call may be in flight per session.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *KeyedMutex) Lock(key string) {
	k.mu.Lock()
	l, ok := k.locks[key]
	if !ok {
		l = &sync.Mutex{}
		k.locks[key] = l
	}
	k.mu.Unlock()
	l.Lock()
}

func (k *KeyedMutex) Unlock(key string) {
	k.mu.Lock()
	l := k.locks[key]
	k.mu.Unlock()
	if l != nil {
		l.Unlock()
	}
}
