// internal/session/redis_store.go
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vaibhavisingh876/SwarSaathi/internal/models"
)

// RedisStore keeps one JSON record per session key so transcripts
// survive process restarts and are shared across worker instances.
// The record TTL is refreshed on every append.
type RedisStore struct {
	client     *redis.Client
	keyPrefix  string
	ttl        time.Duration
	maxHistory int
}

type sessionRecord struct {
	NextSeq int           `json:"nextSeq"`
	Turns   []models.Turn `json:"turns"`
}

func NewRedisStore(client *redis.Client, keyPrefix string, ttl time.Duration, maxHistory int) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "session:"
	}
	return &RedisStore{
		client:     client,
		keyPrefix:  keyPrefix,
		ttl:        ttl,
		maxHistory: maxHistory,
	}
}

func (s *RedisStore) key(sessionID string) string {
	return s.keyPrefix + sessionID
}

func (s *RedisStore) load(ctx context.Context, sessionID string) (*sessionRecord, error) {
	raw, err := s.client.Get(ctx, s.key(sessionID)).Result()
	if err == redis.Nil {
		return &sessionRecord{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("session read failed: %w", err)
	}

	var rec sessionRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, fmt.Errorf("session record corrupt: %w", err)
	}
	return &rec, nil
}

func (s *RedisStore) Append(ctx context.Context, sessionID string, turns ...models.Turn) error {
	rec, err := s.load(ctx, sessionID)
	if err != nil {
		return err
	}

	for _, t := range turns {
		t.Seq = rec.NextSeq
		rec.NextSeq++
		rec.Turns = append(rec.Turns, t)
	}
	if s.maxHistory > 0 && len(rec.Turns) > s.maxHistory {
		rec.Turns = rec.Turns[len(rec.Turns)-s.maxHistory:]
	}

	raw, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("session record marshal failed: %w", err)
	}

	if err := s.client.Set(ctx, s.key(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("session write failed: %w", err)
	}
	return nil
}

func (s *RedisStore) History(ctx context.Context, sessionID string) ([]models.Turn, error) {
	rec, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return rec.Turns, nil
}

func (s *RedisStore) TranscriptContains(ctx context.Context, sessionID, term string) (bool, error) {
	rec, err := s.load(ctx, sessionID)
	if err != nil {
		return false, err
	}
	return transcriptContains(rec.Turns, term), nil
}

func (s *RedisStore) CurrentFocus(ctx context.Context, sessionID string) (models.Focus, error) {
	rec, err := s.load(ctx, sessionID)
	if err != nil {
		return models.FocusNone, err
	}
	return models.DeriveFocus(rec.Turns), nil
}

// Delete discards a session's transcript.
func (s *RedisStore) Delete(ctx context.Context, sessionID string) error {
	return s.client.Del(ctx, s.key(sessionID)).Err()
}
