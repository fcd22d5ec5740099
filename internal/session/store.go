package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

var ErrSessionNotFound = errors.New("session not found")

// Store persists session records keyed by session ID.
type Store interface {
	Set(ctx context.Context, id string, rec *Record, ttl time.Duration) error
	Get(ctx context.Context, id string) (*Record, error)
	Delete(ctx context.Context, id string) error
}

type redisStore struct {
	client *redis.Client
}

// NewRedisStore returns a Store backed by redis. Records are stored as
// JSON under "session:{id}" with the session TTL.
func NewRedisStore(client *redis.Client) Store {
	return &redisStore{client: client}
}

func (s *redisStore) key(id string) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *redisStore) Set(ctx context.Context, id string, rec *Record, ttl time.Duration) error {
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, s.key(id), payload, ttl).Err()
}

func (s *redisStore) Get(ctx context.Context, id string) (*Record, error) {
	payload, err := s.client.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	var rec Record
	if err := json.Unmarshal(payload, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (s *redisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, s.key(id)).Err()
}

type memoryEntry struct {
	rec       Record
	expiresAt time.Time
}

type memoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryStore returns an in-process Store. Used when no REDIS_URL is
// configured, and by tests.
func NewMemoryStore() Store {
	return &memoryStore{entries: make(map[string]memoryEntry)}
}

func (s *memoryStore) Set(_ context.Context, id string, rec *Record, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[id] = memoryEntry{rec: *rec, expiresAt: time.Now().Add(ttl)}
	return nil
}

func (s *memoryStore) Get(_ context.Context, id string) (*Record, error) {
	s.mu.RLock()
	entry, ok := s.entries[id]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return nil, ErrSessionNotFound
	}

	rec := entry.rec
	return &rec, nil
}

func (s *memoryStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
	return nil
}
