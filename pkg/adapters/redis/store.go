// Package redis provides a ports.OutcomeStore backed by Redis, for sharing
// the outcome cache between server instances.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/aretw0/spindle/pkg/machine"
	"github.com/aretw0/spindle/pkg/ports"
	backend "github.com/redis/go-redis/v9"
)

// Store implements ports.OutcomeStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

type Option func(*Store)

// WithTTL sets the expiration for cached outcomes.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) {
		s.ttl = ttl
	}
}

// WithPrefix sets the key prefix for cached outcomes.
func WithPrefix(prefix string) Option {
	return func(s *Store) {
		s.prefix = prefix
	}
}

// New creates a new Redis store with options.
func New(address, password string, db int, opts ...Option) *Store {
	rdb := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(rdb, opts...)
}

// NewFromClient creates a new Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "spindle:outcome:",
		ttl:    0, // No expiration by default
	}

	for _, opt := range opts {
		opt(store)
	}

	return store
}

func (s *Store) key(cacheKey string) string {
	return s.prefix + cacheKey
}

func (s *Store) indexKey() string {
	return s.prefix + "index"
}

// Save persists the outcome to Redis.
func (s *Store) Save(ctx context.Context, cacheKey string, outcome *machine.Outcome) error {
	data, err := json.Marshal(outcome)
	if err != nil {
		return fmt.Errorf("failed to marshal outcome: %w", err)
	}

	pipe := s.client.Pipeline()

	pipe.Set(ctx, s.key(cacheKey), data, s.ttl)

	// Index entry scored by expiry so List can prune lazily.
	score := float64(time.Now().Add(s.ttl).Unix())
	if s.ttl == 0 {
		score = 4102444800 // 2100-01-01, effectively "never"
	}
	pipe.ZAdd(ctx, s.indexKey(), backend.Z{
		Score:  score,
		Member: cacheKey,
	})

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	return nil
}

// Load retrieves the outcome from Redis.
func (s *Store) Load(ctx context.Context, cacheKey string) (*machine.Outcome, error) {
	val, err := s.client.Get(ctx, s.key(cacheKey)).Result()
	if err != nil {
		if err == backend.Nil {
			return nil, ports.ErrOutcomeNotFound
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var outcome machine.Outcome
	if err := json.Unmarshal([]byte(val), &outcome); err != nil {
		return nil, fmt.Errorf("failed to unmarshal outcome: %w", err)
	}

	return &outcome, nil
}

// Delete removes the cached outcome.
func (s *Store) Delete(ctx context.Context, cacheKey string) error {
	pipe := s.client.Pipeline()

	pipe.Del(ctx, s.key(cacheKey))
	pipe.ZRem(ctx, s.indexKey(), cacheKey)

	_, err := pipe.Exec(ctx)
	return err
}

// List returns the cached keys, pruning expired index entries first.
func (s *Store) List(ctx context.Context) ([]string, error) {
	now := float64(time.Now().Unix())

	// Lazy cleanup: expired keys have an index score in the past.
	if err := s.client.ZRemRangeByScore(ctx, s.indexKey(), "-inf", fmt.Sprintf("%f", now)).Err(); err != nil {
		return nil, fmt.Errorf("failed to prune expired outcomes: %w", err)
	}

	keys, err := s.client.ZRange(ctx, s.indexKey(), 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list outcomes: %w", err)
	}

	return keys, nil
}

// Close closes the redis client.
func (s *Store) Close() error {
	return s.client.Close()
}
