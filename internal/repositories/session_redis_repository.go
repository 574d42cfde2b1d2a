package repositories

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"youngeru/internal/quiz"
	"youngeru/pkg/utils"
)

const sessionKeyPrefix = "youngeru:quiz:session:"

// RedisSessionStore keeps wizard snapshots as JSON values with a sliding TTL.
type RedisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) *RedisSessionStore {
	return &RedisSessionStore{client: client, ttl: ttl}
}

func (s *RedisSessionStore) Save(ctx context.Context, id string, snap quiz.Snapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	return s.client.Set(ctx, sessionKeyPrefix+id, data, s.ttl).Err()
}

func (s *RedisSessionStore) Load(ctx context.Context, id string) (quiz.Snapshot, error) {
	data, err := s.client.Get(ctx, sessionKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return quiz.Snapshot{}, utils.ErrSessionNotFound
	}
	if err != nil {
		return quiz.Snapshot{}, fmt.Errorf("load session: %w", err)
	}

	var snap quiz.Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return quiz.Snapshot{}, fmt.Errorf("decode session: %w", err)
	}
	return snap, nil
}

func (s *RedisSessionStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, sessionKeyPrefix+id).Err()
}

func (s *RedisSessionStore) Close() error {
	return s.client.Close()
}
