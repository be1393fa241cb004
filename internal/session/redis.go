package session

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
)

const (
	keyPrefix  = "turnera:selection:"
	DefaultTTL = 12 * time.Hour
)

type RedisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore conecta em url (redis://...) e confere com PING.
func NewRedisStore(ctx context.Context, url string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opts)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &RedisStore{client: client, ttl: ttl}, nil
}

func (s *RedisStore) Get(ctx context.Context, sid string) (uint, bool, error) {
	v, err := s.client.Get(ctx, keyPrefix+sid).Result()
	if errors.Is(err, redis.Nil) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	id, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		// valor corrompido: trata como sem seleção
		return 0, false, nil
	}
	return uint(id), true, nil
}

func (s *RedisStore) Set(ctx context.Context, sid string, id uint) error {
	return s.client.Set(ctx, keyPrefix+sid, strconv.FormatUint(uint64(id), 10), s.ttl).Err()
}

func (s *RedisStore) Clear(ctx context.Context, sid string) error {
	return s.client.Del(ctx, keyPrefix+sid).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ Store = (*RedisStore)(nil)
