package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ThieuDV091002/hotel-management-system-sub002/internal/domain"
)

// RedisStore shares one session across several front-desk terminals. Keys are
// namespaced per terminal profile and expire with the refresh token.
type RedisStore struct {
	client    *redis.Client
	namespace string
	ttl       time.Duration
}

func NewRedisStore(url, password string, db int, namespace string, ttl time.Duration) (*RedisStore, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, err
	}
	if password != "" {
		opts.Password = password
	}
	opts.DB = db

	return &RedisStore{
		client:    redis.NewClient(opts),
		namespace: namespace,
		ttl:       ttl,
	}, nil
}

func (s *RedisStore) key(name string) string {
	return s.namespace + ":" + name
}

func (s *RedisStore) Set(ctx context.Context, tokens domain.TokenPair, user domain.UserProfile) error {
	raw, err := json.Marshal(user)
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(keyAccessToken), tokens.AccessToken, s.ttl)
	pipe.Set(ctx, s.key(keyRefreshToken), tokens.RefreshToken, s.ttl)
	pipe.Set(ctx, s.key(keyUser), string(raw), s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Get(ctx context.Context) (*domain.Session, error) {
	vals, err := s.client.MGet(ctx, s.key(keyAccessToken), s.key(keyRefreshToken), s.key(keyUser)).Result()
	if err != nil {
		return nil, err
	}
	return sessionFrom(asString(vals[0]), asString(vals[1]), asString(vals[2])), nil
}

func (s *RedisStore) UpdateTokens(ctx context.Context, accessToken, refreshToken string) error {
	existing, err := s.client.Get(ctx, s.key(keyRefreshToken)).Result()
	if errors.Is(err, redis.Nil) {
		return nil
	}
	if err != nil {
		return err
	}
	if refreshToken == "" {
		refreshToken = existing
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, s.key(keyAccessToken), accessToken, s.ttl)
	pipe.Set(ctx, s.key(keyRefreshToken), refreshToken, s.ttl)
	_, err = pipe.Exec(ctx)
	return err
}

func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, s.key(keyAccessToken), s.key(keyRefreshToken), s.key(keyUser)).Err()
}

func (s *RedisStore) SetGuestToken(ctx context.Context, key GuestKey, token string) error {
	return s.client.Set(ctx, s.key(key.String()), token, s.ttl).Err()
}

func (s *RedisStore) GuestToken(ctx context.Context, key GuestKey) (string, error) {
	val, err := s.client.Get(ctx, s.key(key.String())).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	return val, err
}

func (s *RedisStore) ClearGuestToken(ctx context.Context, key GuestKey) error {
	return s.client.Del(ctx, s.key(key.String())).Err()
}

func asString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}
