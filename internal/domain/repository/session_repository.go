package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"devfolio/internal/common"

	"github.com/patrickmn/go-cache"
	"github.com/redis/go-redis/v9"
)

// SessionRepository binds opaque cookie tokens to user ids. Entries expire
// on their own after the configured TTL; Get on an expired or unknown token
// returns ErrNotFound.
type SessionRepository interface {
	Create(ctx context.Context, token string, userID int, ttl time.Duration) error
	Get(ctx context.Context, token string) (int, error)
	Delete(ctx context.Context, token string) error
}

const sessionKeyPrefix = "session:"

type redisSessionRepository struct {
	rdb *redis.Client
}

// NewRedisSessionRepository backs sessions with redis, leaning on its
// native key TTL for expiry.
func NewRedisSessionRepository(rdb *redis.Client) SessionRepository {
	return &redisSessionRepository{rdb: rdb}
}

func (r *redisSessionRepository) Create(ctx context.Context, token string, userID int, ttl time.Duration) error {
	if err := r.rdb.Set(ctx, sessionKeyPrefix+token, userID, ttl).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.Create: %w", err)
	}
	return nil
}

func (r *redisSessionRepository) Get(ctx context.Context, token string) (int, error) {
	userID, err := r.rdb.Get(ctx, sessionKeyPrefix+token).Int()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, common.ErrNotFound
		}
		return 0, fmt.Errorf("redisSessionRepository.Get: %w", err)
	}
	return userID, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, token string) error {
	if err := r.rdb.Del(ctx, sessionKeyPrefix+token).Err(); err != nil {
		return fmt.Errorf("redisSessionRepository.Delete: %w", err)
	}
	return nil
}

type cacheSessionRepository struct {
	sessions *cache.Cache
}

// NewCacheSessionRepository keeps sessions in an expiring in-process cache,
// pruned by the cache janitor. Pairs with the memory store.
func NewCacheSessionRepository() SessionRepository {
	return &cacheSessionRepository{sessions: cache.New(cache.NoExpiration, time.Hour)}
}

func (r *cacheSessionRepository) Create(_ context.Context, token string, userID int, ttl time.Duration) error {
	r.sessions.Set(token, userID, ttl)
	return nil
}

func (r *cacheSessionRepository) Get(_ context.Context, token string) (int, error) {
	value, found := r.sessions.Get(token)
	if !found {
		return 0, common.ErrNotFound
	}
	return value.(int), nil
}

func (r *cacheSessionRepository) Delete(_ context.Context, token string) error {
	r.sessions.Delete(token)
	return nil
}
