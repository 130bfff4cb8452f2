package cache

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	unreadCountKey = "messages:unread_count"
	defaultTTL     = time.Minute
)

var ErrCacheMiss = errors.New("CACHE_MISS")

type CountCache interface {
	GetUnreadCount(ctx context.Context) (int, error)
	SetUnreadCount(ctx context.Context, count int) error
	InvalidateUnreadCount(ctx context.Context) error
}

type redisCountCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCountCache(client *redis.Client, cfg Config) CountCache {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = defaultTTL
	}

	return &redisCountCache{client: client, ttl: ttl}
}

func (r *redisCountCache) GetUnreadCount(ctx context.Context) (int, error) {
	value, err := r.client.Get(ctx, unreadCountKey).Result()
	if errors.Is(err, redis.Nil) {
		return 0, ErrCacheMiss
	}
	if err != nil {
		return 0, err
	}

	return strconv.Atoi(value)
}

func (r *redisCountCache) SetUnreadCount(ctx context.Context, count int) error {
	return r.client.Set(ctx, unreadCountKey, strconv.Itoa(count), r.ttl).Err()
}

func (r *redisCountCache) InvalidateUnreadCount(ctx context.Context) error {
	return r.client.Del(ctx, unreadCountKey).Err()
}
