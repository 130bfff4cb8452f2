package repository

import (
	"context"
	"errors"

	"github.com/restful-booker/messaging/internal/cache"
	"github.com/restful-booker/messaging/internal/model"
	"go.uber.org/zap"
)

// CachedMessage serves the unread count from a CountCache and drops the cached value
// whenever a write may have changed it. Cache failures fall back to the wrapped repository.
type CachedMessage struct {
	MessageRepository
	cache  cache.CountCache
	logger *zap.Logger
}

func NewCachedMessageRepository(next MessageRepository, countCache cache.CountCache, logger *zap.Logger) MessageRepository {
	return &CachedMessage{MessageRepository: next, cache: countCache, logger: logger}
}

func (c *CachedMessage) UnreadCount(ctx context.Context) (int, error) {
	count, err := c.cache.GetUnreadCount(ctx)
	if err == nil {
		return count, nil
	}

	if !errors.Is(err, cache.ErrCacheMiss) {
		c.logger.Warn("Failed to read unread count from cache", zap.Error(err))
	}

	count, err = c.MessageRepository.UnreadCount(ctx)
	if err != nil {
		return 0, err
	}

	if err := c.cache.SetUnreadCount(ctx, count); err != nil {
		c.logger.Warn("Failed to cache unread count", zap.Error(err))
	}

	return count, nil
}

func (c *CachedMessage) Create(ctx context.Context, message *model.Message) error {
	if err := c.MessageRepository.Create(ctx, message); err != nil {
		return err
	}

	c.invalidate(ctx)
	return nil
}

func (c *CachedMessage) DeleteByID(ctx context.Context, id int64) (bool, error) {
	deleted, err := c.MessageRepository.DeleteByID(ctx, id)
	if err != nil {
		return false, err
	}

	if deleted {
		c.invalidate(ctx)
	}

	return deleted, nil
}

func (c *CachedMessage) MarkRead(ctx context.Context, id int64) error {
	if err := c.MessageRepository.MarkRead(ctx, id); err != nil {
		return err
	}

	c.invalidate(ctx)
	return nil
}

func (c *CachedMessage) invalidate(ctx context.Context) {
	if err := c.cache.InvalidateUnreadCount(ctx); err != nil {
		c.logger.Warn("Failed to invalidate unread count cache", zap.Error(err))
	}
}
