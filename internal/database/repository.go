package database

import (
	"context"

	"github.com/restful-booker/messaging/internal/cache"
	"github.com/restful-booker/messaging/internal/config"
	"github.com/restful-booker/messaging/internal/repository"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// NewMessageRepository builds the message store shared by every binary. With redis
// enabled the store is wrapped so that all writers invalidate the same unread count.
func NewMessageRepository(lc fx.Lifecycle, cfg *config.Config, db *gorm.DB,
	logger *zap.Logger) (repository.MessageRepository, error) {
	repo := repository.NewMessageRepository(db)
	if !cfg.Redis.Enable {
		return repo, nil
	}

	client, err := cache.NewClient(context.Background(), cfg.Redis, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return client.Close()
		},
	})

	return repository.NewCachedMessageRepository(repo, cache.NewCountCache(client, cfg.Redis), logger), nil
}
