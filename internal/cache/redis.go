package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Config struct {
	Enable   bool          `mapstructure:"enable"`
	Addr     string        `mapstructure:"addr"`
	Password string        `mapstructure:"password"`
	DB       int           `mapstructure:"db"`
	TTL      time.Duration `mapstructure:"ttl"`
}

func NewClient(ctx context.Context, cfg Config, logger *zap.Logger) (*redis.Client, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("invalid redis addr: %q", cfg.Addr)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		logger.Error("Redis ping failed", zap.Error(err), zap.String("addr", cfg.Addr))
		return nil, fmt.Errorf("unexpected error while pinging redis: %w", err)
	}

	logger.Info("Redis connection established successfully", zap.String("addr", cfg.Addr))

	return client, nil
}
