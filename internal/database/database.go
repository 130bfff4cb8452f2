package database

import (
	"context"

	"github.com/restful-booker/messaging/internal/config"
	"github.com/restful-booker/messaging/internal/model"
	"github.com/restful-booker/messaging/pkg/mysql"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func NewConnection(lc fx.Lifecycle, cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := mysql.NewConnection(context.Background(), cfg.Database, logger)
	if err != nil {
		return nil, err
	}

	if cfg.API.AutoMigrate {
		if err := Migrate(db); err != nil {
			logger.Error("Failed to migrate schema", zap.Error(err))
			return nil, err
		}
	}

	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		},
	})

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Message{})
}
