package database_test

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/restful-booker/messaging/internal/cache"
	"github.com/restful-booker/messaging/internal/config"
	"github.com/restful-booker/messaging/internal/database"
	"github.com/restful-booker/messaging/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	return db
}

func TestNewMessageRepository(t *testing.T) {
	t.Run("plain store without redis", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Redis: cache.Config{Enable: false}}

		repo, err := database.NewMessageRepository(lc, cfg, newTestDB(t), zap.NewNop())

		require.NoError(t, err)
		assert.IsType(t, &repository.Message{}, repo)
	})

	t.Run("fails when redis is enabled without an address", func(t *testing.T) {
		lc := fxtest.NewLifecycle(t)
		cfg := &config.Config{Redis: cache.Config{Enable: true}}

		repo, err := database.NewMessageRepository(lc, cfg, newTestDB(t), zap.NewNop())

		assert.Error(t, err)
		assert.Nil(t, repo)
	})
}
