package repository_test

import (
	"context"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/restful-booker/messaging/internal/model"
	"github.com/restful-booker/messaging/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(&model.Message{}))

	return db
}

func seed(t *testing.T, repo repository.MessageRepository, names ...string) []model.Message {
	t.Helper()

	messages := make([]model.Message, 0, len(names))
	for _, name := range names {
		msg := model.Message{
			Name:        name,
			Email:       name + "@example.com",
			Phone:       "01392123928",
			Subject:     "Subject from " + name,
			Description: "Description from " + name,
		}
		require.NoError(t, repo.Create(context.Background(), &msg))
		messages = append(messages, msg)
	}

	return messages
}

func TestMessage_Create(t *testing.T) {
	repo := repository.NewMessageRepository(newTestDB(t))

	msg := model.Message{
		Name:        "Mark",
		Email:       "test@email.com",
		Phone:       "0189271231",
		Subject:     "Test Subject",
		Description: "Test Description",
	}

	err := repo.Create(context.Background(), &msg)

	require.NoError(t, err)
	assert.NotZero(t, msg.ID)

	stored, err := repo.GetByID(context.Background(), msg.ID)
	require.NoError(t, err)
	assert.Equal(t, msg.Name, stored.Name)
	assert.Equal(t, msg.Email, stored.Email)
	assert.Equal(t, msg.Phone, stored.Phone)
	assert.Equal(t, msg.Subject, stored.Subject)
	assert.Equal(t, msg.Description, stored.Description)
	assert.False(t, stored.Read)
}

func TestMessage_GetByID_NotFound(t *testing.T) {
	repo := repository.NewMessageRepository(newTestDB(t))

	msg, err := repo.GetByID(context.Background(), 42)

	assert.Nil(t, msg)
	assert.ErrorIs(t, err, repository.ErrMessageNotFound)
}

func TestMessage_List(t *testing.T) {
	repo := repository.NewMessageRepository(newTestDB(t))

	t.Run("returns empty list", func(t *testing.T) {
		summaries, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("returns summaries ordered by id", func(t *testing.T) {
		seeded := seed(t, repo, "Mark", "Richard")

		summaries, err := repo.List(context.Background())

		require.NoError(t, err)
		assert.Equal(t, []model.MessageSummary{
			{ID: seeded[0].ID, Name: "Mark", Subject: "Subject from Mark"},
			{ID: seeded[1].ID, Name: "Richard", Subject: "Subject from Richard"},
		}, summaries)
	})
}

func TestMessage_UnreadCountAndMarkRead(t *testing.T) {
	repo := repository.NewMessageRepository(newTestDB(t))
	seeded := seed(t, repo, "Mark", "Richard", "Alan")

	count, err := repo.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	require.NoError(t, repo.MarkRead(context.Background(), seeded[1].ID))

	count, err = repo.UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	stored, err := repo.GetByID(context.Background(), seeded[1].ID)
	require.NoError(t, err)
	assert.True(t, stored.Read)

	// marking an unknown id is not an error
	assert.NoError(t, repo.MarkRead(context.Background(), 999))
}

func TestMessage_DeleteByID(t *testing.T) {
	repo := repository.NewMessageRepository(newTestDB(t))
	seeded := seed(t, repo, "Mark")

	deleted, err := repo.DeleteByID(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteByID(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.GetByID(context.Background(), seeded[0].ID)
	assert.ErrorIs(t, err, repository.ErrMessageNotFound)
}
