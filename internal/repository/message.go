package repository

import (
	"context"
	"errors"

	"github.com/restful-booker/messaging/internal/model"
	"gorm.io/gorm"
)

var ErrMessageNotFound = errors.New("MESSAGE_NOT_FOUND")

type MessageRepository interface {
	List(ctx context.Context) ([]model.MessageSummary, error)
	UnreadCount(ctx context.Context) (int, error)
	GetByID(ctx context.Context, id int64) (*model.Message, error)
	Create(ctx context.Context, message *model.Message) error
	DeleteByID(ctx context.Context, id int64) (bool, error)
	MarkRead(ctx context.Context, id int64) error
}

type Message struct {
	db *gorm.DB
}

func NewMessageRepository(db *gorm.DB) MessageRepository {
	return &Message{db: db}
}

func (m *Message) List(ctx context.Context) ([]model.MessageSummary, error) {
	summaries := make([]model.MessageSummary, 0)

	err := m.db.WithContext(ctx).
		Model(&model.Message{}).
		Select("id", "name", "subject").
		Order("id ASC").
		Find(&summaries).Error
	if err != nil {
		return nil, err
	}

	return summaries, nil
}

func (m *Message) UnreadCount(ctx context.Context) (int, error) {
	var count int64

	err := m.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("is_read = ?", false).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	return int(count), nil
}

func (m *Message) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	var message model.Message

	err := m.db.WithContext(ctx).Where("id = ?", id).First(&message).Error
	if err == nil {
		return &message, nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrMessageNotFound
	}

	return nil, err
}

func (m *Message) Create(ctx context.Context, message *model.Message) error {
	return m.db.WithContext(ctx).Create(message).Error
}

func (m *Message) DeleteByID(ctx context.Context, id int64) (bool, error) {
	result := m.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Message{})
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (m *Message) MarkRead(ctx context.Context, id int64) error {
	return m.db.WithContext(ctx).
		Model(&model.Message{}).
		Where("id = ?", id).
		Update("is_read", true).Error
}
