package mocks

import (
	"context"

	"github.com/restful-booker/messaging/internal/model"
	"github.com/stretchr/testify/mock"
)

type MessageRepository struct {
	mock.Mock
}

func (m *MessageRepository) List(ctx context.Context) ([]model.MessageSummary, error) {
	args := m.Called(ctx)
	summaries, _ := args.Get(0).([]model.MessageSummary)
	return summaries, args.Error(1)
}

func (m *MessageRepository) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MessageRepository) GetByID(ctx context.Context, id int64) (*model.Message, error) {
	args := m.Called(ctx, id)
	message, _ := args.Get(0).(*model.Message)
	return message, args.Error(1)
}

func (m *MessageRepository) Create(ctx context.Context, message *model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MessageRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MessageRepository) MarkRead(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
