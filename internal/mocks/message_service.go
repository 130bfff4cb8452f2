package mocks

import (
	"context"

	"github.com/restful-booker/messaging/internal/model"
	"github.com/restful-booker/messaging/internal/service"
	"github.com/stretchr/testify/mock"
)

type MessageService struct {
	mock.Mock
}

func (m *MessageService) GetMessages(ctx context.Context) (model.Messages, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Messages), args.Error(1)
}

func (m *MessageService) GetCount(ctx context.Context) (model.Count, error) {
	args := m.Called(ctx)
	return args.Get(0).(model.Count), args.Error(1)
}

func (m *MessageService) GetSpecificMessage(ctx context.Context, id int64) (service.MessageResult, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(service.MessageResult), args.Error(1)
}

func (m *MessageService) CreateMessage(ctx context.Context, message model.Message) (model.Message, error) {
	args := m.Called(ctx, message)
	return args.Get(0).(model.Message), args.Error(1)
}

func (m *MessageService) DeleteMessage(ctx context.Context, id int64, token string) (service.MessageResult, error) {
	args := m.Called(ctx, id, token)
	return args.Get(0).(service.MessageResult), args.Error(1)
}

func (m *MessageService) MarkAsRead(ctx context.Context, id int64, token string) (service.Status, error) {
	args := m.Called(ctx, id, token)
	return args.Get(0).(service.Status), args.Error(1)
}
