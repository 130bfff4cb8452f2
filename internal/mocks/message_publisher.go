package mocks

import (
	"context"

	"github.com/restful-booker/messaging/internal/model"
	"github.com/stretchr/testify/mock"
)

type MessagePublisher struct {
	mock.Mock
}

func (m *MessagePublisher) PublishCreated(ctx context.Context, message model.Message) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
