package mocks

import (
	"context"

	"github.com/restful-booker/messaging/internal/model"
	"github.com/restful-booker/messaging/internal/service"
	"github.com/stretchr/testify/mock"
)

type BookingService struct {
	mock.Mock
}

func (m *BookingService) NotifyBooking(ctx context.Context, cmd service.BookingCreatedCommand) (model.Message, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(model.Message), args.Error(1)
}
