package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type CountCache struct {
	mock.Mock
}

func (m *CountCache) GetUnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *CountCache) SetUnreadCount(ctx context.Context, count int) error {
	args := m.Called(ctx, count)
	return args.Error(0)
}

func (m *CountCache) InvalidateUnreadCount(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
