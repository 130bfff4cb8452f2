package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type AuthGateway struct {
	mock.Mock
}

func (m *AuthGateway) CheckAuth(ctx context.Context, token string) (bool, error) {
	args := m.Called(ctx, token)
	return args.Bool(0), args.Error(1)
}
