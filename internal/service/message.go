package service

import (
	"context"
	"errors"

	"github.com/restful-booker/messaging/internal/model"
	"github.com/restful-booker/messaging/internal/repository"
	"github.com/restful-booker/messaging/pkg/authgateway"
	"go.uber.org/zap"
)

type MessageService interface {
	GetMessages(ctx context.Context) (model.Messages, error)
	GetCount(ctx context.Context) (model.Count, error)
	GetSpecificMessage(ctx context.Context, id int64) (MessageResult, error)
	CreateMessage(ctx context.Context, message model.Message) (model.Message, error)
	DeleteMessage(ctx context.Context, id int64, token string) (MessageResult, error)
	MarkAsRead(ctx context.Context, id int64, token string) (Status, error)
}

type message struct {
	messageRepo repository.MessageRepository
	auth        authgateway.AuthGateway
	logger      *zap.Logger
}

func NewMessageService(messageRepo repository.MessageRepository, auth authgateway.AuthGateway,
	logger *zap.Logger) MessageService {
	return &message{messageRepo: messageRepo, auth: auth, logger: logger}
}

func (m *message) GetMessages(ctx context.Context) (model.Messages, error) {
	summaries, err := m.messageRepo.List(ctx)
	if err != nil {
		m.logger.Error("Failed to list messages", zap.Error(err))
		return model.Messages{}, err
	}

	return model.Messages{Messages: summaries}, nil
}

func (m *message) GetCount(ctx context.Context) (model.Count, error) {
	count, err := m.messageRepo.UnreadCount(ctx)
	if err != nil {
		m.logger.Error("Failed to count unread messages", zap.Error(err))
		return model.Count{}, err
	}

	return model.Count{Count: count}, nil
}

func (m *message) GetSpecificMessage(ctx context.Context, id int64) (MessageResult, error) {
	msg, err := m.messageRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrMessageNotFound) {
		return MessageResult{Status: StatusNotFound}, nil
	}

	if err != nil {
		m.logger.Error("Failed to get message", zap.Int64("messageID", id), zap.Error(err))
		return MessageResult{}, err
	}

	return MessageResult{Message: msg, Status: StatusOK}, nil
}

// CreateMessage stores message as given; field validation belongs to the caller.
func (m *message) CreateMessage(ctx context.Context, message model.Message) (model.Message, error) {
	if err := m.messageRepo.Create(ctx, &message); err != nil {
		m.logger.Error("Failed to create message", zap.String("subject", message.Subject), zap.Error(err))
		return model.Message{}, err
	}

	m.logger.Info("Message created", zap.Int64("messageID", message.ID))

	return message, nil
}

func (m *message) DeleteMessage(ctx context.Context, id int64, token string) (MessageResult, error) {
	ok, err := m.authorize(ctx, token)
	if err != nil {
		return MessageResult{}, err
	}

	if !ok {
		m.logger.Warn("Rejected message delete", zap.Int64("messageID", id))
		return MessageResult{Status: StatusForbidden}, nil
	}

	deleted, err := m.messageRepo.DeleteByID(ctx, id)
	if err != nil {
		m.logger.Error("Failed to delete message", zap.Int64("messageID", id), zap.Error(err))
		return MessageResult{}, err
	}

	if !deleted {
		return MessageResult{Status: StatusNotFound}, nil
	}

	m.logger.Info("Message deleted", zap.Int64("messageID", id))

	return MessageResult{Status: StatusAccepted}, nil
}

func (m *message) MarkAsRead(ctx context.Context, id int64, token string) (Status, error) {
	ok, err := m.authorize(ctx, token)
	if err != nil {
		return 0, err
	}

	if !ok {
		m.logger.Warn("Rejected mark as read", zap.Int64("messageID", id))
		return StatusForbidden, nil
	}

	if err := m.messageRepo.MarkRead(ctx, id); err != nil {
		m.logger.Error("Failed to mark message as read", zap.Int64("messageID", id), zap.Error(err))
		return 0, err
	}

	return StatusAccepted, nil
}

func (m *message) authorize(ctx context.Context, token string) (bool, error) {
	ok, err := m.auth.CheckAuth(ctx, token)
	if err != nil {
		m.logger.Error("Auth check failed", zap.Error(err))
		return false, err
	}

	return ok, nil
}
