package publishers

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/restful-booker/messaging/internal/model"
	"github.com/restful-booker/messaging/pkg/mq"
	"go.uber.org/zap"
)

const MessageCreatedQueue = "message.created"

type MessageCreatedEvent struct {
	EventID   string    `json:"event_id"`
	MessageID int64     `json:"messageid"`
	Name      string    `json:"name"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

type MessagePublisher interface {
	PublishCreated(ctx context.Context, message model.Message) error
}

type messagePublisher struct {
	publisher mq.Publisher
	logger    *zap.Logger
}

func NewMessagePublisher(publisher mq.Publisher, logger *zap.Logger) MessagePublisher {
	return &messagePublisher{publisher: publisher, logger: logger}
}

func (p *messagePublisher) PublishCreated(ctx context.Context, message model.Message) error {
	event := MessageCreatedEvent{
		EventID:   uuid.NewString(),
		MessageID: message.ID,
		Name:      message.Name,
		Subject:   message.Subject,
		CreatedAt: time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("encoding error: %w", err)
	}

	if err := p.publisher.Publish(ctx, "", MessageCreatedQueue, body); err != nil {
		p.logger.Error("Failed to publish message created event",
			zap.Error(err),
			zap.Int64("messageID", message.ID))
		return err
	}

	p.logger.Debug("Published message created event",
		zap.String("eventID", event.EventID),
		zap.Int64("messageID", message.ID))

	return nil
}

type nopMessagePublisher struct{}

// NewNopMessagePublisher returns a publisher that drops every event.
func NewNopMessagePublisher() MessagePublisher {
	return nopMessagePublisher{}
}

func (nopMessagePublisher) PublishCreated(context.Context, model.Message) error {
	return nil
}
