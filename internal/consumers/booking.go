package consumers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/restful-booker/messaging/internal/api/validator"
	"github.com/restful-booker/messaging/internal/metrics"
	"github.com/restful-booker/messaging/internal/service"
	"github.com/restful-booker/messaging/pkg/mq"
	"go.uber.org/zap"
)

const (
	BookingCreatedQueue = "booking.created"
	sourceBooking       = "booking"
)

var ErrInvalidBookingEvent = errors.New("INVALID_BOOKING_EVENT")

type BookingConsumer interface {
	Consume(ctx context.Context) error
}

type bookingConsumer struct {
	service   service.BookingService
	consumer  mq.Consumer
	validator validator.IXValidator
	metrics   *metrics.Metrics
	prefetch  int
	logger    *zap.Logger
}

func NewBookingConsumer(service service.BookingService, consumer mq.Consumer, validator validator.IXValidator,
	metrics *metrics.Metrics, prefetch int, logger *zap.Logger) BookingConsumer {
	return &bookingConsumer{
		service:   service,
		consumer:  consumer,
		validator: validator,
		metrics:   metrics,
		prefetch:  prefetch,
		logger:    logger,
	}
}

func (b *bookingConsumer) Consume(ctx context.Context) error {
	return b.consumer.Consume(ctx, b.prefetch, BookingCreatedQueue, b.handleMessage)
}

func (b *bookingConsumer) handleMessage(ctx context.Context, body []byte) error {
	b.logger.Debug("received booking event", zap.ByteString("body", body))

	var cmd service.BookingCreatedCommand
	if err := json.Unmarshal(body, &cmd); err != nil {
		b.logger.Warn("invalid booking event", zap.Error(err))
		b.metrics.RecordBookingEvent("invalid")
		return fmt.Errorf("%w: %v", ErrInvalidBookingEvent, err)
	}

	if errs := b.validator.Validate(cmd); len(errs) > 0 {
		b.logger.Warn("booking event failed validation", zap.Any("errors", errs))
		b.metrics.RecordBookingEvent("invalid")
		return ErrInvalidBookingEvent
	}

	message, err := b.service.NotifyBooking(ctx, cmd)
	if errors.Is(err, service.ErrInvalidBooking) {
		b.metrics.RecordBookingEvent("invalid")
		return err
	}

	if err != nil {
		b.logger.Error("failed to store booking notification", zap.Error(err))
		b.metrics.RecordBookingEvent("failed")
		return mq.Temporary(err)
	}

	b.metrics.RecordBookingEvent("stored")
	b.metrics.RecordMessageCreated(sourceBooking)
	b.logger.Info("booking notification created", zap.Int64("messageID", message.ID))

	return nil
}
