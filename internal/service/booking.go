package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/restful-booker/messaging/internal/model"
	"go.uber.org/zap"
)

var ErrInvalidBooking = errors.New("INVALID_BOOKING")

type BookingService interface {
	NotifyBooking(ctx context.Context, cmd BookingCreatedCommand) (model.Message, error)
}

// MessageCreator is the write side of the message store that booking intake needs.
type MessageCreator interface {
	Create(ctx context.Context, message *model.Message) error
}

type booking struct {
	messages MessageCreator
	logger   *zap.Logger
}

func NewBookingService(messages MessageCreator, logger *zap.Logger) BookingService {
	return &booking{messages: messages, logger: logger}
}

// NotifyBooking stores the host notification for a newly created booking.
func (b *booking) NotifyBooking(ctx context.Context, cmd BookingCreatedCommand) (model.Message, error) {
	bk, err := toBooking(cmd)
	if err != nil {
		b.logger.Warn("Invalid booking", zap.Error(err), zap.String("lastname", cmd.Lastname))
		return model.Message{}, err
	}

	message := BuildBookingMessage(bk)
	if err := b.messages.Create(ctx, &message); err != nil {
		b.logger.Error("Failed to store booking notification", zap.Error(err))
		return model.Message{}, err
	}

	b.logger.Info("Booking notification stored",
		zap.Int64("messageID", message.ID),
		zap.String("checkin", cmd.BookingDates.Checkin),
		zap.String("checkout", cmd.BookingDates.Checkout))

	return message, nil
}

func toBooking(cmd BookingCreatedCommand) (model.Booking, error) {
	checkin, err := time.Parse(bookingDateLayout, cmd.BookingDates.Checkin)
	if err != nil {
		return model.Booking{}, fmt.Errorf("%w: checkin: %v", ErrInvalidBooking, err)
	}

	checkout, err := time.Parse(bookingDateLayout, cmd.BookingDates.Checkout)
	if err != nil {
		return model.Booking{}, fmt.Errorf("%w: checkout: %v", ErrInvalidBooking, err)
	}

	bk, err := model.NewBooking(cmd.Firstname, cmd.Lastname, cmd.DepositPaid, checkin, checkout, cmd.Email, cmd.Phone)
	if err != nil {
		return model.Booking{}, fmt.Errorf("%w: %w", ErrInvalidBooking, err)
	}

	return bk, nil
}
