package service

import (
	"fmt"

	"github.com/restful-booker/messaging/internal/model"
)

const (
	BookingSubject    = "You have a new booking!"
	bookingDateLayout = "2006-01-02"
)

// BuildBookingMessage derives the notification sent to the host for a new booking.
func BuildBookingMessage(booking model.Booking) model.Message {
	name := booking.Firstname + " " + booking.Lastname

	return model.Message{
		Name:    name,
		Email:   booking.Email,
		Phone:   booking.Phone,
		Subject: BookingSubject,
		Description: fmt.Sprintf(
			"You have a new booking from %s. They have booked a room for the following dates: %s to %s",
			name,
			booking.Checkin.Format(bookingDateLayout),
			booking.Checkout.Format(bookingDateLayout),
		),
	}
}
