package service_test

import (
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/restful-booker/messaging/internal/model"
	"github.com/restful-booker/messaging/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildBookingMessage(t *testing.T) {
	booking, err := model.NewBooking(
		"Mark",
		"Winteringham",
		true,
		time.Date(1990, time.February, 1, 0, 0, 0, 0, time.UTC),
		time.Date(1990, time.February, 2, 0, 0, 0, 0, time.UTC),
		"mark@mwtestconsultancy.co.uk",
		"01392123928",
	)
	require.NoError(t, err)

	message := service.BuildBookingMessage(booking)

	assert.Equal(t, model.Message{
		Name:        "Mark Winteringham",
		Email:       "mark@mwtestconsultancy.co.uk",
		Phone:       "01392123928",
		Subject:     "You have a new booking!",
		Description: "You have a new booking from Mark Winteringham. They have booked a room for the following dates: 1990-02-01 to 1990-02-02",
	}, message)
}

func TestBuildBookingMessage_GeneratedBookings(t *testing.T) {
	for i := 0; i < 50; i++ {
		checkin := gofakeit.Date()
		checkout := checkin.AddDate(0, 0, gofakeit.Number(0, 30))

		booking, err := model.NewBooking(gofakeit.FirstName(), gofakeit.LastName(), gofakeit.Bool(),
			checkin, checkout, gofakeit.Email(), gofakeit.Phone())
		require.NoError(t, err)

		message := service.BuildBookingMessage(booking)
		name := booking.Firstname + " " + booking.Lastname

		assert.Equal(t, name, message.Name)
		assert.Equal(t, booking.Email, message.Email)
		assert.Equal(t, booking.Phone, message.Phone)
		assert.Equal(t, service.BookingSubject, message.Subject)
		assert.Contains(t, message.Description, name)
		assert.Contains(t, message.Description, checkin.Format("2006-01-02"))
		assert.Contains(t, message.Description, checkout.Format("2006-01-02"))
		assert.Zero(t, message.ID)
		assert.False(t, message.Read)
	}
}
