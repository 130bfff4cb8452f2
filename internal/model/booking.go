package model

import (
	"errors"
	"time"
)

var ErrInvalidBookingDates = errors.New("INVALID_BOOKING_DATES")

type Booking struct {
	Firstname   string
	Lastname    string
	DepositPaid bool
	Checkin     time.Time
	Checkout    time.Time
	Email       string
	Phone       string
}

// NewBooking returns a booking whose checkout does not precede its checkin.
func NewBooking(firstname, lastname string, depositPaid bool, checkin, checkout time.Time,
	email, phone string) (Booking, error) {
	if checkout.Before(checkin) {
		return Booking{}, ErrInvalidBookingDates
	}

	return Booking{
		Firstname:   firstname,
		Lastname:    lastname,
		DepositPaid: depositPaid,
		Checkin:     checkin,
		Checkout:    checkout,
		Email:       email,
		Phone:       phone,
	}, nil
}
