package service

type BookingDates struct {
	Checkin  string `json:"checkin" validate:"required,datetime=2006-01-02"`
	Checkout string `json:"checkout" validate:"required,datetime=2006-01-02"`
}

type BookingCreatedCommand struct {
	Firstname    string       `json:"firstname" validate:"required"`
	Lastname     string       `json:"lastname" validate:"required"`
	DepositPaid  bool         `json:"depositpaid"`
	BookingDates BookingDates `json:"bookingdates"`
	Email        string       `json:"email" validate:"omitempty,email"`
	Phone        string       `json:"phone" validate:"omitempty,phone"`
}
