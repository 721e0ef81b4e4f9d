package domain

import "errors"

var (
	ErrRecordNotFound      = errors.New("record not found")
	ErrUserAlreadyExists   = errors.New("user already exists")
	ErrHotelNotFound       = errors.New("hotel not found")
	ErrBookingNotFound     = errors.New("booking not found")
	ErrMissingPriceMapping = errors.New("hotel has no price mapping for checkout")
	ErrInvalidStayDuration = errors.New("booking dates do not cover at least one night")
)
