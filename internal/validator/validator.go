package validator

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/horizone-travel/hotel-booking-api/api"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterStructValidation(validateBookingDates, api.CreateBookingRequest{})

	return validator
}

// validateBookingDates enforces checkIn < checkOut. Equal dates would bill
// zero nights, which is rejected here rather than at checkout time.
func validateBookingDates(sl validator.StructLevel) {
	req := sl.Current().Interface().(api.CreateBookingRequest)

	if req.CheckIn.Time.IsZero() || req.CheckOut.Time.IsZero() {
		return
	}

	if !req.CheckIn.Time.Before(req.CheckOut.Time) {
		sl.ReportError(req.CheckOut, "checkOut", "CheckOut", "stay_range", "")
	}
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s", err.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", err.Param())
	case "url":
		return "must be a valid URL"
	case "uuid":
		return "must be a valid identifier"
	case "stay_range":
		return "check-out date must be after the check-in date"
	default:
		return "is invalid"
	}
}
