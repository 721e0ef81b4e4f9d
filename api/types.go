// Package api holds the request and response types of the public REST
// surface. Dates cross the wire in date-only form (YYYY-MM-DD).
package api

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/shopspring/decimal"
)

type ErrorResponse struct {
	Message   string    `json:"message"`
	RequestId string    `json:"requestId,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

type ValidationIssue struct {
	Field string `json:"field"`
	Issue string `json:"issue"`
}

type ValidationErrorResponse struct {
	Message          string            `json:"message"`
	ValidationErrors []ValidationIssue `json:"validationErrors"`
	RequestId        string            `json:"requestId,omitempty"`
	Timestamp        time.Time         `json:"timestamp"`
}

type SystemInfo struct {
	Version     string `json:"version"`
	Environment string `json:"environment"`
}

type HealthcheckResponse struct {
	Status     string     `json:"status"`
	SystemInfo SystemInfo `json:"systemInfo"`
}

type CreateUserRequest struct {
	Name     string `json:"name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UserResponse struct {
	Id        int       `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"createdAt"`
}

type CreateHotelRequest struct {
	Name          string          `json:"name" validate:"required,max=200"`
	Location      string          `json:"location" validate:"required,max=200"`
	Description   string          `json:"description" validate:"required"`
	Image         string          `json:"image" validate:"required,url"`
	Price         decimal.Decimal `json:"price" validate:"required"`
	StripePriceId string          `json:"stripePriceId,omitempty"`
}

type HotelResponse struct {
	Id          string           `json:"_id"`
	Name        string           `json:"name"`
	Location    string           `json:"location"`
	Description string           `json:"description"`
	Image       string           `json:"image"`
	Rating      *decimal.Decimal `json:"rating,omitempty"`
	Reviews     int              `json:"reviews"`
	Price       decimal.Decimal  `json:"price"`
}

type CreateBookingRequest struct {
	HotelId    string             `json:"hotelId" validate:"required,uuid"`
	CheckIn    openapi_types.Date `json:"checkIn" validate:"required"`
	CheckOut   openapi_types.Date `json:"checkOut" validate:"required"`
	RoomNumber int                `json:"roomNumber" validate:"required,min=1"`
}

type BookingResponse struct {
	Id            string             `json:"_id"`
	HotelId       string             `json:"hotelId"`
	UserId        int                `json:"userId"`
	CheckIn       openapi_types.Date `json:"checkIn"`
	CheckOut      openapi_types.Date `json:"checkOut"`
	RoomNumber    int                `json:"roomNumber"`
	PaymentStatus string             `json:"paymentStatus"`
	PaymentMethod string             `json:"paymentMethod"`
}

type CheckoutSessionRequest struct {
	BookingId string `json:"bookingId" validate:"required,uuid"`
}

type CheckoutSessionResponse struct {
	ClientSecret string `json:"clientSecret"`
}

type SessionStatusResponse struct {
	BookingId     string          `json:"bookingId"`
	Booking       BookingResponse `json:"booking"`
	Hotel         HotelResponse   `json:"hotel"`
	Status        string          `json:"status"`
	CustomerEmail *string         `json:"customer_email,omitempty"`
	PaymentStatus string          `json:"paymentStatus"`
}
