package domain

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
)

type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusPaid    PaymentStatus = "PAID"
)

type PaymentMethod string

const (
	PaymentMethodCard         PaymentMethod = "CARD"
	PaymentMethodBankTransfer PaymentMethod = "BANK_TRANSFER"
)

type Booking struct {
	ID            uuid.UUID
	HotelID       uuid.UUID
	UserID        int
	CheckIn       time.Time
	CheckOut      time.Time
	RoomNumber    int
	PaymentStatus PaymentStatus
	PaymentMethod PaymentMethod
	CreatedAt     time.Time
}

// Nights returns the number of nights to bill for the stay. Partial days
// round up, so a stay shorter than 24 hours still bills one night.
func (b Booking) Nights() int {
	hours := b.CheckOut.Sub(b.CheckIn).Hours()

	return int(math.Ceil(hours / 24))
}

type BookingRepository interface {
	Create(ctx context.Context, booking *Booking) error
	GetById(ctx context.Context, id uuid.UUID) (*Booking, error)
	GetAll(ctx context.Context) ([]Booking, error)
	GetByHotelId(ctx context.Context, hotelId uuid.UUID) ([]Booking, error)

	// MarkPaid moves the booking from PENDING to PAID as a single
	// conditional update. It reports whether this call performed the
	// transition: false with a nil error means the booking was already
	// PAID, which callers treat as success. Webhook deliveries are
	// at-least-once and may run concurrently, so implementations must not
	// read the status first and write separately.
	MarkPaid(ctx context.Context, id uuid.UUID) (bool, error)
}
