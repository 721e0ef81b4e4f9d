package domain

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Hotel struct {
	ID            uuid.UUID
	Name          string
	Location      string
	Description   string
	Image         string
	Rating        *decimal.Decimal
	Reviews       int
	Price         decimal.Decimal
	StripePriceID string
	CreatedAt     time.Time
}

type HotelRepository interface {
	Create(ctx context.Context, hotel *Hotel) error
	GetById(ctx context.Context, id uuid.UUID) (*Hotel, error)
	GetAll(ctx context.Context) ([]Hotel, error)
}
