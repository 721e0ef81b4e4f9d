package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockBookingRepo struct {
	mock.Mock
	domain.BookingRepository
}

func (m *MockBookingRepo) Create(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) GetByHotelId(ctx context.Context, hotelId uuid.UUID) ([]domain.Booking, error) {
	args := m.Called(ctx, hotelId)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func (m *MockBookingRepo) MarkPaid(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
