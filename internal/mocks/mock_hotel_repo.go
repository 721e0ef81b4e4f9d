package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockHotelRepo struct {
	mock.Mock
	domain.HotelRepository
}

func (m *MockHotelRepo) Create(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepo) GetById(ctx context.Context, id uuid.UUID) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(*domain.Hotel), args.Error(1)
}

func (m *MockHotelRepo) GetAll(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}
