package mocks

import (
	"context"

	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/stretchr/testify/mock"
	"github.com/stripe/stripe-go/v82"
)

type MockPaymentProvider struct {
	mock.Mock
	domain.PaymentProvider
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	booking *domain.Booking,
	hotel *domain.Hotel) (*stripe.CheckoutSession, error) {

	args := m.Called(ctx, booking, hotel)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) GetCheckoutSession(ctx context.Context, sessionId string) (*stripe.CheckoutSession, error) {
	args := m.Called(ctx, sessionId)
	return args.Get(0).(*stripe.CheckoutSession), args.Error(1)
}

func (m *MockPaymentProvider) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	args := m.Called(payload, signature)
	return args.Get(0).(stripe.Event), args.Error(1)
}
