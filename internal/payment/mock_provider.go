package payment

import (
	"context"
	"fmt"
	"sync"

	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

// MockPaymentProvider is an in-memory stand-in for Stripe. Webhook
// signature verification is real (same secret scheme as production), only
// the session lifecycle is simulated.
type MockPaymentProvider struct {
	webhookSecret string

	mu       sync.Mutex
	sessions map[string]*stripe.CheckoutSession
}

func NewMockPaymentProvider(webhookSecret string) *MockPaymentProvider {
	return &MockPaymentProvider{
		webhookSecret: webhookSecret,
		sessions:      make(map[string]*stripe.CheckoutSession),
	}
}

func (m *MockPaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	booking *domain.Booking,
	hotel *domain.Hotel) (*stripe.CheckoutSession, error) {

	m.mu.Lock()
	defer m.mu.Unlock()

	session := &stripe.CheckoutSession{
		ID:            fmt.Sprintf("cs_test_%s", booking.ID),
		ClientSecret:  fmt.Sprintf("cs_test_%s_secret", booking.ID),
		Status:        stripe.CheckoutSessionStatusOpen,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid,
		Metadata: map[string]string{
			"bookingId": booking.ID.String(),
		},
	}

	m.sessions[session.ID] = session

	return session, nil
}

func (m *MockPaymentProvider) GetCheckoutSession(ctx context.Context, sessionId string) (*stripe.CheckoutSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionId]
	if !ok {
		return nil, &stripe.Error{
			Code: stripe.ErrorCodeResourceMissing,
			Msg:  fmt.Sprintf("no such checkout session: %s", sessionId),
		}
	}

	copied := *session

	return &copied, nil
}

func (m *MockPaymentProvider) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, m.webhookSecret)
}

// CompletePayment simulates the customer paying on the provider side.
func (m *MockPaymentProvider) CompletePayment(sessionId string, email string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[sessionId]
	if !ok {
		return
	}

	session.Status = stripe.CheckoutSessionStatusComplete
	session.PaymentStatus = stripe.CheckoutSessionPaymentStatusPaid
	session.CustomerDetails = &stripe.CheckoutSessionCustomerDetails{Email: email}
}
