package domain

import (
	"context"

	"github.com/stripe/stripe-go/v82"
)

// PaymentProvider abstracts the external payment service. The webhook
// handler and the checkout handlers depend on this interface so tests can
// substitute a double for the real Stripe client.
type PaymentProvider interface {
	CreateCheckoutSession(ctx context.Context, booking *Booking, hotel *Hotel) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionId string) (*stripe.CheckoutSession, error)
	ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error)
}
