package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"github.com/stripe/stripe-go/v82/webhook"
)

const callTimeout = 15 * time.Second

type StripePaymentProvider struct {
	returnUrl     string
	webhookSecret string
}

func NewStripePaymentProvider(returnUrl, webhookSecret string) *StripePaymentProvider {
	return &StripePaymentProvider{
		returnUrl:     returnUrl,
		webhookSecret: webhookSecret,
	}
}

// CreateCheckoutSession opens an embedded checkout session billing one
// line item of the hotel's price plan, one unit per night. The bookingId
// lands in the session metadata so the webhook can find the booking later
// without depending on provider-side ordering.
func (s *StripePaymentProvider) CreateCheckoutSession(
	ctx context.Context,
	booking *domain.Booking,
	hotel *domain.Hotel) (*stripe.CheckoutSession, error) {

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
		UIMode: stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(hotel.StripePriceID),
				Quantity: stripe.Int64(int64(booking.Nights())),
			},
		},
		Mode:      stripe.String(string(stripe.CheckoutSessionModePayment)),
		ReturnURL: stripe.String(fmt.Sprintf("%s/booking/complete?session_id={CHECKOUT_SESSION_ID}", s.returnUrl)),
		Metadata: map[string]string{
			"bookingId": booking.ID.String(),
		},
	}

	return session.New(params)
}

func (s *StripePaymentProvider) GetCheckoutSession(ctx context.Context, sessionId string) (*stripe.CheckoutSession, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	params := &stripe.CheckoutSessionParams{
		Params: stripe.Params{Context: ctx},
	}

	return session.Get(sessionId, params)
}

func (s *StripePaymentProvider) ConstructWebhookEvent(payload []byte, signature string) (stripe.Event, error) {
	return webhook.ConstructEvent(payload, signature, s.webhookSecret)
}
