package app

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/horizone-travel/hotel-booking-api/api"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	"github.com/stripe/stripe-go/v82"
)

// Stripe sends webhook payloads well under this, anything bigger is noise.
const maxWebhookBytes = 65536

func (app *Application) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CheckoutSessionRequest

	err := app.readJSON(w, r, &req)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	err = app.validator.Struct(req)
	if err != nil {
		app.failedValidationResponse(w, r, err)
		return
	}

	bookingId, err := uuid.Parse(req.BookingId)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid booking ID"))
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, domain.ErrBookingNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	hotel, err := app.hotelRepo.GetById(r.Context(), booking.HotelID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, domain.ErrHotelNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	if hotel.StripePriceID == "" {
		app.unprocessableEntityResponse(w, r, domain.ErrMissingPriceMapping)
		return
	}

	if booking.Nights() < 1 {
		app.unprocessableEntityResponse(w, r, domain.ErrInvalidStayDuration)
		return
	}

	// The booking stays PENDING here. Creating a session has no side
	// effects on booking state, so a user retrying checkout just gets a
	// fresh session.
	checkoutSession, err := app.paymentProvider.CreateCheckoutSession(r.Context(), booking, hotel)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := api.CheckoutSessionResponse{
		ClientSecret: checkoutSession.ClientSecret,
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

// StripeWebhookHandler receives signed payment notifications. Delivery is
// at-least-once and may be concurrent, so everything it does downstream
// must be idempotent. A non-2xx response makes Stripe redeliver.
func (app *Application) StripeWebhookHandler(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxWebhookBytes)

	payload, err := io.ReadAll(r.Body)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("failed to read webhook body"))
		return
	}

	event, err := app.paymentProvider.ConstructWebhookEvent(payload, r.Header.Get("Stripe-Signature"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("webhook signature verification failed"))
		return
	}

	switch event.Type {
	case stripe.EventTypeCheckoutSessionCompleted, stripe.EventTypeCheckoutSessionAsyncPaymentSucceeded:
	default:
		// Other event types share this endpoint; acknowledge and move on.
		w.WriteHeader(http.StatusOK)
		return
	}

	var checkoutSession stripe.CheckoutSession

	err = json.Unmarshal(event.Data.Raw, &checkoutSession)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("malformed event payload"))
		return
	}

	err = app.fulfillCheckout(r.Context(), checkoutSession.ID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrBookingNotFound):
			// Metadata points at a booking we don't have. Surface it, a
			// silent drop would hide a data integrity problem.
			app.notFoundResponseWithErr(w, r, domain.ErrBookingNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	w.WriteHeader(http.StatusOK)
}

// fulfillCheckout applies the payment result of a checkout session to its
// booking. Safe to run multiple times, even concurrently, with the same
// session ID: the PENDING to PAID transition is a single conditional store
// update, and a transition that already happened counts as success.
func (app *Application) fulfillCheckout(ctx context.Context, sessionId string) error {
	checkoutSession, err := app.paymentProvider.GetCheckoutSession(ctx, sessionId)
	if err != nil {
		return fmt.Errorf("retrieving checkout session %s: %w", sessionId, err)
	}

	bookingId, err := uuid.Parse(checkoutSession.Metadata["bookingId"])
	if err != nil {
		return fmt.Errorf("session %s has no usable bookingId metadata: %w", sessionId, domain.ErrBookingNotFound)
	}

	if checkoutSession.PaymentStatus == stripe.CheckoutSessionPaymentStatusUnpaid {
		// Not paid yet. Acknowledge; Stripe notifies again once the async
		// payment settles.
		return nil
	}

	applied, err := app.bookingRepo.MarkPaid(ctx, bookingId)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return fmt.Errorf("session %s: %w", sessionId, domain.ErrBookingNotFound)
		}

		return err
	}

	if !applied {
		app.logger.Info("booking already fulfilled", "bookingId", bookingId, "sessionId", sessionId)
		return nil
	}

	app.fulfillments.Add(ctx, 1)
	app.logger.Info("booking fulfilled", "bookingId", bookingId, "sessionId", sessionId)

	// Receipt mail is best effort and gated on applied, so duplicate
	// deliveries never produce duplicate mail.
	app.background(func() {
		app.sendPaymentConfirmation(bookingId)
	})

	return nil
}

func (app *Application) sendPaymentConfirmation(bookingId uuid.UUID) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	booking, err := app.bookingRepo.GetById(ctx, bookingId)
	if err != nil {
		app.logger.Error("failed to load booking for confirmation mail", "bookingId", bookingId, "error", err)
		return
	}

	hotel, err := app.hotelRepo.GetById(ctx, booking.HotelID)
	if err != nil {
		app.logger.Error("failed to load hotel for confirmation mail", "bookingId", bookingId, "error", err)
		return
	}

	user, err := app.userRepo.GetById(ctx, booking.UserID)
	if err != nil {
		app.logger.Error("failed to load user for confirmation mail", "bookingId", bookingId, "error", err)
		return
	}

	data := map[string]any{
		"Name":       user.Name,
		"HotelName":  hotel.Name,
		"CheckIn":    booking.CheckIn.Format("Jan 2, 2006"),
		"CheckOut":   booking.CheckOut.Format("Jan 2, 2006"),
		"RoomNumber": booking.RoomNumber,
		"Nights":     booking.Nights(),
		"BookingID":  booking.ID.String(),
	}

	err = app.mailer.Send(user.Email, "payment_confirmation.tmpl", data)
	if err != nil {
		app.logger.Error("failed to send confirmation mail", "bookingId", bookingId, "error", err)
	}
}

// GetSessionStatusHandler is the read side of payment reconciliation. It
// combines provider session state with the stored booking and never writes
// anything: the webhook handler owns the transition, and a completed
// provider payment with a still PENDING local status just means the
// webhook hasn't landed yet.
func (app *Application) GetSessionStatusHandler(w http.ResponseWriter, r *http.Request) {
	sessionId := r.URL.Query().Get("session_id")
	if sessionId == "" {
		app.badRequestResponse(w, r, fmt.Errorf("missing session_id query parameter"))
		return
	}

	checkoutSession, err := app.paymentProvider.GetCheckoutSession(r.Context(), sessionId)
	if err != nil {
		var stripeErr *stripe.Error
		if errors.As(err, &stripeErr) && stripeErr.Code == stripe.ErrorCodeResourceMissing {
			app.notFoundResponse(w, r)
			return
		}

		app.serverErrorResponse(w, r, err)
		return
	}

	bookingId, err := uuid.Parse(checkoutSession.Metadata["bookingId"])
	if err != nil {
		app.notFoundResponseWithErr(w, r, domain.ErrBookingNotFound)
		return
	}

	booking, err := app.bookingRepo.GetById(r.Context(), bookingId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, domain.ErrBookingNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	hotel, err := app.hotelRepo.GetById(r.Context(), booking.HotelID)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponseWithErr(w, r, domain.ErrHotelNotFound)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	var customerEmail *string
	if checkoutSession.CustomerDetails != nil && checkoutSession.CustomerDetails.Email != "" {
		customerEmail = &checkoutSession.CustomerDetails.Email
	}

	resp := api.SessionStatusResponse{
		BookingId:     booking.ID.String(),
		Booking:       toBookingResponse(booking),
		Hotel:         toHotelResponse(hotel),
		Status:        string(checkoutSession.Status),
		CustomerEmail: customerEmail,
		PaymentStatus: string(booking.PaymentStatus),
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
