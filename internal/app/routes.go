package app

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/riandyrn/otelchi"
)

func (app *Application) Routes() http.Handler {
	r := chi.NewRouter()

	r.NotFound(app.notFoundResponse)

	r.Use(middleware.Logger)
	r.Use(middleware.RequestID)
	r.Use(otelchi.Middleware("hotel-booking-api", otelchi.WithChiRoutes(r)))
	r.Use(app.recoverPanic)
	r.Use(app.sessionManager.LoadAndSave)

	r.Get("/health", app.GetHealth)

	r.Post("/users", app.CreateUserHandler)
	r.Post("/auth/login", app.LoginHandler)
	r.Post("/auth/logout", app.LogoutHandler)

	r.Route("/hotels", func(r chi.Router) {
		r.Get("/", app.GetHotelsHandler)
		r.Get("/{hotelId}", app.GetHotelHandler)
		r.With(app.requireAuthentication).Post("/", app.CreateHotelHandler)
	})

	r.Route("/bookings", func(r chi.Router) {
		r.With(app.requireAuthentication).Post("/", app.CreateBookingHandler)
		r.Get("/", app.GetBookingsHandler)
		r.Get("/hotels/{hotelId}", app.GetBookingsByHotelHandler)
	})

	r.With(app.requireAuthentication).Route("/payments", func(r chi.Router) {
		r.Post("/create-checkout-session", app.CreateCheckoutSessionHandler)
		r.Get("/session-status", app.GetSessionStatusHandler)
	})

	// No session auth here: the webhook signature is the authentication.
	r.Post("/stripe/webhook", app.StripeWebhookHandler)

	return r
}
