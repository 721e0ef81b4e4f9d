package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/horizone-travel/hotel-booking-api/api"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// CreateBookingHandler creates a booking in PENDING state. Payment state
// only changes later, through the Stripe webhook.
func (app *Application) CreateBookingHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CreateBookingRequest

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

	hotelId, err := uuid.Parse(req.HotelId)
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid hotel ID"))
		return
	}

	booking := domain.Booking{
		HotelID:    hotelId,
		UserID:     app.contextGetUserId(r),
		CheckIn:    req.CheckIn.Time,
		CheckOut:   req.CheckOut.Time,
		RoomNumber: req.RoomNumber,
	}

	err = app.bookingRepo.Create(r.Context(), &booking)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrHotelNotFound):
			app.notFoundResponseWithErr(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toBookingResponse(&booking), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsHandler(w http.ResponseWriter, r *http.Request) {
	bookings, err := app.bookingRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponses(bookings), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetBookingsByHotelHandler(w http.ResponseWriter, r *http.Request) {
	hotelId, err := uuid.Parse(chi.URLParam(r, "hotelId"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid hotel ID"))
		return
	}

	bookings, err := app.bookingRepo.GetByHotelId(r.Context(), hotelId)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusOK, toBookingResponses(bookings), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toBookingResponse(booking *domain.Booking) api.BookingResponse {
	return api.BookingResponse{
		Id:            booking.ID.String(),
		HotelId:       booking.HotelID.String(),
		UserId:        booking.UserID,
		CheckIn:       openapi_types.Date{Time: booking.CheckIn},
		CheckOut:      openapi_types.Date{Time: booking.CheckOut},
		RoomNumber:    booking.RoomNumber,
		PaymentStatus: string(booking.PaymentStatus),
		PaymentMethod: string(booking.PaymentMethod),
	}
}

func toBookingResponses(bookings []domain.Booking) []api.BookingResponse {
	resp := make([]api.BookingResponse, 0, len(bookings))
	for i := range bookings {
		resp = append(resp, toBookingResponse(&bookings[i]))
	}

	return resp
}
