package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/horizone-travel/hotel-booking-api/api"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
)

func (app *Application) GetHotelsHandler(w http.ResponseWriter, r *http.Request) {
	hotels, err := app.hotelRepo.GetAll(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	resp := make([]api.HotelResponse, 0, len(hotels))
	for i := range hotels {
		resp = append(resp, toHotelResponse(&hotels[i]))
	}

	err = app.writeJSON(w, http.StatusOK, resp, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) GetHotelHandler(w http.ResponseWriter, r *http.Request) {
	hotelId, err := uuid.Parse(chi.URLParam(r, "hotelId"))
	if err != nil {
		app.badRequestResponse(w, r, fmt.Errorf("invalid hotel ID"))
		return
	}

	hotel, err := app.hotelRepo.GetById(r.Context(), hotelId)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.notFoundResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusOK, toHotelResponse(hotel), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) CreateHotelHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CreateHotelRequest

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

	hotel := domain.Hotel{
		Name:          req.Name,
		Location:      req.Location,
		Description:   req.Description,
		Image:         req.Image,
		Price:         req.Price,
		StripePriceID: req.StripePriceId,
	}

	err = app.hotelRepo.Create(r.Context(), &hotel)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.writeJSON(w, http.StatusCreated, toHotelResponse(&hotel), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func toHotelResponse(hotel *domain.Hotel) api.HotelResponse {
	return api.HotelResponse{
		Id:          hotel.ID.String(),
		Name:        hotel.Name,
		Location:    hotel.Location,
		Description: hotel.Description,
		Image:       hotel.Image,
		Rating:      hotel.Rating,
		Reviews:     hotel.Reviews,
		Price:       hotel.Price,
	}
}
