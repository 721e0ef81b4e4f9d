package app

import (
	"errors"
	"net/http"

	"github.com/horizone-travel/hotel-booking-api/api"
	"github.com/horizone-travel/hotel-booking-api/internal/domain"
)

func (app *Application) CreateUserHandler(w http.ResponseWriter, r *http.Request) {
	var req api.CreateUserRequest

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

	user := domain.User{
		Name:  req.Name,
		Email: req.Email,
	}

	err = user.Password.Set(req.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	err = app.userRepo.Create(r.Context(), &user)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrUserAlreadyExists):
			app.unprocessableEntityResponse(w, r, err)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	err = app.writeJSON(w, http.StatusCreated, toUserResponse(&user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest

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

	user, err := app.userRepo.GetByEmail(r.Context(), req.Email)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrRecordNotFound):
			app.unauthorizedAccessResponse(w, r)
		default:
			app.serverErrorResponse(w, r, err)
		}

		return
	}

	matches, err := user.Password.Matches(req.Password)
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	if !matches {
		app.unauthorizedAccessResponse(w, r)
		return
	}

	err = app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	app.sessionManager.Put(r.Context(), SessionKeyUserId.String(), user.ID)

	err = app.writeJSON(w, http.StatusOK, toUserResponse(user), nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}

func (app *Application) LogoutHandler(w http.ResponseWriter, r *http.Request) {
	app.sessionManager.Remove(r.Context(), SessionKeyUserId.String())

	err := app.sessionManager.RenewToken(r.Context())
	if err != nil {
		app.serverErrorResponse(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toUserResponse(user *domain.User) api.UserResponse {
	return api.UserResponse{
		Id:        user.ID,
		Name:      user.Name,
		Email:     user.Email,
		CreatedAt: user.CreatedAt,
	}
}
