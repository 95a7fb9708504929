package handler

import (
	"net/http"

	"soundflow/config"
	"soundflow/internal/delivery/http/response"
	"soundflow/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type registerPayload struct {
	Username  string `json:"username" validate:"required,max=255"`
	FirstName string `json:"firstName" validate:"required,max=255"`
	LastName  string `json:"lastName" validate:"required,max=255"`
	Password  string `json:"password" validate:"required"`
}

type loginPayload struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type changePasswordPayload struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// UserHandler holds dependencies for account handlers.
type UserHandler struct {
	uc     usecase.AuthUsecase
	urls   urlBuilder
	limits uploadLimits
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AuthUsecase, cfg *config.Config) *UserHandler {
	return &UserHandler{
		uc:     uc,
		urls:   newURLBuilder(cfg),
		limits: newUploadLimits(cfg),
	}
}

// Info describes the users endpoint.
func (h *UserHandler) Info(c echo.Context) error {
	return c.String(http.StatusOK, "An API endpoint to create users")
}

// Create registers an account from a multipart body with a profileImage file and a JSON data field.
func (h *UserHandler) Create(c echo.Context) error {
	upload, err := readMultipart(c, "profileImage", h.limits)
	if err != nil {
		return err
	}
	defer upload.Close()

	var payload registerPayload
	if err := upload.decodeData(c, &payload); err != nil {
		return err
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Username:     payload.Username,
		FirstName:    payload.FirstName,
		LastName:     payload.LastName,
		Password:     payload.Password,
		ProfileImage: upload.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.urls.authView(c, output.Token, output.User), "New user created")
}

// Login handles the login request.
func (h *UserHandler) Login(c echo.Context) error {
	var payload loginPayload
	if err := bindAndValidate(c, &payload); err != nil {
		return err
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Username: payload.Username,
		Password: payload.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.urls.authView(c, output.Token, output.User), "User login successful")
}

// UpdatePassword handles the password change request.
func (h *UserHandler) UpdatePassword(c echo.Context) error {
	var payload changePasswordPayload
	if err := bindAndValidate(c, &payload); err != nil {
		return err
	}

	err := h.uc.ChangePassword(c.Request().Context(), &usecase.ChangePasswordInput{
		Username:    payload.Username,
		Password:    payload.Password,
		NewPassword: payload.NewPassword,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusCreated, "Password updated")
}

// List returns every account's public profile.
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]userView, 0, len(users))
	for _, user := range users {
		views = append(views, h.urls.userView(c, user))
	}

	return response.Success(c, http.StatusOK, views, "Fetched all users")
}

// DeleteAll wipes every account and token.
func (h *UserHandler) DeleteAll(c echo.Context) error {
	if err := h.uc.WipeAll(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Message(c, http.StatusOK, "All records deleted")
}
