package handler

import (
	"net/http"

	"soundflow/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// Welcome is the landing text.
func Welcome(c echo.Context) error {
	return c.String(http.StatusOK, "Welcome to SoundFlow, a music web app player")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
