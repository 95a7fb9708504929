package handler

import (
	domainerrors "soundflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

func bindAndValidate(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails("request body could not be parsed")
	}

	return c.Validate(dst)
}
