package handler

import (
	"context"
	"net/http"
	"strconv"

	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ImageHandler streams stored images.
type ImageHandler struct {
	uc usecase.MediaUsecase
}

// NewImageHandler is the constructor for ImageHandler.
func NewImageHandler(uc usecase.MediaUsecase) *ImageHandler {
	return &ImageHandler{uc: uc}
}

// ProfileImage streams a profile image.
func (h *ImageHandler) ProfileImage(c echo.Context) error {
	return h.stream(c, h.uc.OpenProfileImage)
}

// ProjectImage streams a project cover image.
func (h *ImageHandler) ProjectImage(c echo.Context) error {
	return h.stream(c, h.uc.OpenProjectImage)
}

func (h *ImageHandler) stream(c echo.Context, open func(context.Context, string) (*entity.BlobObject, error)) error {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		return domainerrors.ErrInvalidBlobID.WithDetails(id)
	}

	obj, err := open(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}
	defer obj.Reader.Close()

	contentType := obj.ContentType
	if contentType == "" {
		contentType = echo.MIMEOctetStream
	}
	if obj.Size > 0 {
		c.Response().Header().Set(echo.HeaderContentLength, strconv.FormatInt(obj.Size, 10))
	}

	return c.Stream(http.StatusOK, contentType, obj.Reader)
}
