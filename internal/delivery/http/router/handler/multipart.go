package handler

import (
	"encoding/json"
	"mime/multipart"

	"soundflow/config"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/usecase"
	"soundflow/internal/util"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const dataField = "data"

type uploadLimits struct {
	maxFileSize int64
	maxFiles    int
	maxFields   int
}

func newUploadLimits(cfg *config.Config) uploadLimits {
	if cfg.Upload == nil {
		return uploadLimits{}
	}

	return uploadLimits{
		maxFileSize: cfg.Upload.MaxFileSize,
		maxFiles:    cfg.Upload.MaxFiles,
		maxFields:   cfg.Upload.MaxFields,
	}
}

// multipartUpload is one image part plus the JSON "data" field. Close releases the spooled parts.
type multipartUpload struct {
	form  *multipart.Form
	file  multipart.File
	Image *usecase.ImageUpload
	data  string
}

func (u *multipartUpload) Close() {
	if u.file != nil {
		_ = u.file.Close()
	}
	if u.form != nil {
		_ = u.form.RemoveAll()
	}
}

// decodeData unmarshals the "data" field into dst and validates it.
func (u *multipartUpload) decodeData(c echo.Context, dst any) error {
	raw := u.data
	if raw == "" {
		raw = "{}"
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return domainerrors.ErrUploadRejected.WithDetails("data field is not valid JSON")
	}

	return c.Validate(dst)
}

// readMultipart enforces the file and field counts and the per-file size ceiling before anything is stored.
func readMultipart(c echo.Context, fileField string, limits uploadLimits) (*multipartUpload, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, domainerrors.ErrUploadRejected.WithDetails("expected a multipart/form-data body")
	}
	upload := &multipartUpload{form: form}

	if err := checkCounts(form, limits); err != nil {
		upload.Close()

		return nil, err
	}

	headers := form.File[fileField]
	if len(headers) == 0 {
		upload.Close()

		return nil, domainerrors.ErrUploadRejected.WithDetails("missing file field " + fileField)
	}
	header := headers[0]
	if limits.maxFileSize > 0 && header.Size > limits.maxFileSize {
		upload.Close()

		return nil, domainerrors.ErrUploadTooLarge.WithDetails("file exceeds " + util.FormatBytes(limits.maxFileSize))
	}

	file, err := header.Open()
	if err != nil {
		upload.Close()

		return nil, errors.Wrap(domainerrors.ErrUploadRejected, err.Error())
	}
	upload.file = file
	upload.Image = &usecase.ImageUpload{
		ContentType: header.Header.Get(echo.HeaderContentType),
		Reader:      file,
	}
	if values := form.Value[dataField]; len(values) > 0 {
		upload.data = values[0]
	}

	return upload, nil
}

func checkCounts(form *multipart.Form, limits uploadLimits) error {
	files := 0
	for _, headers := range form.File {
		files += len(headers)
	}
	if limits.maxFiles > 0 && files > limits.maxFiles {
		return domainerrors.ErrUploadRejected.WithDetails("too many files")
	}

	fields := 0
	for _, values := range form.Value {
		fields += len(values)
	}
	if limits.maxFields > 0 && fields > limits.maxFields {
		return domainerrors.ErrUploadRejected.WithDetails("too many fields")
	}

	return nil
}
