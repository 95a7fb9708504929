package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"soundflow/config"
	"soundflow/internal/delivery/http/middleware"
	"soundflow/internal/delivery/http/response"
	"soundflow/internal/delivery/http/validator"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{
		Upload: &config.UploadConfig{MaxFileSize: 64, MaxFiles: 1, MaxFields: 1},
	}
	cfg.HTTP.PublicBaseURL = "https://soundflow.test/"

	return cfg
}

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))).HandleHTTPError

	return e
}

type filePart struct {
	field       string
	contentType string
	content     []byte
}

type multipartBody struct {
	files  []filePart
	fields map[string]string
}

func (b multipartBody) encode(t *testing.T) (*bytes.Buffer, string) {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	for name, value := range b.fields {
		require.NoError(t, w.WriteField(name, value))
	}
	for _, f := range b.files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition", `form-data; name="`+f.field+`"; filename="upload.png"`)
		header.Set("Content-Type", f.contentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	return buf, w.FormDataContentType()
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	return rec
}

func jsonRequest(t *testing.T, method, target string, body any) *http.Request {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(payload))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func multipartRequest(t *testing.T, target string, body multipartBody) *http.Request {
	t.Helper()

	buf, contentType := body.encode(t)
	req := httptest.NewRequest(http.MethodPost, target, buf)
	req.Header.Set(echo.HeaderContentType, contentType)

	return req
}

// decodeResponse unmarshals the envelope and re-decodes Data into data when non-nil.
func decodeResponse(t *testing.T, rec *httptest.ResponseRecorder, data any) response.Response {
	t.Helper()

	var envelope struct {
		response.Response
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	if data != nil {
		require.NoError(t, json.Unmarshal(envelope.Data, data))
	}

	return envelope.Response
}
