package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "soundflow/internal/delivery/context"
	"soundflow/internal/delivery/http/response"
	domainerrors "soundflow/internal/domain/errors"
	mockUsecase "soundflow/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var resp response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestErrorMiddleware_HandleHTTPError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "wrapped app error",
			err:        errors.WithStack(domainerrors.ErrDuplicateUsername),
			wantStatus: http.StatusConflict,
			wantCode:   "DUPLICATE_USERNAME",
		},
		{
			name:       "database error",
			err:        domainerrors.NewDatabaseExecuteError(assert.AnError, "insert"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   "DATABASE_EXECUTE_FAILED",
		},
		{
			name:       "echo error",
			err:        echo.ErrNotFound,
			wantStatus: http.StatusNotFound,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "body limit",
			err:        echo.ErrStatusRequestEntityTooLarge,
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   "HTTP_ERROR",
		},
		{
			name:       "unknown error",
			err:        assert.AnError,
			wantStatus: http.StatusInternalServerError,
			wantCode:   "INTERNAL_ERROR",
		},
	}

	m := NewErrorMiddleware(discardLogger())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

			m.HandleHTTPError(tt.err, c)

			assert.Equal(t, tt.wantStatus, rec.Code)
			resp := decode(t, rec)
			assert.False(t, resp.Success)
			require.NotNil(t, resp.Error)
			assert.Equal(t, tt.wantCode, resp.Error.Code)
		})
	}
}

func TestErrorMiddleware_CommittedResponse(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, c.String(http.StatusOK, "partial"))

	NewErrorMiddleware(discardLogger()).HandleHTTPError(domainerrors.ErrStorageRead, c)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())
}

func TestAuthMiddleware_Authenticate(t *testing.T) {
	tests := []struct {
		name      string
		header    string
		setup     func(uc *mockUsecase.MockAuthUsecase)
		wantErr   error
		wantOwner string
	}{
		{
			name:   "bearer token",
			header: "Bearer tok",
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "tok").Return("alice", nil)
			},
			wantOwner: "alice",
		},
		{
			name:   "bare token",
			header: "tok",
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "tok").Return("alice", nil)
			},
			wantOwner: "alice",
		},
		{
			name:    "missing header",
			setup:   func(*mockUsecase.MockAuthUsecase) {},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:    "empty bearer",
			header:  "Bearer ",
			setup:   func(*mockUsecase.MockAuthUsecase) {},
			wantErr: domainerrors.ErrUnauthenticated,
		},
		{
			name:   "rejected token",
			header: "Bearer forged",
			setup: func(uc *mockUsecase.MockAuthUsecase) {
				uc.EXPECT().Authenticate(mock.Anything, "forged").Return("", domainerrors.ErrUnauthenticated)
			},
			wantErr: domainerrors.ErrUnauthenticated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := mockUsecase.NewMockAuthUsecase(t)
			tt.setup(uc)

			req := httptest.NewRequest(http.MethodGet, "/projects", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			c, _ := newContext(req)

			var owner string
			called := false
			err := NewAuthMiddleware(uc).Authenticate(func(c echo.Context) error {
				called = true
				owner, _ = deliverycontext.GetUsername(c)

				return nil
			})(c)

			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				assert.False(t, called)

				return
			}
			require.NoError(t, err)
			assert.True(t, called)
			assert.Equal(t, tt.wantOwner, owner)
		})
	}
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	m := NewRequestIDMiddleware(discardLogger())

	t.Run("reuses client id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(deliverycontext.HeaderXRequestID, "req-1")
		c, rec := newContext(req)

		err := m.Process(func(c echo.Context) error {
			assert.Equal(t, "req-1", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))

			return nil
		})(c)

		require.NoError(t, err)
		assert.Equal(t, "req-1", rec.Header().Get(deliverycontext.HeaderXRequestID))
	})

	t.Run("mints an id", func(t *testing.T) {
		c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

		require.NoError(t, m.Process(func(echo.Context) error { return nil })(c))

		assert.NotEmpty(t, rec.Header().Get(deliverycontext.HeaderXRequestID))
	})
}
