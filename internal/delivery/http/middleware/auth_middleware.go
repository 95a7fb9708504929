package middleware

import (
	"strings"

	deliverycontext "soundflow/internal/delivery/context"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware rejects requests without an active auth token.
type AuthMiddleware struct {
	auth usecase.AuthUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(auth usecase.AuthUsecase) *AuthMiddleware {
	return &AuthMiddleware{auth: auth}
}

// Authenticate accepts the token bare or as "Bearer <token>" and stores the username on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := strings.TrimSpace(c.Request().Header.Get(echo.HeaderAuthorization))
		token = strings.TrimSpace(strings.TrimPrefix(token, bearerPrefix))
		if token == "" {
			return domainerrors.ErrUnauthenticated.WrapMessage("authorization header is missing")
		}

		username, err := m.auth.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetUsername(c, username)

		return next(c)
	}
}
