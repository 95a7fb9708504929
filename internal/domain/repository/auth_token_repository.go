package repository

import (
	"context"
	"errors"

	"soundflow/internal/domain/entity"
)

// ErrAuthTokenNotFound is returned when no token row matches.
var ErrAuthTokenNotFound = errors.New("auth token not found")

// AuthTokenRepository stores the single token issued to each account.
type AuthTokenRepository interface {
	Create(ctx context.Context, token *entity.AuthToken) error
	FindByUsername(ctx context.Context, username string) (*entity.AuthToken, error)
	FindByToken(ctx context.Context, token string) (*entity.AuthToken, error)
	DeleteAll(ctx context.Context) error
}
