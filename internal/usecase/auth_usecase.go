// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"io"

	"soundflow/internal/domain/entity"
)

// --- Input DTOs ---

// ImageUpload is an image stream received from a client.
type ImageUpload struct {
	ContentType string
	Reader      io.Reader
}

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Username     string
	FirstName    string
	LastName     string
	Password     string
	ProfileImage *ImageUpload
}

// LoginInput defines the data required to log in.
type LoginInput struct {
	Username string
	Password string
}

// ChangePasswordInput defines the data required to replace a password.
type ChangePasswordInput struct {
	Username    string
	Password    string
	NewPassword string
}

// --- Output DTOs ---

// AuthOutput carries the account's token and profile after register or login.
type AuthOutput struct {
	Token string
	User  *entity.User
}

// AuthUsecase defines account registration, login and credential management.
type AuthUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*AuthOutput, error)
	Login(ctx context.Context, input *LoginInput) (*AuthOutput, error)
	ChangePassword(ctx context.Context, input *ChangePasswordInput) error
	ListUsers(ctx context.Context) ([]*entity.User, error)

	// WipeAll deletes every auth token and user. Projects and stored images are kept.
	WipeAll(ctx context.Context) error

	// Authenticate resolves a bearer token to the username it was issued to.
	Authenticate(ctx context.Context, token string) (string, error)
}
