// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	stderrors "errors"
	"log/slog"
	"strings"
	"time"

	deliverycontext "soundflow/internal/delivery/context"
	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/domain/repository"
	"soundflow/internal/domain/service"
	"soundflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	tokenRepo    repository.AuthTokenRepository
	hasher       service.CredentialHasher
	tokenService service.TokenService
	blobStore    service.BlobStore
	publisher    service.EventPublisher
	logger       *slog.Logger
	now          func() time.Time
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	TokenRepo    repository.AuthTokenRepository
	Hasher       service.CredentialHasher
	TokenService service.TokenService
	BlobStore    service.BlobStore
	Publisher    service.EventPublisher
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		tokenRepo:    params.TokenRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		blobStore:    params.BlobStore,
		publisher:    params.Publisher,
		logger:       params.Logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates an account: uniqueness check, image upload, then user and token rows in one transaction.
// The uploaded image is not removed if a later step fails.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	if err := validateCredentials(input.Username, input.Password); err != nil {
		return nil, err
	}
	if err := validateProfile(input.FirstName, input.LastName); err != nil {
		return nil, err
	}
	if input.ProfileImage == nil || input.ProfileImage.Reader == nil {
		return nil, domainerrors.ErrUploadRejected.WrapMessage("profile image is required")
	}

	srv.log(ctx).Info("Starting registration", slog.String("username", input.Username))

	_, err := srv.userRepo.FindByUsername(ctx, input.Username)
	switch {
	case err == nil:
		return nil, domainerrors.ErrDuplicateUsername.WrapMessage("username " + input.Username)
	case !errors.Is(err, repository.ErrUserNotFound):
		return nil, errors.Wrap(err, "failed to check username")
	}

	imageRef, err := srv.blobStore.Upload(ctx, entity.BucketProfileImages, input.Username,
		input.ProfileImage.ContentType, input.ProfileImage.Reader)
	if err != nil {
		return nil, err
	}

	salt, err := srv.hasher.NewSalt()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate salt")
	}

	token, err := srv.tokenService.Issue(input.Username)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue auth token")
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate user id")
	}
	tokenID, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token id")
	}

	now := srv.now()
	user := &entity.User{
		ID:              userID,
		Username:        input.Username,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		PasswordSalt:    salt,
		PasswordHash:    srv.hasher.DeriveHash(input.Password, salt),
		ProfileImageRef: imageRef,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	authToken := &entity.AuthToken{
		ID:        tokenID,
		Username:  input.Username,
		Token:     token,
		CreatedAt: now,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.UserRepo().Create(ctx, user); err != nil {
			return err
		}

		return repoFactory.AuthTokenRepo().Create(ctx, authToken)
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed after image upload",
			slog.String("username", input.Username),
			slog.String("image_ref", imageRef),
			slog.Any("error", err),
		)

		return nil, err
	}

	srv.log(ctx).Info("User registered", slog.String("username", user.Username))
	srv.publish(ctx, service.EventUserRegistered, user.Username, "")

	return &usecase.AuthOutput{Token: token, User: user}, nil
}

// Login verifies the password and returns the token issued at registration.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	user, err := srv.verifyCredentials(ctx, input.Username, input.Password)
	if err != nil {
		return nil, err
	}

	authToken, err := srv.tokenRepo.FindByUsername(ctx, user.Username)
	if err != nil {
		if errors.Is(err, repository.ErrAuthTokenNotFound) {
			srv.log(ctx).Error("Account has no auth token", slog.String("username", user.Username))

			return nil, domainerrors.ErrTokenMissing.WrapMessage("no token for " + user.Username)
		}

		return nil, errors.Wrap(err, "failed to find auth token")
	}

	return &usecase.AuthOutput{Token: authToken.Token, User: user}, nil
}

// ChangePassword replaces salt and hash after verifying the current password. Tokens are not rotated.
func (srv *authService) ChangePassword(ctx context.Context, input *usecase.ChangePasswordInput) error {
	if isBlank(input.NewPassword) {
		return domainerrors.ErrValidationFailed.WrapMessage("new password is required")
	}

	user, err := srv.verifyCredentials(ctx, input.Username, input.Password)
	if err != nil {
		return err
	}

	salt, err := srv.hasher.NewSalt()
	if err != nil {
		return errors.Wrap(err, "failed to generate salt")
	}

	err = srv.userRepo.UpdateCredentials(ctx, user.Username, salt, srv.hasher.DeriveHash(input.NewPassword, salt))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage(user.Username)
		}

		return err
	}

	srv.log(ctx).Info("Password changed", slog.String("username", user.Username))
	srv.publish(ctx, service.EventUserPasswordChanged, user.Username, "")

	return nil
}

func (srv *authService) ListUsers(ctx context.Context) ([]*entity.User, error) {
	users, err := srv.userRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return users, nil
}

// WipeAll deletes tokens first, then users. Both deletes run even if the first fails.
func (srv *authService) WipeAll(ctx context.Context) error {
	tokenErr := srv.tokenRepo.DeleteAll(ctx)
	if tokenErr != nil {
		srv.log(ctx).Error("Failed to delete auth tokens", slog.Any("error", tokenErr))
	}

	userErr := srv.userRepo.DeleteAll(ctx)
	if userErr != nil {
		srv.log(ctx).Error("Failed to delete users", slog.Any("error", userErr))
	}

	if err := stderrors.Join(tokenErr, userErr); err != nil {
		return err
	}

	srv.log(ctx).Warn("All account records deleted")
	srv.publish(ctx, service.EventRecordsWiped, "", "")

	return nil
}

// Authenticate accepts a token only if its signature is valid and it is the token stored for its subject.
func (srv *authService) Authenticate(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", domainerrors.ErrUnauthenticated.WrapMessage("token is missing")
	}

	username, err := srv.tokenService.Parse(token)
	if err != nil {
		return "", errors.Wrap(domainerrors.ErrUnauthenticated, err.Error())
	}

	stored, err := srv.tokenRepo.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, repository.ErrAuthTokenNotFound) {
			return "", domainerrors.ErrUnauthenticated.WrapMessage("token is not active")
		}

		return "", errors.Wrap(err, "failed to look up auth token")
	}
	if stored.Username != username {
		return "", domainerrors.ErrUnauthenticated.WrapMessage("token subject mismatch")
	}

	return username, nil
}

func (srv *authService) verifyCredentials(ctx context.Context, username, password string) (*entity.User, error) {
	if err := validateCredentials(username, password); err != nil {
		return nil, err
	}

	user, err := srv.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage(username)
		}

		return nil, errors.Wrap(err, "failed to find user")
	}

	if !srv.hasher.Verify(password, user.PasswordSalt, user.PasswordHash) {
		srv.log(ctx).Info("Password mismatch", slog.String("username", username))

		return nil, domainerrors.ErrInvalidCredentials
	}

	return user, nil
}

func (srv *authService) publish(ctx context.Context, eventType, username, projectID string) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MediaEvent{
		Type:       eventType,
		Username:   username,
		ProjectID:  projectID,
		OccurredAt: srv.now().UTC(),
	})
}

func validateCredentials(username, password string) error {
	if isBlank(username) {
		return domainerrors.ErrValidationFailed.WrapMessage("username is required")
	}
	if isBlank(password) {
		return domainerrors.ErrValidationFailed.WrapMessage("password is required")
	}

	return nil
}

func validateProfile(firstName, lastName string) error {
	if isBlank(firstName) {
		return domainerrors.ErrValidationFailed.WrapMessage("firstName is required")
	}
	if isBlank(lastName) {
		return domainerrors.ErrValidationFailed.WrapMessage("lastName is required")
	}

	return nil
}

// isBlank treats whitespace-only input as missing.
func isBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}
