package impl

import (
	"context"
	"testing"
	"time"

	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/domain/repository"
	"soundflow/internal/infra/auth"
	mockRepo "soundflow/internal/mocks/repository"
	mockSvc "soundflow/internal/mocks/service"
	"soundflow/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountRows stands in for the users and auth_tokens tables. Whatever the service
// writes through the repository mocks is what later lookups read back.
type accountRows struct {
	user  *entity.User
	token *entity.AuthToken
}

func (rows *accountRows) findUser(_ context.Context, username string) (*entity.User, error) {
	if rows.user == nil || rows.user.Username != username {
		return nil, repository.ErrUserNotFound
	}
	found := *rows.user

	return &found, nil
}

func (rows *accountRows) findToken(_ context.Context, username string) (*entity.AuthToken, error) {
	if rows.token == nil || rows.token.Username != username {
		return nil, repository.ErrAuthTokenNotFound
	}
	found := *rows.token

	return &found, nil
}

// createRoundTripAuthService wires the real PBKDF2 hasher behind mocks that persist into rows.
func createRoundTripAuthService(t *testing.T, rows *accountRows) usecase.AuthUsecase {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokenRepo := mockRepo.NewMockAuthTokenRepository(t)
	tokenService := mockSvc.NewMockTokenService(t)
	blobStore := mockSvc.NewMockBlobStore(t)
	publisher := mockSvc.NewMockEventPublisher(t)

	userRepo.EXPECT().FindByUsername(mock.Anything, mock.Anything).RunAndReturn(rows.findUser)
	userRepo.EXPECT().
		UpdateCredentials(mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, username, salt, hash string) error {
			if rows.user == nil || rows.user.Username != username {
				return repository.ErrUserNotFound
			}
			rows.user.PasswordSalt = salt
			rows.user.PasswordHash = hash

			return nil
		}).
		Maybe()
	userRepo.EXPECT().DeleteAll(mock.Anything).RunAndReturn(func(context.Context) error {
		rows.user = nil

		return nil
	}).Maybe()
	tokenRepo.EXPECT().FindByUsername(mock.Anything, mock.Anything).RunAndReturn(rows.findToken).Maybe()
	tokenRepo.EXPECT().DeleteAll(mock.Anything).RunAndReturn(func(context.Context) error {
		rows.token = nil

		return nil
	}).Maybe()

	blobStore.EXPECT().
		Upload(mock.Anything, entity.BucketProfileImages, "alice", "image/png", mock.Anything).
		Return("img-ref", nil)
	tokenService.EXPECT().Issue("alice").Return("signed-token", nil)
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).Return(nil)

	txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)
			txTokenRepo := mockRepo.NewMockAuthTokenRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			factory.EXPECT().AuthTokenRepo().Return(txTokenRepo)
			txUserRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, user *entity.User) error {
				created := *user
				rows.user = &created

				return nil
			})
			txTokenRepo.EXPECT().Create(mock.Anything, mock.Anything).RunAndReturn(func(_ context.Context, token *entity.AuthToken) error {
				created := *token
				rows.token = &created

				return nil
			})

			return fn(factory)
		})

	srv := NewAuthService(AuthServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		TokenRepo:    tokenRepo,
		Hasher:       auth.NewPBKDF2HasherWithIterations(1),
		TokenService: tokenService,
		BlobStore:    blobStore,
		Publisher:    publisher,
		Logger:       newDiscardLogger(),
	})
	srv.(*authService).now = func() time.Time { return fixedNow }

	return srv
}

func TestAuthService_CredentialRoundTrip(t *testing.T) {
	tests := []struct {
		name          string
		afterRegister func(ctx context.Context, srv usecase.AuthUsecase) error
		loginPassword string
		expectedErr   error
	}{
		{
			name:          "login with the registration password",
			loginPassword: "s3cret",
		},
		{
			name:          "registration password with different case",
			loginPassword: "S3cret",
			expectedErr:   domainerrors.ErrInvalidCredentials,
		},
		{
			name: "login with the new password after a change",
			afterRegister: func(ctx context.Context, srv usecase.AuthUsecase) error {
				return srv.ChangePassword(ctx, &usecase.ChangePasswordInput{Username: "alice", Password: "s3cret", NewPassword: "n3w-pass"})
			},
			loginPassword: "n3w-pass",
		},
		{
			name: "old password stops working after a change",
			afterRegister: func(ctx context.Context, srv usecase.AuthUsecase) error {
				return srv.ChangePassword(ctx, &usecase.ChangePasswordInput{Username: "alice", Password: "s3cret", NewPassword: "n3w-pass"})
			},
			loginPassword: "s3cret",
			expectedErr:   domainerrors.ErrInvalidCredentials,
		},
		{
			name: "wipe removes the account",
			afterRegister: func(ctx context.Context, srv usecase.AuthUsecase) error {
				return srv.WipeAll(ctx)
			},
			loginPassword: "s3cret",
			expectedErr:   domainerrors.ErrUserNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			rows := &accountRows{}
			srv := createRoundTripAuthService(t, rows)

			registered, err := srv.Register(ctx, registerInput())
			require.NoError(t, err)
			require.NotNil(t, rows.user)
			assert.NotEqual(t, "s3cret", rows.user.PasswordHash)
			assert.NotEmpty(t, rows.user.PasswordSalt)

			if tt.afterRegister != nil {
				require.NoError(t, tt.afterRegister(ctx, srv))
			}

			out, err := srv.Login(ctx, &usecase.LoginInput{Username: "alice", Password: tt.loginPassword})
			if tt.expectedErr != nil {
				assert.True(t, errors.Is(err, tt.expectedErr), "got %v", err)
				assert.Nil(t, out)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, registered.Token, out.Token)
			assert.Equal(t, "alice", out.User.Username)
		})
	}
}

func TestAuthService_ChangePassword_RotatesSalt(t *testing.T) {
	ctx := context.Background()
	rows := &accountRows{}
	srv := createRoundTripAuthService(t, rows)

	_, err := srv.Register(ctx, registerInput())
	require.NoError(t, err)
	before := *rows.user

	err = srv.ChangePassword(ctx, &usecase.ChangePasswordInput{Username: "alice", Password: "s3cret", NewPassword: "s3cret"})
	require.NoError(t, err)

	assert.NotEqual(t, before.PasswordSalt, rows.user.PasswordSalt)
	assert.NotEqual(t, before.PasswordHash, rows.user.PasswordHash)
	assert.Equal(t, "signed-token", rows.token.Token)
}
