package impl

import (
	"bytes"
	"context"
	"testing"
	"time"

	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/domain/repository"
	"soundflow/internal/domain/service"
	mockRepo "soundflow/internal/mocks/repository"
	mockSvc "soundflow/internal/mocks/service"
	"soundflow/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	txManager    *mockRepo.MockTransactionManager
	userRepo     *mockRepo.MockUserRepository
	tokenRepo    *mockRepo.MockAuthTokenRepository
	hasher       *mockSvc.MockCredentialHasher
	tokenService *mockSvc.MockTokenService
	blobStore    *mockSvc.MockBlobStore
	publisher    *mockSvc.MockEventPublisher
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	fx := authServiceFixtures{
		txManager:    mockRepo.NewMockTransactionManager(t),
		userRepo:     mockRepo.NewMockUserRepository(t),
		tokenRepo:    mockRepo.NewMockAuthTokenRepository(t),
		hasher:       mockSvc.NewMockCredentialHasher(t),
		tokenService: mockSvc.NewMockTokenService(t),
		blobStore:    mockSvc.NewMockBlobStore(t),
		publisher:    mockSvc.NewMockEventPublisher(t),
	}

	srv := NewAuthService(AuthServiceParams{
		TxManager:    fx.txManager,
		UserRepo:     fx.userRepo,
		TokenRepo:    fx.tokenRepo,
		Hasher:       fx.hasher,
		TokenService: fx.tokenService,
		BlobStore:    fx.blobStore,
		Publisher:    fx.publisher,
		Logger:       newDiscardLogger(),
	})
	srv.(*authService).now = func() time.Time { return fixedNow }
	fx.service = srv

	return fx
}

func registerInput() *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Username:  "alice",
		FirstName: "Alice",
		LastName:  "Smith",
		Password:  "s3cret",
		ProfileImage: &usecase.ImageUpload{
			ContentType: "image/png",
			Reader:      bytes.NewReader([]byte("png-bytes")),
		},
	}
}

// expectTransaction runs the callback against transaction-bound repository mocks.
func expectTransaction(t *testing.T, fx authServiceFixtures, userCreateErr, tokenCreateErr error) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			factory := mockRepo.NewMockRepositoryFactory(t)
			txUserRepo := mockRepo.NewMockUserRepository(t)

			factory.EXPECT().UserRepo().Return(txUserRepo)
			txUserRepo.EXPECT().
				Create(mock.Anything, mock.AnythingOfType("*entity.User")).
				Return(userCreateErr)

			if userCreateErr == nil {
				txTokenRepo := mockRepo.NewMockAuthTokenRepository(t)
				factory.EXPECT().AuthTokenRepo().Return(txTokenRepo)
				txTokenRepo.EXPECT().
					Create(mock.Anything, mock.AnythingOfType("*entity.AuthToken")).
					Return(tokenCreateErr)
			}

			return fn(factory)
		})
}

func TestAuthService_Register_Success(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()
	input := registerInput()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.blobStore.EXPECT().
		Upload(ctx, entity.BucketProfileImages, "alice", "image/png", mock.Anything).
		Return("0190f5a4-0000-7000-8000-000000000001", nil)
	fx.hasher.EXPECT().NewSalt().Return("salt", nil)
	fx.tokenService.EXPECT().Issue("alice").Return("signed-token", nil)
	fx.hasher.EXPECT().DeriveHash("s3cret", "salt").Return("derived-hash")
	expectTransaction(t, fx, nil, nil)
	fx.publisher.EXPECT().Publish(ctx, eventOfType(service.EventUserRegistered)).Return(nil)

	output, err := fx.service.Register(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, "signed-token", output.Token)
	assert.Equal(t, "alice", output.User.Username)
	assert.Equal(t, "Alice", output.User.FirstName)
	assert.Equal(t, "salt", output.User.PasswordSalt)
	assert.Equal(t, "derived-hash", output.User.PasswordHash)
	assert.Equal(t, "0190f5a4-0000-7000-8000-000000000001", output.User.ProfileImageRef)
	assert.Equal(t, fixedNow, output.User.CreatedAt)
}

func TestAuthService_Register_DuplicateUsername(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.User{Username: "alice"}, nil)

	_, err := fx.service.Register(ctx, registerInput())

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
	assert.Equal(t, 409, domainerrors.HTTPStatus(err))
}

func TestAuthService_Register_ConcurrentDuplicateInsert(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.blobStore.EXPECT().Upload(ctx, entity.BucketProfileImages, "alice", "image/png", mock.Anything).Return("img", nil)
	fx.hasher.EXPECT().NewSalt().Return("salt", nil)
	fx.tokenService.EXPECT().Issue("alice").Return("signed-token", nil)
	fx.hasher.EXPECT().DeriveHash("s3cret", "salt").Return("derived-hash")
	expectTransaction(t, fx, domainerrors.ErrDuplicateUsername.WrapMessage("username alice"), nil)

	_, err := fx.service.Register(ctx, registerInput())

	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateUsername))
}

func TestAuthService_Register_UploadFailureStopsRegistration(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrUserNotFound)
	fx.blobStore.EXPECT().
		Upload(ctx, entity.BucketProfileImages, "alice", "image/png", mock.Anything).
		Return("", errors.Wrap(domainerrors.ErrUploadTooLarge, "upload exceeds 6000000 bytes"))

	_, err := fx.service.Register(ctx, registerInput())

	assert.True(t, errors.Is(err, domainerrors.ErrUploadTooLarge))
}

func TestAuthService_Register_InvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(*usecase.RegisterInput)
		expectedErr error
	}{
		{"missing username", func(in *usecase.RegisterInput) { in.Username = " " }, domainerrors.ErrValidationFailed},
		{"missing password", func(in *usecase.RegisterInput) { in.Password = "" }, domainerrors.ErrValidationFailed},
		{"blank password", func(in *usecase.RegisterInput) { in.Password = "  \t" }, domainerrors.ErrValidationFailed},
		{"empty first name", func(in *usecase.RegisterInput) { in.FirstName = "" }, domainerrors.ErrValidationFailed},
		{"blank last name", func(in *usecase.RegisterInput) { in.LastName = "   " }, domainerrors.ErrValidationFailed},
		{"both names missing", func(in *usecase.RegisterInput) { in.FirstName, in.LastName = "", "   " }, domainerrors.ErrValidationFailed},
		{"missing image", func(in *usecase.RegisterInput) { in.ProfileImage = nil }, domainerrors.ErrUploadRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			input := registerInput()
			tt.mutate(input)

			// No repository or blob store expectations: rejected input must not reach them.
			_, err := fx.service.Register(context.Background(), input)
			assert.True(t, errors.Is(err, tt.expectedErr))
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	stored := &entity.User{Username: "alice", PasswordSalt: "salt", PasswordHash: "hash"}

	t.Run("success returns stored token", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		fx.hasher.EXPECT().Verify("s3cret", "salt", "hash").Return(true)
		fx.tokenRepo.EXPECT().FindByUsername(ctx, "alice").Return(&entity.AuthToken{Username: "alice", Token: "tok"}, nil)

		out, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
		require.NoError(t, err)
		assert.Equal(t, "tok", out.Token)
		assert.Same(t, stored, out.User)
	})

	t.Run("unknown user", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "ghost", Password: "x"})
		assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
		assert.Equal(t, 400, domainerrors.HTTPStatus(err))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		fx.hasher.EXPECT().Verify("wrong", "salt", "hash").Return(false)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("blank password is rejected before lookup", func(t *testing.T) {
		fx := createTestAuthService(t)

		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{Username: "alice", Password: "   "})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("missing token is an internal error", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		fx.hasher.EXPECT().Verify("s3cret", "salt", "hash").Return(true)
		fx.tokenRepo.EXPECT().FindByUsername(ctx, "alice").Return(nil, repository.ErrAuthTokenNotFound)

		_, err := fx.service.Login(ctx, &usecase.LoginInput{Username: "alice", Password: "s3cret"})
		assert.True(t, errors.Is(err, domainerrors.ErrTokenMissing))
		assert.Equal(t, 500, domainerrors.HTTPStatus(err))
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	stored := &entity.User{Username: "alice", PasswordSalt: "old-salt", PasswordHash: "old-hash"}

	t.Run("replaces salt and hash without touching tokens", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		fx.hasher.EXPECT().Verify("old", "old-salt", "old-hash").Return(true)
		fx.hasher.EXPECT().NewSalt().Return("new-salt", nil)
		fx.hasher.EXPECT().DeriveHash("new", "new-salt").Return("new-hash")
		fx.userRepo.EXPECT().UpdateCredentials(ctx, "alice", "new-salt", "new-hash").Return(nil)
		fx.publisher.EXPECT().Publish(ctx, eventOfType(service.EventUserPasswordChanged)).Return(nil)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{Username: "alice", Password: "old", NewPassword: "new"})
		assert.NoError(t, err)
	})

	t.Run("wrong current password", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		fx.hasher.EXPECT().Verify("bad", "old-salt", "old-hash").Return(false)

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{Username: "alice", Password: "bad", NewPassword: "new"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("publish failure does not fail the request", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		fx.userRepo.EXPECT().FindByUsername(ctx, "alice").Return(stored, nil)
		fx.hasher.EXPECT().Verify("old", "old-salt", "old-hash").Return(true)
		fx.hasher.EXPECT().NewSalt().Return("new-salt", nil)
		fx.hasher.EXPECT().DeriveHash("new", "new-salt").Return("new-hash")
		fx.userRepo.EXPECT().UpdateCredentials(ctx, "alice", "new-salt", "new-hash").Return(nil)
		fx.publisher.EXPECT().Publish(ctx, mock.Anything).Return(errors.New("broker down"))

		err := fx.service.ChangePassword(ctx, &usecase.ChangePasswordInput{Username: "alice", Password: "old", NewPassword: "new"})
		assert.NoError(t, err)
	})

	t.Run("empty new password", func(t *testing.T) {
		fx := createTestAuthService(t)

		err := fx.service.ChangePassword(context.Background(), &usecase.ChangePasswordInput{Username: "alice", Password: "old"})
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("blank passwords are rejected", func(t *testing.T) {
		for _, input := range []*usecase.ChangePasswordInput{
			{Username: "alice", Password: "old", NewPassword: " \t "},
			{Username: "alice", Password: "  ", NewPassword: "new"},
		} {
			fx := createTestAuthService(t)

			err := fx.service.ChangePassword(context.Background(), input)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		}
	})
}

func TestAuthService_ListUsers(t *testing.T) {
	fx := createTestAuthService(t)
	ctx := context.Background()

	users := []*entity.User{{Username: "alice"}, {Username: "bob"}}
	fx.userRepo.EXPECT().List(ctx).Return(users, nil)

	got, err := fx.service.ListUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, users, got)
}

func TestAuthService_WipeAll(t *testing.T) {
	t.Run("deletes tokens then users", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		var order []string
		fx.tokenRepo.EXPECT().DeleteAll(ctx).Run(func(context.Context) { order = append(order, "tokens") }).Return(nil)
		fx.userRepo.EXPECT().DeleteAll(ctx).Run(func(context.Context) { order = append(order, "users") }).Return(nil)
		fx.publisher.EXPECT().Publish(ctx, eventOfType(service.EventRecordsWiped)).Return(nil)

		require.NoError(t, fx.service.WipeAll(ctx))
		assert.Equal(t, []string{"tokens", "users"}, order)
	})

	t.Run("attempts users even when tokens fail", func(t *testing.T) {
		fx := createTestAuthService(t)
		ctx := context.Background()

		tokenErr := errors.New("token delete failed")
		fx.tokenRepo.EXPECT().DeleteAll(ctx).Return(tokenErr)
		fx.userRepo.EXPECT().DeleteAll(ctx).Return(nil)

		err := fx.service.WipeAll(ctx)
		assert.ErrorIs(t, err, tokenErr)
	})
}

func TestAuthService_Authenticate(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(fx authServiceFixtures)
		token   string
		want    string
		wantErr bool
	}{
		{
			name: "valid stored token",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Parse("tok").Return("alice", nil)
				fx.tokenRepo.EXPECT().FindByToken(mock.Anything, "tok").Return(&entity.AuthToken{Username: "alice", Token: "tok"}, nil)
			},
			token: "tok",
			want:  "alice",
		},
		{
			name:    "empty token",
			setup:   func(authServiceFixtures) {},
			wantErr: true,
		},
		{
			name: "bad signature",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Parse("forged").Return("", errors.New("signature is invalid"))
			},
			token:   "forged",
			wantErr: true,
		},
		{
			name: "signed but not stored",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Parse("old").Return("alice", nil)
				fx.tokenRepo.EXPECT().FindByToken(mock.Anything, "old").Return(nil, repository.ErrAuthTokenNotFound)
			},
			token:   "old",
			wantErr: true,
		},
		{
			name: "subject mismatch",
			setup: func(fx authServiceFixtures) {
				fx.tokenService.EXPECT().Parse("tok").Return("mallory", nil)
				fx.tokenRepo.EXPECT().FindByToken(mock.Anything, "tok").Return(&entity.AuthToken{Username: "alice", Token: "tok"}, nil)
			},
			token:   "tok",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAuthService(t)
			tt.setup(fx)

			got, err := fx.service.Authenticate(context.Background(), tt.token)
			if tt.wantErr {
				assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
				assert.Equal(t, 401, domainerrors.HTTPStatus(err))

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
