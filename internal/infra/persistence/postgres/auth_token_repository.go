package postgres

import (
	"context"

	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/domain/repository"
	"soundflow/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type authTokenRepository struct {
	db *gorm.DB
}

// NewAuthTokenRepository is the constructor for authTokenRepository.
func NewAuthTokenRepository(db *gorm.DB) repository.AuthTokenRepository {
	return &authTokenRepository{db: db}
}

func (repo *authTokenRepository) Create(ctx context.Context, token *entity.AuthToken) error {
	tokenM := &model.AuthTokenModel{
		ID:        token.ID,
		Username:  token.Username,
		Token:     token.Token,
		CreatedAt: token.CreatedAt,
	}

	if err := repo.db.WithContext(ctx).Create(tokenM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrDuplicateUsername.WrapMessage("token already issued for " + token.Username)
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("token owner " + token.Username)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create auth token")
	}

	token.CreatedAt = tokenM.CreatedAt

	return nil
}

func (repo *authTokenRepository) FindByUsername(ctx context.Context, username string) (*entity.AuthToken, error) {
	return repo.findOne(ctx, "username = ?", username)
}

func (repo *authTokenRepository) FindByToken(ctx context.Context, token string) (*entity.AuthToken, error) {
	return repo.findOne(ctx, "token = ?", token)
}

func (repo *authTokenRepository) findOne(ctx context.Context, query string, arg string) (*entity.AuthToken, error) {
	var tokenM model.AuthTokenModel
	err := repo.db.WithContext(ctx).Where(query, arg).First(&tokenM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAuthTokenNotFound
		}

		return nil, errors.Wrap(err, "failed to find auth token")
	}

	return &entity.AuthToken{
		ID:        tokenM.ID,
		Username:  tokenM.Username,
		Token:     tokenM.Token,
		CreatedAt: tokenM.CreatedAt,
	}, nil
}

func (repo *authTokenRepository) DeleteAll(ctx context.Context) error {
	err := repo.db.WithContext(ctx).
		Session(&gorm.Session{AllowGlobalUpdate: true}).
		Delete(&model.AuthTokenModel{}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete auth tokens")
	}

	return nil
}
