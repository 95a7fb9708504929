package usecase

import (
	"context"

	"soundflow/internal/domain/entity"
)

// MediaUsecase streams stored images back to clients.
// The caller owns the returned reader and must close it.
type MediaUsecase interface {
	OpenProfileImage(ctx context.Context, id string) (*entity.BlobObject, error)
	OpenProjectImage(ctx context.Context, id string) (*entity.BlobObject, error)
}
