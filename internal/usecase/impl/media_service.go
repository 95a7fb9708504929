package impl

import (
	"context"

	"soundflow/internal/domain/entity"
	"soundflow/internal/domain/service"
	"soundflow/internal/usecase"
)

type mediaService struct {
	blobStore service.BlobStore
}

// NewMediaService is the constructor for mediaService.
func NewMediaService(blobStore service.BlobStore) usecase.MediaUsecase {
	return &mediaService{blobStore: blobStore}
}

func (srv *mediaService) OpenProfileImage(ctx context.Context, id string) (*entity.BlobObject, error) {
	return srv.blobStore.Download(ctx, entity.BucketProfileImages, id)
}

func (srv *mediaService) OpenProjectImage(ctx context.Context, id string) (*entity.BlobObject, error) {
	return srv.blobStore.Download(ctx, entity.BucketProjectImages, id)
}
