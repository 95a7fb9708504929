package usecase

import (
	"context"

	"soundflow/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateProjectInput defines the data required to publish a project.
type CreateProjectInput struct {
	Owner   string
	Title   string
	Details string
	Image   *ImageUpload
}

// ProjectUsecase defines project publishing and discovery.
type ProjectUsecase interface {
	CreateProject(ctx context.Context, input *CreateProjectInput) (*entity.Project, error)
	ListProjects(ctx context.Context) ([]*entity.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)
	LikeProject(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// ProjectQRCode renders a PNG share code that points at shareURL.
	ProjectQRCode(ctx context.Context, id uuid.UUID, shareURL string) ([]byte, error)
}
