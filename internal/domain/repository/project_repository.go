package repository

import (
	"context"
	"errors"

	"soundflow/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProjectNotFound is returned when a project id has no row.
var ErrProjectNotFound = errors.New("project not found")

// ProjectRepository defines persistence for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *entity.Project) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error)

	// List returns all projects, newest first.
	List(ctx context.Context) ([]*entity.Project, error)

	// IncrementLikes atomically adds one like and returns the updated project.
	IncrementLikes(ctx context.Context, id uuid.UUID) (*entity.Project, error)
}
