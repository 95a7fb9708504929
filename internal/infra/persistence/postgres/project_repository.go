package postgres

import (
	"context"

	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/domain/repository"
	"soundflow/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// projectRepository implements the domain.ProjectRepository interface.
type projectRepository struct {
	db *gorm.DB
}

// NewProjectRepository is the constructor for projectRepository.
func NewProjectRepository(db *gorm.DB) repository.ProjectRepository {
	return &projectRepository{db: db}
}

// Create persists a new project.
func (repo *projectRepository) Create(ctx context.Context, project *entity.Project) error {
	projectM := fromProjectDomain(project)

	if err := repo.db.WithContext(ctx).Create(projectM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required project information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create project")
	}

	project.CreatedAt = projectM.CreatedAt

	return nil
}

// FindByID retrieves a project by its unique ID.
func (repo *projectRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	err := repo.db.WithContext(ctx).Where("id = ?", id).First(&projectM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProjectNotFound
		}

		return nil, errors.Wrap(err, "failed to find project by ID")
	}

	return toProjectDomain(&projectM), nil
}

// List returns all projects, newest first.
func (repo *projectRepository) List(ctx context.Context) ([]*entity.Project, error) {
	var projectModels []*model.ProjectModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&projectModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	projects := make([]*entity.Project, 0, len(projectModels))
	for _, projectM := range projectModels {
		projects = append(projects, toProjectDomain(projectM))
	}

	return projects, nil
}

// IncrementLikes adds one like in a single UPDATE ... RETURNING statement.
func (repo *projectRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	var projectM model.ProjectModel
	result := repo.db.WithContext(ctx).
		Model(&projectM).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))

	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment project likes")
	}
	if result.RowsAffected == 0 {
		return nil, repository.ErrProjectNotFound
	}

	return toProjectDomain(&projectM), nil
}

func toProjectDomain(data *model.ProjectModel) *entity.Project {
	return &entity.Project{
		ID:            data.ID,
		Title:         data.Title,
		Details:       data.Details,
		ImageRef:      data.ImageRef,
		OwnerUsername: data.OwnerUsername,
		Likes:         data.Likes,
		CreatedAt:     data.CreatedAt,
	}
}

func fromProjectDomain(data *entity.Project) *model.ProjectModel {
	return &model.ProjectModel{
		ID:            data.ID,
		Title:         data.Title,
		Details:       data.Details,
		ImageRef:      data.ImageRef,
		OwnerUsername: data.OwnerUsername,
		Likes:         data.Likes,
		CreatedAt:     data.CreatedAt,
	}
}
