package impl

import (
	"context"
	"log/slog"
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

type projectService struct {
	projectRepo repository.ProjectRepository
	blobStore   service.BlobStore
	qrService   service.QRCodeService
	publisher   service.EventPublisher
	logger      *slog.Logger
	now         func() time.Time
}

// ProjectServiceParams holds dependencies for ProjectService, injected by Fx.
type ProjectServiceParams struct {
	fx.In

	ProjectRepo repository.ProjectRepository
	BlobStore   service.BlobStore
	QRService   service.QRCodeService
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewProjectService is the constructor for projectService.
func NewProjectService(params ProjectServiceParams) usecase.ProjectUsecase {
	return &projectService{
		projectRepo: params.ProjectRepo,
		blobStore:   params.BlobStore,
		qrService:   params.QRService,
		publisher:   params.Publisher,
		logger:      params.Logger,
		now:         time.Now,
	}
}

func (srv *projectService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateProject uploads the cover image under the project title, then stores the project with zero likes.
func (srv *projectService) CreateProject(ctx context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
	if isBlank(input.Title) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("title is required")
	}
	if isBlank(input.Details) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("details is required")
	}
	if input.Image == nil || input.Image.Reader == nil {
		return nil, domainerrors.ErrUploadRejected.WrapMessage("project image is required")
	}

	imageRef, err := srv.blobStore.Upload(ctx, entity.BucketProjectImages, input.Title, input.Image.ContentType, input.Image.Reader)
	if err != nil {
		return nil, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate project id")
	}

	project := &entity.Project{
		ID:            id,
		Title:         input.Title,
		Details:       input.Details,
		ImageRef:      imageRef,
		OwnerUsername: input.Owner,
		Likes:         0,
		CreatedAt:     srv.now(),
	}
	if err := srv.projectRepo.Create(ctx, project); err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Project created",
		slog.String("project_id", project.ID.String()),
		slog.String("owner", project.OwnerUsername),
	)
	srv.publish(ctx, service.EventProjectCreated, project)

	return project, nil
}

func (srv *projectService) ListProjects(ctx context.Context) ([]*entity.Project, error) {
	projects, err := srv.projectRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list projects")
	}

	return projects, nil
}

func (srv *projectService) GetProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateProjectError(err, id)
	}

	return project, nil
}

func (srv *projectService) LikeProject(ctx context.Context, id uuid.UUID) (*entity.Project, error) {
	project, err := srv.projectRepo.IncrementLikes(ctx, id)
	if err != nil {
		return nil, translateProjectError(err, id)
	}

	srv.publish(ctx, service.EventProjectLiked, project)

	return project, nil
}

func (srv *projectService) ProjectQRCode(ctx context.Context, id uuid.UUID, shareURL string) ([]byte, error) {
	if _, err := srv.GetProject(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrService.GenerateProjectQR(id, shareURL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to render project QR code")
	}

	return png, nil
}

func (srv *projectService) publish(ctx context.Context, eventType string, project *entity.Project) {
	publishEvent(ctx, srv.publisher, srv.log(ctx), &service.MediaEvent{
		Type:       eventType,
		Username:   project.OwnerUsername,
		ProjectID:  project.ID.String(),
		OccurredAt: srv.now().UTC(),
	})
}

func translateProjectError(err error, id uuid.UUID) error {
	if errors.Is(err, repository.ErrProjectNotFound) {
		return domainerrors.ErrProjectNotFound.WrapMessage("project " + id.String())
	}

	return errors.Wrap(err, "failed to load project")
}
