package handler

import (
	"net/http"

	"soundflow/config"
	deliverycontext "soundflow/internal/delivery/context"
	"soundflow/internal/delivery/http/response"
	domainerrors "soundflow/internal/domain/errors"
	"soundflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

type createProjectPayload struct {
	Title   string `json:"title" validate:"required,max=255"`
	Details string `json:"details" validate:"required"`
}

// ProjectHandler serves project publishing and discovery.
type ProjectHandler struct {
	uc     usecase.ProjectUsecase
	urls   urlBuilder
	limits uploadLimits
}

// NewProjectHandler is the constructor for ProjectHandler.
func NewProjectHandler(uc usecase.ProjectUsecase, cfg *config.Config) *ProjectHandler {
	return &ProjectHandler{
		uc:     uc,
		urls:   newURLBuilder(cfg),
		limits: newUploadLimits(cfg),
	}
}

// Create publishes a project owned by the authenticated account.
func (h *ProjectHandler) Create(c echo.Context) error {
	owner, ok := deliverycontext.GetUsername(c)
	if !ok {
		return domainerrors.ErrUnauthenticated
	}

	upload, err := readMultipart(c, "projectImage", h.limits)
	if err != nil {
		return err
	}
	defer upload.Close()

	var payload createProjectPayload
	if err := upload.decodeData(c, &payload); err != nil {
		return err
	}

	project, err := h.uc.CreateProject(c.Request().Context(), &usecase.CreateProjectInput{
		Owner:   owner,
		Title:   payload.Title,
		Details: payload.Details,
		Image:   upload.Image,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, h.urls.projectView(c, project), "Project created")
}

// List returns every project, newest first.
func (h *ProjectHandler) List(c echo.Context) error {
	projects, err := h.uc.ListProjects(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	views := make([]projectView, 0, len(projects))
	for _, project := range projects {
		views = append(views, h.urls.projectView(c, project))
	}

	return response.Success(c, http.StatusOK, views, "Fetched all projects successfully")
}

// Get returns one project.
func (h *ProjectHandler) Get(c echo.Context) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	project, err := h.uc.GetProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.urls.projectView(c, project), "Fetched project successfully")
}

// Like adds one like and returns the updated project.
func (h *ProjectHandler) Like(c echo.Context) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	project, err := h.uc.LikeProject(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.urls.projectView(c, project), "Project liked")
}

// QRCode renders a PNG share code linking to the project.
func (h *ProjectHandler) QRCode(c echo.Context) error {
	id, err := projectID(c)
	if err != nil {
		return err
	}

	png, err := h.uc.ProjectQRCode(c.Request().Context(), id, h.urls.project(c, id.String()))
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func projectID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domainerrors.ErrInvalidProjectID.WithDetails(c.Param("id"))
	}

	return id, nil
}
