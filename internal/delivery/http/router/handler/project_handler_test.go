package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"soundflow/internal/delivery/http/middleware"
	"soundflow/internal/domain/entity"
	domainerrors "soundflow/internal/domain/errors"
	mockUsecase "soundflow/internal/mocks/usecase"
	"soundflow/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type projectTestServer struct {
	e        *echo.Echo
	auth     *mockUsecase.MockAuthUsecase
	projects *mockUsecase.MockProjectUsecase
}

func newProjectTestServer(t *testing.T) *projectTestServer {
	t.Helper()

	auth := mockUsecase.NewMockAuthUsecase(t)
	projects := mockUsecase.NewMockProjectUsecase(t)
	h := NewProjectHandler(projects, testConfig())
	authMiddleware := middleware.NewAuthMiddleware(auth)

	e := newTestEcho()
	e.POST("/project/new", h.Create, authMiddleware.Authenticate)
	e.GET("/projects", h.List, authMiddleware.Authenticate)
	e.GET("/project/:id", h.Get)
	e.GET("/project/:id/like", h.Like)
	e.GET("/project/:id/qrcode", h.QRCode)

	return &projectTestServer{e: e, auth: auth, projects: projects}
}

func sampleProject() *entity.Project {
	return &entity.Project{
		ID:            uuid.MustParse("0190a5b8-0000-7000-8000-0000000000aa"),
		Title:         "Demo",
		Details:       "first mix",
		ImageRef:      "0190a5b8-0000-7000-8000-0000000000bb",
		OwnerUsername: "alice",
		Likes:         3,
		CreatedAt:     time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestProjectHandler_Create(t *testing.T) {
	body := multipartBody{
		files:  []filePart{{field: "projectImage", contentType: "image/jpeg", content: []byte("jpeg")}},
		fields: map[string]string{"data": `{"title":"Demo","details":"first mix"}`},
	}

	t.Run("creates a project for the token owner", func(t *testing.T) {
		s := newProjectTestServer(t)
		s.auth.EXPECT().Authenticate(mock.Anything, "tok").Return("alice", nil)
		s.projects.EXPECT().CreateProject(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, input *usecase.CreateProjectInput) (*entity.Project, error) {
				assert.Equal(t, "alice", input.Owner)
				assert.Equal(t, "Demo", input.Title)
				assert.Equal(t, "image/jpeg", input.Image.ContentType)

				return sampleProject(), nil
			})

		req := multipartRequest(t, "/project/new", body)
		req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
		rec := serve(s.e, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		var view projectView
		resp := decodeResponse(t, rec, &view)
		assert.Equal(t, "Project created", resp.Message)
		assert.Equal(t, "alice", view.Username)
		assert.Equal(t, 3, view.Likes)
		assert.Equal(t, "https://soundflow.test/projectImage/0190a5b8-0000-7000-8000-0000000000bb", view.ProjectImage)
	})

	t.Run("bare token is accepted", func(t *testing.T) {
		s := newProjectTestServer(t)
		s.auth.EXPECT().Authenticate(mock.Anything, "tok").Return("alice", nil)
		s.projects.EXPECT().CreateProject(mock.Anything, mock.Anything).Return(sampleProject(), nil)

		req := multipartRequest(t, "/project/new", body)
		req.Header.Set(echo.HeaderAuthorization, "tok")
		rec := serve(s.e, req)

		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("missing token", func(t *testing.T) {
		s := newProjectTestServer(t)

		rec := serve(s.e, multipartRequest(t, "/project/new", body))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resp := decodeResponse(t, rec, nil)
		assert.Equal(t, "UNAUTHENTICATED", resp.Error.Code)
	})

	t.Run("unknown token", func(t *testing.T) {
		s := newProjectTestServer(t)
		s.auth.EXPECT().Authenticate(mock.Anything, "forged").Return("", domainerrors.ErrUnauthenticated)

		req := multipartRequest(t, "/project/new", body)
		req.Header.Set(echo.HeaderAuthorization, "Bearer forged")
		rec := serve(s.e, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("missing title", func(t *testing.T) {
		s := newProjectTestServer(t)
		s.auth.EXPECT().Authenticate(mock.Anything, "tok").Return("alice", nil)

		req := multipartRequest(t, "/project/new", multipartBody{
			files:  body.files,
			fields: map[string]string{"data": `{"details":"x"}`},
		})
		req.Header.Set(echo.HeaderAuthorization, "tok")
		rec := serve(s.e, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing details", func(t *testing.T) {
		s := newProjectTestServer(t)
		s.auth.EXPECT().Authenticate(mock.Anything, "tok").Return("alice", nil)

		req := multipartRequest(t, "/project/new", multipartBody{
			files:  body.files,
			fields: map[string]string{"data": `{"title":"Demo"}`},
		})
		req.Header.Set(echo.HeaderAuthorization, "tok")
		rec := serve(s.e, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		resp := decodeResponse(t, rec, nil)
		assert.Equal(t, "VALIDATION_FAILED", resp.Error.Code)
	})
}

func TestProjectHandler_List(t *testing.T) {
	s := newProjectTestServer(t)
	s.auth.EXPECT().Authenticate(mock.Anything, "tok").Return("alice", nil)
	s.projects.EXPECT().ListProjects(mock.Anything).Return([]*entity.Project{sampleProject()}, nil)

	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set(echo.HeaderAuthorization, "tok")
	rec := serve(s.e, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var views []projectView
	resp := decodeResponse(t, rec, &views)
	assert.Equal(t, "Fetched all projects successfully", resp.Message)
	require.Len(t, views, 1)
	assert.Equal(t, "0190a5b8-0000-7000-8000-0000000000aa", views[0].ID)
}

func TestProjectHandler_Get(t *testing.T) {
	project := sampleProject()

	tests := []struct {
		name       string
		path       string
		setup      func(s *projectTestServer)
		wantStatus int
		wantCode   string
	}{
		{
			name: "found",
			path: "/project/" + project.ID.String(),
			setup: func(s *projectTestServer) {
				s.projects.EXPECT().GetProject(mock.Anything, project.ID).Return(project, nil)
			},
			wantStatus: http.StatusOK,
		},
		{
			name: "unknown",
			path: "/project/" + project.ID.String(),
			setup: func(s *projectTestServer) {
				s.projects.EXPECT().GetProject(mock.Anything, project.ID).Return(nil, domainerrors.ErrProjectNotFound)
			},
			wantStatus: http.StatusNotFound,
			wantCode:   "PROJECT_NOT_FOUND",
		},
		{
			name:       "malformed id",
			path:       "/project/not-a-uuid",
			setup:      func(*projectTestServer) {},
			wantStatus: http.StatusBadRequest,
			wantCode:   "INVALID_PROJECT_ID",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newProjectTestServer(t)
			tt.setup(s)

			rec := serve(s.e, httptest.NewRequest(http.MethodGet, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode != "" {
				resp := decodeResponse(t, rec, nil)
				assert.Equal(t, tt.wantCode, resp.Error.Code)
			}
		})
	}
}

func TestProjectHandler_Like(t *testing.T) {
	s := newProjectTestServer(t)
	liked := sampleProject()
	liked.Likes = 4
	s.projects.EXPECT().LikeProject(mock.Anything, liked.ID).Return(liked, nil)

	rec := serve(s.e, httptest.NewRequest(http.MethodGet, "/project/"+liked.ID.String()+"/like", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var view projectView
	resp := decodeResponse(t, rec, &view)
	assert.Equal(t, "Project liked", resp.Message)
	assert.Equal(t, 4, view.Likes)
}

func TestProjectHandler_QRCode(t *testing.T) {
	s := newProjectTestServer(t)
	id := sampleProject().ID
	png := []byte("\x89PNG\r\n\x1a\n")
	s.projects.EXPECT().ProjectQRCode(mock.Anything, id, "https://soundflow.test/project/"+id.String()).Return(png, nil)

	rec := serve(s.e, httptest.NewRequest(http.MethodGet, "/project/"+id.String()+"/qrcode", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())
}
