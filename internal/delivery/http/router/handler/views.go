// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strings"
	"time"

	"soundflow/config"
	"soundflow/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

type authView struct {
	AuthToken       string `json:"authToken"`
	Username        string `json:"username"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type userView struct {
	Username        string `json:"username"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

type projectView struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Details      string    `json:"details"`
	Date         time.Time `json:"date"`
	Username     string    `json:"username"`
	Likes        int       `json:"likes"`
	ProjectImage string    `json:"projectImage"`
}

// urlBuilder composes absolute links from http.publicBaseURL or the request's scheme and host.
type urlBuilder struct {
	publicBaseURL string
}

func newURLBuilder(cfg *config.Config) urlBuilder {
	return urlBuilder{publicBaseURL: strings.TrimRight(cfg.HTTP.PublicBaseURL, "/")}
}

func (b urlBuilder) base(c echo.Context) string {
	if b.publicBaseURL != "" {
		return b.publicBaseURL
	}

	return c.Scheme() + "://" + c.Request().Host
}

func (b urlBuilder) profileImage(c echo.Context, ref string) string {
	return b.base(c) + "/image/" + ref
}

func (b urlBuilder) projectImage(c echo.Context, ref string) string {
	return b.base(c) + "/projectImage/" + ref
}

func (b urlBuilder) project(c echo.Context, id string) string {
	return b.base(c) + "/project/" + id
}

func (b urlBuilder) userView(c echo.Context, user *entity.User) userView {
	return userView{
		Username:        user.Username,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: b.profileImage(c, user.ProfileImageRef),
	}
}

func (b urlBuilder) authView(c echo.Context, token string, user *entity.User) authView {
	return authView{
		AuthToken:       token,
		Username:        user.Username,
		FirstName:       user.FirstName,
		LastName:        user.LastName,
		ProfileImageURL: b.profileImage(c, user.ProfileImageRef),
	}
}

func (b urlBuilder) projectView(c echo.Context, project *entity.Project) projectView {
	return projectView{
		ID:           project.ID.String(),
		Title:        project.Title,
		Details:      project.Details,
		Date:         project.CreatedAt,
		Username:     project.OwnerUsername,
		Likes:        project.Likes,
		ProjectImage: b.projectImage(c, project.ImageRef),
	}
}
