// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"context"
	"time"

	"soundflow/config"
	"soundflow/internal/delivery/http/middleware"
	"soundflow/internal/delivery/http/router/handler"
	domainerrors "soundflow/internal/domain/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	UserHandler    *handler.UserHandler
	ImageHandler   *handler.ImageHandler
	ProjectHandler *handler.ProjectHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	userHandler    *handler.UserHandler
	imageHandler   *handler.ImageHandler
	projectHandler *handler.ProjectHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		userHandler:    params.UserHandler,
		imageHandler:   params.ImageHandler,
		projectHandler: params.ProjectHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
// JSON routes get the request timeout; routes that move image bytes get the transfer timeout.
func (r *router) RegisterRoutes(e *echo.Echo) {
	api := r.timeout(r.cfg.HTTP.RequestTimeout)
	transfer := r.timeout(r.cfg.HTTP.TransferTimeout)

	e.GET("/", handler.Welcome)
	e.GET("/health", handler.HealthCheck)

	// Account routes
	users := e.Group("/users")
	{
		users.GET("", r.userHandler.Info, api)
		users.GET("/all", r.userHandler.List, api)
		users.POST("/create", r.userHandler.Create, transfer)
		users.POST("/login", r.userHandler.Login, api)
		users.POST("/password/update", r.userHandler.UpdatePassword, api)
		users.GET("/delete/all", r.userHandler.DeleteAll, api)
	}

	// Images
	e.GET("/image/:id", r.imageHandler.ProfileImage, transfer)
	e.GET("/projectImage/:id", r.imageHandler.ProjectImage, transfer)

	// Project routes
	e.POST("/project/new", r.projectHandler.Create, transfer, r.authMiddleware.Authenticate)
	e.GET("/projects", r.projectHandler.List, api, r.authMiddleware.Authenticate)
	e.GET("/project/:id", r.projectHandler.Get, api)
	e.GET("/project/:id/like", r.projectHandler.Like, api)
	e.GET("/project/:id/qrcode", r.projectHandler.QRCode, api)
}

func (r *router) timeout(d time.Duration) echo.MiddlewareFunc {
	if d <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	return echomiddleware.ContextTimeoutWithConfig(echomiddleware.ContextTimeoutConfig{
		Timeout: d,
		ErrorHandler: func(err error, c echo.Context) error {
			if errors.Is(err, context.DeadlineExceeded) {
				return domainerrors.ErrRequestTimeout.WrapMessage(err.Error())
			}

			return err
		},
	})
}
