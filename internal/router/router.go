package router

import (
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	apperrors "adboard/internal/errors"
	"adboard/internal/handler"
	"adboard/internal/service"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	authService service.AuthService,
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	adHandler *handler.AdvertisementHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	authed := tokenAuth(authService)

	// Public routes
	e.POST("/user", authHandler.Register)
	e.POST("/login", authHandler.Login)
	e.GET("/user/:id", userHandler.Get)
	e.GET("/advertisement", adHandler.Search)
	e.GET("/advertisement/:id", adHandler.Get)

	// Secured routes (require a valid session token)
	e.PATCH("/user/:id", userHandler.Update, authed)
	e.DELETE("/user/:id", userHandler.Delete, authed)
	e.POST("/advertisement", adHandler.Create, authed)
	e.PATCH("/advertisement/:id", adHandler.Update, authed)
	e.DELETE("/advertisement/:id", adHandler.Delete, authed)
}

// tokenAuth resolves the opaque session token from the Authorization header
// and stores the owning user on the request context. An optional "Bearer "
// prefix is accepted.
func tokenAuth(authService service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			raw = strings.TrimSpace(strings.TrimPrefix(raw, "Bearer "))

			user, err := authService.ResolveToken(c.Request().Context(), raw)
			if err != nil {
				he := apperrors.MapErrorToHTTP(err)
				return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
			}
			c.Set(handler.IdentityKey, user)
			return next(c)
		}
	}
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
