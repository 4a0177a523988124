package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"eventadmin/internal/auth"
	"eventadmin/internal/config"
	"eventadmin/internal/handler"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	cfg *config.Config,
	gate *auth.Gate,
	sessions auth.SessionStoreInterface,
	users repository.UserRepository,
	authHandler *handler.AuthHandler,
	eventHandler *handler.EventHandler,
	screenHandler *handler.InfoScreenHandler,
	profileHandler *handler.ProfileHandler,
	imageHandler *handler.ImageHandler,
	pageHandler *handler.PageHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	// Login entry point; the gate redirects unauthenticated page requests here.
	e.POST("/login", authHandler.Login)

	// Protected portal pages. Role failures surface as 404, unauthenticated
	// callers get redirected to /login with a callback URL.
	e.GET("/", pageHandler.Dashboard, gate.Require(auth.Requirement{}))
	e.GET("/events", pageHandler.Events, gate.Require(auth.Requirement{
		Role:   model.RoleEventEditor,
		Custom: administersOrganizer(users),
	}))
	e.GET("/infoscreens", pageHandler.InfoScreens, gate.Require(auth.Requirement{
		Roles: []model.Role{model.RoleInfoScreenEditor},
	}))
	e.GET("/settings", pageHandler.Settings, gate.Require(auth.Requirement{}))

	// JSON API: bearer or cookie token, plain 401 on failure.
	api := e.Group("/api", echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(cfg.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims {
			return new(auth.Claims)
		},
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ,cookie:" + auth.SessionCookieName,
		ErrorHandler: func(c echo.Context, err error) error {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		},
	}), auth.SessionMiddleware(sessions))

	api.POST("/logout", authHandler.Logout)
	api.POST("/change-password", authHandler.ChangePassword)
	api.GET("/me", authHandler.Me)

	api.GET("/events", eventHandler.List)
	api.POST("/events", eventHandler.Create)
	api.PUT("/events/:id", eventHandler.Update)
	api.DELETE("/events/:id", eventHandler.Delete)

	screens := api.Group("/infoscreens", auth.RequireRolesAPI(users, model.RoleInfoScreenEditor))
	screens.GET("", screenHandler.List)
	screens.POST("", screenHandler.Create)
	screens.PUT("/:id", screenHandler.Update)
	screens.DELETE("/:id", screenHandler.Delete)

	api.GET("/profile", profileHandler.Get)
	api.POST("/profile", profileHandler.Update)

	// Admins can switch which organizer they administer at runtime.
	organizers := api.Group("/organizers", auth.RequireRolesAPI(users))
	organizers.GET("", profileHandler.ListOrganizers)
	organizers.POST("/select", profileHandler.SelectOrganizer)

	api.POST("/upload", imageHandler.Upload)
	api.GET("/images/:id", imageHandler.Get)
}

// administersOrganizer is a gate predicate requiring the caller to be
// associated with an organizer. Evaluated after role checks.
func administersOrganizer(users repository.UserRepository) func(c echo.Context, s *auth.Session) (bool, error) {
	return func(c echo.Context, s *auth.Session) (bool, error) {
		user, err := users.FindByID(c.Request().Context(), s.UserID)
		if err != nil {
			return false, err
		}
		return user.OrganizerID != nil, nil
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
