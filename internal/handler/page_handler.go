package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventadmin/internal/auth"
	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/service"
)

// PageHandler serves the data payloads of the protected portal pages. The
// pages themselves are rendered client-side; every route here sits behind
// the authorization gate.
type PageHandler struct {
	authService   service.AuthService
	eventService  service.EventService
	screenService service.InfoScreenService
}

// NewPageHandler creates a new page handler.
func NewPageHandler(authService service.AuthService, eventService service.EventService, screenService service.InfoScreenService) *PageHandler {
	return &PageHandler{
		authService:   authService,
		eventService:  eventService,
		screenService: screenService,
	}
}

// Dashboard returns the landing page payload for any authenticated user.
func (h *PageHandler) Dashboard(c echo.Context) error {
	sess, _ := auth.SessionFromContext(c)

	user, roles, err := h.authService.CurrentUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"email":                  user.Email,
		"roles":                  roles,
		"passwordChangeRequired": user.LastPasswordChange == nil,
	})
}

// Events returns the event management page payload.
func (h *PageHandler) Events(c echo.Context) error {
	sess, _ := auth.SessionFromContext(c)

	events, err := h.eventService.ListEvents(c.Request().Context(), sess.UserID)
	if err != nil {
		if err == apperrors.ErrNoOrganizer {
			// The gate predicate already requires an organizer; this only
			// races with a concurrent unassignment.
			return echo.ErrNotFound
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"events": events})
}

// InfoScreens returns the signage management page payload.
func (h *PageHandler) InfoScreens(c echo.Context) error {
	screens, err := h.screenService.ListInfoScreens(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{"infoScreens": screens})
}

// Settings returns the account settings page payload.
func (h *PageHandler) Settings(c echo.Context) error {
	sess, _ := auth.SessionFromContext(c)

	user, _, err := h.authService.CurrentUser(c.Request().Context(), sess.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"email":              user.Email,
		"lastLogin":          user.LastLogin,
		"lastPasswordChange": user.LastPasswordChange,
	})
}
