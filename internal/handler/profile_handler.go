package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventadmin/internal/auth"
	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/service"
)

// ProfileHandler handles the organizer profile and organizer selection
// endpoints.
type ProfileHandler struct {
	organizerService service.OrganizerService
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(organizerService service.OrganizerService) *ProfileHandler {
	return &ProfileHandler{organizerService: organizerService}
}

// ProfileRequest represents an organizer profile update.
type ProfileRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Logo        *string `json:"logo"`
	Cover       *string `json:"cover"`
	Website     *string `json:"website"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Facebook    *string `json:"facebook"`
	Instagram   *string `json:"instagram"`
	Twitter     *string `json:"twitter"`
	LinkedIn    *string `json:"linkedin"`
	TikTok      *string `json:"tiktok"`
	YouTube     *string `json:"youtube"`
	Telegram    *string `json:"telegram"`
}

// Get returns the organizer profile the caller administers.
func (h *ProfileHandler) Get(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	organizer, err := h.organizerService.GetProfile(c.Request().Context(), sess.UserID)
	if err != nil {
		if err == apperrors.ErrNoOrganizer {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, organizer)
}

// Update replaces the organizer profile fields.
func (h *ProfileHandler) Update(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var req ProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	in := service.OrganizerInput{
		Name:         req.Name,
		Description:  req.Description,
		LogoImageID:  req.Logo,
		CoverImageID: req.Cover,
		Website:      req.Website,
		Email:        req.Email,
		Phone:        req.Phone,
		Facebook:     req.Facebook,
		Instagram:    req.Instagram,
		Twitter:      req.Twitter,
		LinkedIn:     req.LinkedIn,
		TikTok:       req.TikTok,
		YouTube:      req.YouTube,
		Telegram:     req.Telegram,
	}
	if err := h.organizerService.UpdateProfile(c.Request().Context(), sess.UserID, in); err != nil {
		if err == apperrors.ErrNoOrganizer {
			return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.NoContent(http.StatusOK)
}

// SelectOrganizerRequest picks the organizer the caller administers.
type SelectOrganizerRequest struct {
	OrganizerID uint `json:"organizerId" validate:"required"`
}

// ListOrganizers returns every organizer, marking the caller's current one.
// Admin-only; the route group enforces the role.
func (h *ProfileHandler) ListOrganizers(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	options, err := h.organizerService.ListOrganizers(c.Request().Context(), sess.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, options)
}

// SelectOrganizer switches which organizer the caller administers.
func (h *ProfileHandler) SelectOrganizer(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var req SelectOrganizerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.organizerService.SelectOrganizer(c.Request().Context(), sess.UserID, req.OrganizerID); err != nil {
		if err == apperrors.ErrOrganizerNotFound {
			return echo.ErrNotFound
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.NoContent(http.StatusOK)
}
