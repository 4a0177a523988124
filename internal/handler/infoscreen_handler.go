package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/service"
)

// InfoScreenHandler handles info-screen campaign endpoints. Role gating
// happens in the route group, not here.
type InfoScreenHandler struct {
	screenService service.InfoScreenService
}

// NewInfoScreenHandler creates a new info-screen handler.
func NewInfoScreenHandler(screenService service.InfoScreenService) *InfoScreenHandler {
	return &InfoScreenHandler{screenService: screenService}
}

// InfoScreenRequest represents the writable fields of an info-screen slot.
type InfoScreenRequest struct {
	Comment        string     `json:"comment"`
	Position       int        `json:"position" validate:"min=0"`
	CampaignStart  *time.Time `json:"campaignStart"`
	CampaignEnd    *time.Time `json:"campaignEnd"`
	MediaDe        *string    `json:"mediaDe"`
	MediaEn        *string    `json:"mediaEn"`
	ExternalLinkDe *string    `json:"externalLinkDe"`
	ExternalLinkEn *string    `json:"externalLinkEn"`
}

func (r *InfoScreenRequest) toInput() service.InfoScreenInput {
	return service.InfoScreenInput{
		Comment:        r.Comment,
		Position:       r.Position,
		CampaignStart:  r.CampaignStart,
		CampaignEnd:    r.CampaignEnd,
		MediaDeID:      r.MediaDe,
		MediaEnID:      r.MediaEn,
		ExternalLinkDe: r.ExternalLinkDe,
		ExternalLinkEn: r.ExternalLinkEn,
	}
}

// List returns all info-screen slots ordered by position.
func (h *InfoScreenHandler) List(c echo.Context) error {
	screens, err := h.screenService.ListInfoScreens(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, screens)
}

// Create adds a new info-screen slot.
func (h *InfoScreenHandler) Create(c echo.Context) error {
	var req InfoScreenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.screenService.CreateInfoScreen(c.Request().Context(), req.toInput())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, map[string]uint{"id": id})
}

// Update replaces the fields of an info-screen slot.
func (h *InfoScreenHandler) Update(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return echo.ErrNotFound
	}

	var req InfoScreenRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.screenService.UpdateInfoScreen(c.Request().Context(), uint(id), req.toInput()); err != nil {
		if err == apperrors.ErrInfoScreenNotFound {
			return echo.ErrNotFound
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, map[string]uint{"id": uint(id)})
}

// Delete removes an info-screen slot.
func (h *InfoScreenHandler) Delete(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return echo.ErrNotFound
	}

	if err := h.screenService.DeleteInfoScreen(c.Request().Context(), uint(id)); err != nil {
		if err == apperrors.ErrInfoScreenNotFound {
			return echo.ErrNotFound
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	return c.JSON(http.StatusOK, map[string]uint{"id": uint(id)})
}
