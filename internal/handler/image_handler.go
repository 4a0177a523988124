package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"eventadmin/internal/auth"
	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/service"
)

// maxUploadBytes caps uploaded image size at 10 MiB, matching the object
// store's configured body limit.
const maxUploadBytes = 10 << 20

// ImageHandler handles image upload and retrieval.
type ImageHandler struct {
	imageService service.ImageService
}

// NewImageHandler creates a new image handler.
func NewImageHandler(imageService service.ImageService) *ImageHandler {
	return &ImageHandler{imageService: imageService}
}

// Upload streams the raw request body into the object store and returns the
// new opaque image id.
func (h *ImageHandler) Upload(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	mimeType := c.Request().Header.Get(echo.HeaderContentType)
	if mimeType == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing content type")
	}

	body := http.MaxBytesReader(c.Response(), c.Request().Body, maxUploadBytes)
	defer body.Close()

	id, err := h.imageService.Upload(c.Request().Context(), sess.UserID, mimeType, body)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "upload failed")
	}
	return c.JSON(http.StatusOK, map[string]string{"id": id})
}

// Get streams an image back with its stored mime type.
func (h *ImageHandler) Get(c echo.Context) error {
	if _, ok := auth.SessionFromContext(c); !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	id := c.Param("id")
	if id == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "missing image id")
	}

	mimeType, stream, err := h.imageService.Open(c.Request().Context(), id)
	if err != nil {
		if err == apperrors.ErrImageNotFound {
			return echo.ErrNotFound
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
	defer stream.Close()

	return c.Stream(http.StatusOK, mimeType, stream)
}
