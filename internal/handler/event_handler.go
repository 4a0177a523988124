package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"eventadmin/internal/auth"
	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/service"
)

// EventHandler handles the event CRUD endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest represents the writable fields of an event. Create and update
// use the same shape; the event id comes from the route, never the body.
type EventRequest struct {
	Title                string     `json:"title" validate:"required"`
	Description          string     `json:"description"`
	Date                 time.Time  `json:"date" validate:"required"`
	Online               bool       `json:"online"`
	EventType            string     `json:"eventType" validate:"required"`
	Venue                *string    `json:"venue"`
	VenueAddress         *string    `json:"venueAddress"`
	RegistrationDeadline *time.Time `json:"registrationDeadline"`
	RegistrationLink     *string    `json:"registrationLink"`
	Price                *string    `json:"price"`
	Image                string     `json:"image"`
}

func (r *EventRequest) toInput() service.EventInput {
	return service.EventInput{
		Title:                r.Title,
		Description:          r.Description,
		Date:                 r.Date,
		Online:               r.Online,
		EventType:            r.EventType,
		Venue:                r.Venue,
		VenueAddress:         r.VenueAddress,
		RegistrationDeadline: r.RegistrationDeadline,
		RegistrationLink:     r.RegistrationLink,
		Price:                r.Price,
		ImageID:              r.Image,
	}
}

// List returns the events of the caller's organizer.
func (h *EventHandler) List(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	events, err := h.eventService.ListEvents(c.Request().Context(), sess.UserID)
	if err != nil {
		return mapEventError(err)
	}
	return c.JSON(http.StatusOK, events)
}

// Create adds a new event for the caller's organizer.
func (h *EventHandler) Create(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	id, err := h.eventService.CreateEvent(c.Request().Context(), sess.UserID, req.toInput())
	if err != nil {
		return mapEventError(err)
	}
	return c.JSON(http.StatusOK, map[string]uint{"id": id})
}

// Update replaces the writable fields of an owned event.
func (h *EventHandler) Update(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	id, err := eventID(c)
	if err != nil {
		return echo.ErrNotFound
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.eventService.UpdateEvent(c.Request().Context(), sess.UserID, id, req.toInput()); err != nil {
		return mapEventError(err)
	}
	return c.JSON(http.StatusOK, map[string]uint{"id": id})
}

// Delete removes an owned event. Deleting an id that is already gone is not
// an error.
func (h *EventHandler) Delete(c echo.Context) error {
	sess, ok := auth.SessionFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	}

	id, err := eventID(c)
	if err != nil {
		return echo.ErrNotFound
	}

	if err := h.eventService.DeleteEvent(c.Request().Context(), sess.UserID, id); err != nil {
		return mapEventError(err)
	}
	return c.JSON(http.StatusOK, map[string]uint{"id": id})
}

func eventID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, echo.ErrNotFound
	}
	return uint(id), nil
}

func mapEventError(err error) error {
	switch err {
	case apperrors.ErrNoOrganizer:
		return echo.NewHTTPError(http.StatusUnauthorized, "Unauthorized")
	case apperrors.ErrInvalidAddress:
		return echo.NewHTTPError(http.StatusBadRequest, map[string]string{"error": err.Error()})
	case apperrors.ErrEventNotFound:
		return echo.ErrNotFound
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, "internal server error")
	}
}
