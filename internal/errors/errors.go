package errors

import "errors"

var (
	// ErrEventNotFound is returned when an event is not found or not owned
	// by the caller's organizer.
	ErrEventNotFound = errors.New("event not found")
	// ErrInfoScreenNotFound is returned when an info screen is not found.
	ErrInfoScreenNotFound = errors.New("info screen not found")
	// ErrImageNotFound is returned when image metadata is not found.
	ErrImageNotFound = errors.New("image not found")
	// ErrOrganizerNotFound is returned when an organizer id resolves to
	// nothing.
	ErrOrganizerNotFound = errors.New("organizer not found")
	// ErrNoOrganizer is returned when the caller administers no organizer.
	ErrNoOrganizer = errors.New("no organizer associated with user")
	// ErrInvalidAddress is returned when a venue address cannot be geocoded.
	ErrInvalidAddress = errors.New("invalid address")
)

// ErrorResponse represents a standardized error response.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}
