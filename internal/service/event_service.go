package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "eventadmin/internal/errors"
	"eventadmin/internal/geo"
	"eventadmin/internal/model"
	"eventadmin/internal/repository"
)

// EventInput carries the writable fields of an event listing.
type EventInput struct {
	Title                string
	Description          string
	Date                 time.Time
	Online               bool
	EventType            string
	Venue                *string
	VenueAddress         *string
	RegistrationDeadline *time.Time
	RegistrationLink     *string
	Price                *string
	ImageID              string
}

// EventService handles event listings on behalf of the caller's organizer.
type EventService interface {
	ListEvents(ctx context.Context, userID uint) ([]model.Event, error)
	CreateEvent(ctx context.Context, userID uint, in EventInput) (uint, error)
	UpdateEvent(ctx context.Context, userID, eventID uint, in EventInput) error
	DeleteEvent(ctx context.Context, userID, eventID uint) error
}

type eventService struct {
	users    repository.UserRepository
	events   repository.EventRepository
	geocoder geo.Geocoder
}

// NewEventService creates a new event service. geocoder may be nil, in which
// case venue addresses are stored without location data.
func NewEventService(users repository.UserRepository, events repository.EventRepository, geocoder geo.Geocoder) EventService {
	return &eventService{
		users:    users,
		events:   events,
		geocoder: geocoder,
	}
}

// organizerFor resolves the organizer the user administers. Users without an
// organizer cannot touch event data at all.
func (s *eventService) organizerFor(ctx context.Context, userID uint) (uint, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("load user: %w", err)
	}
	if user.OrganizerID == nil {
		return 0, apperrors.ErrNoOrganizer
	}
	return *user.OrganizerID, nil
}

// venueData geocodes the venue address opportunistically. An unresolvable
// address is reported to the caller; a missing geocoder is not.
func (s *eventService) venueData(ctx context.Context, address *string) (*string, error) {
	if address == nil || *address == "" || s.geocoder == nil {
		return nil, nil
	}
	data, err := s.geocoder.Geocode(ctx, *address)
	if err != nil {
		log.Warn().Err(err).Str("address", *address).Msg("geocoding failed")
		return nil, apperrors.ErrInvalidAddress
	}
	return &data, nil
}

func (s *eventService) ListEvents(ctx context.Context, userID uint) ([]model.Event, error) {
	organizerID, err := s.organizerFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.events.ListByOrganizer(ctx, organizerID)
}

func (s *eventService) CreateEvent(ctx context.Context, userID uint, in EventInput) (uint, error) {
	organizerID, err := s.organizerFor(ctx, userID)
	if err != nil {
		return 0, err
	}

	venueData, err := s.venueData(ctx, in.VenueAddress)
	if err != nil {
		return 0, err
	}

	event := &model.Event{
		OrganizerID:          organizerID,
		Title:                in.Title,
		Description:          in.Description,
		Date:                 in.Date,
		Online:               in.Online,
		EventType:            in.EventType,
		Venue:                in.Venue,
		VenueAddress:         in.VenueAddress,
		VenueData:            venueData,
		RegistrationDeadline: in.RegistrationDeadline,
		RegistrationLink:     in.RegistrationLink,
		Price:                in.Price,
		ImageID:              in.ImageID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return 0, fmt.Errorf("create event: %w", err)
	}
	return event.ID, nil
}

func (s *eventService) UpdateEvent(ctx context.Context, userID, eventID uint, in EventInput) error {
	organizerID, err := s.organizerFor(ctx, userID)
	if err != nil {
		return err
	}

	venueData, err := s.venueData(ctx, in.VenueAddress)
	if err != nil {
		return err
	}

	values := map[string]interface{}{
		"title":                 in.Title,
		"description":           in.Description,
		"date":                  in.Date,
		"online":                in.Online,
		"event_type":            in.EventType,
		"venue":                 in.Venue,
		"venue_address":         in.VenueAddress,
		"venue_data":            venueData,
		"registration_deadline": in.RegistrationDeadline,
		"registration_link":     in.RegistrationLink,
		"price":                 in.Price,
		"image_id":              in.ImageID,
	}

	count, err := s.events.UpdateOwned(ctx, eventID, organizerID, values)
	if err != nil {
		return fmt.Errorf("update event: %w", err)
	}
	// Zero rows means the event does not exist or belongs to another
	// organizer; both look like "not found" to the caller.
	if count != 1 {
		return apperrors.ErrEventNotFound
	}
	return nil
}

func (s *eventService) DeleteEvent(ctx context.Context, userID, eventID uint) error {
	organizerID, err := s.organizerFor(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := s.events.DeleteOwned(ctx, eventID, organizerID); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}
