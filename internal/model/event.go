package model

import "time"

// Event is a single event listing owned by an organizer.
type Event struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	OrganizerID uint   `json:"organizer_id" gorm:"index;not null"`
	Title       string `json:"title" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`

	Date      time.Time `json:"date" gorm:"not null;index"`
	Online    bool      `json:"online"`
	EventType string    `json:"event_type" gorm:"size:100"`

	Venue        *string `json:"venue,omitempty" gorm:"size:255"`
	VenueAddress *string `json:"venue_address,omitempty" gorm:"size:512"`
	// VenueData holds the raw geocoding result for VenueAddress as JSON.
	VenueData *string `json:"venue_data,omitempty" gorm:"type:text"`

	RegistrationDeadline *time.Time `json:"registration_deadline,omitempty"`
	RegistrationLink     *string    `json:"registration_link,omitempty" gorm:"size:512"`

	// Price is display text ("5€", "frei"), not a numeric amount.
	Price *string `json:"price,omitempty" gorm:"size:100"`

	ImageID string `json:"image_id" gorm:"size:16"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
