package model

import "time"

// InfoScreen is one digital-signage campaign slot.
type InfoScreen struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Comment  string `json:"comment" gorm:"size:255"`
	Position int    `json:"position" gorm:"not null;index"`

	CampaignStart *time.Time `json:"campaign_start,omitempty"`
	CampaignEnd   *time.Time `json:"campaign_end,omitempty"`

	// Uploaded media per display language.
	MediaDeID *string `json:"media_de,omitempty" gorm:"size:16"`
	MediaEnID *string `json:"media_en,omitempty" gorm:"size:16"`

	ExternalLinkDe *string `json:"external_link_de,omitempty" gorm:"size:512"`
	ExternalLinkEn *string `json:"external_link_en,omitempty" gorm:"size:512"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
