package model

import "time"

// Organizer is the profile of an event-hosting organization. Image fields
// reference uploads by their opaque content id.
type Organizer struct {
	ID          uint   `json:"id" gorm:"primaryKey"`
	Name        string `json:"name" gorm:"size:255;not null"`
	Description string `json:"description" gorm:"type:text"`

	LogoImageID  *string `json:"logo_image_id,omitempty" gorm:"size:16"`
	CoverImageID *string `json:"cover_image_id,omitempty" gorm:"size:16"`

	// Public contact and social links shown on the organizer's page.
	Website   *string `json:"website,omitempty" gorm:"size:512"`
	Email     *string `json:"email,omitempty" gorm:"size:255"`
	Phone     *string `json:"phone,omitempty" gorm:"size:64"`
	Facebook  *string `json:"facebook,omitempty" gorm:"size:512"`
	Instagram *string `json:"instagram,omitempty" gorm:"size:512"`
	Twitter   *string `json:"twitter,omitempty" gorm:"size:512"`
	LinkedIn  *string `json:"linkedin,omitempty" gorm:"column:linkedin;size:512"`
	TikTok    *string `json:"tiktok,omitempty" gorm:"column:tiktok;size:512"`
	YouTube   *string `json:"youtube,omitempty" gorm:"column:youtube;size:512"`
	Telegram  *string `json:"telegram,omitempty" gorm:"size:512"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
