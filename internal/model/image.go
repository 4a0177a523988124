package model

import "time"

// Image is metadata for a binary stored in the WebDAV object store.
// The ID doubles as the storage path component.
type Image struct {
	ID       string `json:"id" gorm:"primaryKey;size:16"`
	MimeType string `json:"mime_type" gorm:"size:255;not null"`
	OwnerID  uint   `json:"owner_id" gorm:"index;not null"`

	CreatedAt time.Time `json:"created_at"`
}
