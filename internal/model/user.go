package model

import "time"

// User represents a portal staff account. Accounts are provisioned
// out-of-band; there is no self-registration.
type User struct {
	ID    uint   `json:"id" gorm:"primaryKey"`
	Email string `json:"email" gorm:"uniqueIndex;size:255;not null"`

	// Salt and PasswordHash are always rotated together as a pair.
	// Never expose either in JSON.
	Salt         []byte `json:"-" gorm:"type:varbinary(64);not null"`
	PasswordHash []byte `json:"-" gorm:"type:varbinary(64);not null"`

	LastLogin *time.Time `json:"last_login,omitempty"`
	// Nil means the password was never rotated away from its provisioned
	// value; the portal prompts a forced change in that case.
	LastPasswordChange *time.Time `json:"last_password_change,omitempty"`

	Roles []UserRole `json:"roles,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`

	// Organizer this user administers, if any.
	OrganizerID *uint      `json:"organizer_id,omitempty"`
	Organizer   *Organizer `json:"-" gorm:"foreignKey:OrganizerID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRole is a single role membership row.
type UserRole struct {
	ID     uint   `json:"id" gorm:"primaryKey"`
	UserID uint   `json:"user_id" gorm:"index:idx_user_role,unique;not null"`
	Role   Role   `json:"role" gorm:"index:idx_user_role,unique;size:50;not null"`
}

// Role is one of the closed set of portal roles.
type Role string

const (
	RoleEventEditor      Role = "EVENT_EDITOR"
	RoleInfoScreenEditor Role = "INFO_SCREEN_EDITOR"
	// RoleGlobalAdmin implicitly satisfies every other role requirement.
	RoleGlobalAdmin Role = "GLOBAL_ADMIN"
)

// Valid reports whether r belongs to the closed role set.
func (r Role) Valid() bool {
	switch r {
	case RoleEventEditor, RoleInfoScreenEditor, RoleGlobalAdmin:
		return true
	}
	return false
}
