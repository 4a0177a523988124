package repository

import (
	"context"
	"strings"
	"time"

	"gorm.io/gorm"

	"eventadmin/internal/model"
)

// UserRepository defines user persistence operations.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	RolesForUser(ctx context.Context, userID uint) ([]model.Role, error)
	AddRole(ctx context.Context, userID uint, role model.Role) error
	RemoveRole(ctx context.Context, userID uint, role model.Role) error
	SetOrganizer(ctx context.Context, id, organizerID uint) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	// UpdateCredentials replaces salt, hash and the rotation timestamp as a
	// single row update; the pair is never written separately.
	UpdateCredentials(ctx context.Context, id uint, salt, hash []byte, changedAt time.Time) error
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository builds a GORM-backed repository.
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	user.Email = strings.ToLower(user.Email)
	return r.db.WithContext(ctx).Create(user).Error
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).First(&user, id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByEmail looks a user up case-insensitively.
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	var user model.User
	if err := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(email)).
		First(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) RolesForUser(ctx context.Context, userID uint) ([]model.Role, error) {
	var memberships []model.UserRole
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, err
	}
	roles := make([]model.Role, 0, len(memberships))
	for _, m := range memberships {
		roles = append(roles, m.Role)
	}
	return roles, nil
}

func (r *userRepository) AddRole(ctx context.Context, userID uint, role model.Role) error {
	return r.db.WithContext(ctx).Create(&model.UserRole{UserID: userID, Role: role}).Error
}

func (r *userRepository) RemoveRole(ctx context.Context, userID uint, role model.Role) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND role = ?", userID, role).
		Delete(&model.UserRole{}).Error
}

func (r *userRepository) SetOrganizer(ctx context.Context, id, organizerID uint) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("organizer_id", organizerID).Error
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

func (r *userRepository) UpdateCredentials(ctx context.Context, id uint, salt, hash []byte, changedAt time.Time) error {
	return r.db.WithContext(ctx).Model(&model.User{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"salt":                 salt,
			"password_hash":        hash,
			"last_password_change": changedAt,
		}).Error
}
