package repository

import (
	"context"

	"gorm.io/gorm"

	"eventadmin/internal/model"
)

// OrganizerRepository defines organizer persistence operations.
type OrganizerRepository interface {
	Create(ctx context.Context, organizer *model.Organizer) error
	FindByID(ctx context.Context, id uint) (*model.Organizer, error)
	List(ctx context.Context) ([]model.Organizer, error)
	Update(ctx context.Context, id uint, values map[string]interface{}) error
}

type organizerRepository struct {
	db *gorm.DB
}

// NewOrganizerRepository builds a GORM-backed repository.
func NewOrganizerRepository(db *gorm.DB) OrganizerRepository {
	return &organizerRepository{db: db}
}

func (r *organizerRepository) Create(ctx context.Context, organizer *model.Organizer) error {
	return r.db.WithContext(ctx).Create(organizer).Error
}

func (r *organizerRepository) FindByID(ctx context.Context, id uint) (*model.Organizer, error) {
	var organizer model.Organizer
	if err := r.db.WithContext(ctx).First(&organizer, id).Error; err != nil {
		return nil, err
	}
	return &organizer, nil
}

func (r *organizerRepository) List(ctx context.Context) ([]model.Organizer, error) {
	var organizers []model.Organizer
	if err := r.db.WithContext(ctx).Order("name").Find(&organizers).Error; err != nil {
		return nil, err
	}
	return organizers, nil
}

func (r *organizerRepository) Update(ctx context.Context, id uint, values map[string]interface{}) error {
	return r.db.WithContext(ctx).Model(&model.Organizer{}).
		Where("id = ?", id).
		Updates(values).Error
}
