package repository

import (
	"context"

	"gorm.io/gorm"

	"eventadmin/internal/model"
)

// ImageRepository defines image metadata persistence operations.
type ImageRepository interface {
	Create(ctx context.Context, image *model.Image) error
	FindByID(ctx context.Context, id string) (*model.Image, error)
}

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository builds a GORM-backed repository.
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

func (r *imageRepository) Create(ctx context.Context, image *model.Image) error {
	return r.db.WithContext(ctx).Create(image).Error
}

func (r *imageRepository) FindByID(ctx context.Context, id string) (*model.Image, error) {
	var image model.Image
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&image).Error; err != nil {
		return nil, err
	}
	return &image, nil
}
